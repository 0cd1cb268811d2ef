// Package view holds the latest fetched batch and derives display-ready views from it.
package view

import (
	"sync"

	"hotel-aggregator-go/internal/aggregator"
	"hotel-aggregator-go/internal/search"
	"hotel-aggregator-go/internal/types"
)

// State is the only mutable piece of the service: the latest batches. Queries are
// per call, so two readers with different queries never see each other's filter.
// Batches are never modified after Replace; every read recomputes the view.
type State struct {
	mu       sync.RWMutex
	sources  []types.SourceRecord
	listings []types.BusinessListing
}

func NewState() *State {
	return &State{}
}

// Replace swaps the held source batch wholesale.
func (s *State) Replace(batch []types.SourceRecord) {
	cp := make([]types.SourceRecord, len(batch))
	copy(cp, batch)
	s.mu.Lock()
	s.sources = cp
	s.mu.Unlock()
}

// ReplaceListings swaps the held listing batch wholesale.
func (s *State) ReplaceListings(batch []types.BusinessListing) {
	cp := make([]types.BusinessListing, len(batch))
	copy(cp, batch)
	s.mu.Lock()
	s.listings = cp
	s.mu.Unlock()
}

// Sources returns the held batch. Callers must not modify it.
func (s *State) Sources() []types.SourceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sources
}

// Listings returns the held listing batch. Callers must not modify it.
func (s *State) Listings() []types.BusinessListing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listings
}

// ReviewView aggregates the whole held batch and filters the displayed sources by
// query. The summary always covers the full batch, not the filtered subset.
func (s *State) ReviewView(query string) types.ReviewView {
	return BuildReviewView(s.Sources(), query)
}

// ListingView filters then sorts the held listings.
func (s *State) ListingView(query, sortKey string, desc bool) types.ListingView {
	return BuildListingView(s.Listings(), query, sortKey, desc)
}

func BuildReviewView(sources []types.SourceRecord, query string) types.ReviewView {
	matched := search.FilterSources(sources, query)
	return types.ReviewView{
		Query:            query,
		Summary:          aggregator.Summarize(sources),
		Distribution:     aggregator.CombineDistributions(sources),
		Sources:          append([]types.SourceRecord{}, matched...),
		DuplicateSources: DuplicateSources(sources),
	}
}

func BuildListingView(listings []types.BusinessListing, query, sortKey string, desc bool) types.ListingView {
	matched := search.FilterListings(listings, query)
	return types.ListingView{
		Query:    query,
		SortKey:  sortKey,
		Summary:  aggregator.Summarize(listings),
		Listings: search.SortListings(matched, sortKey, desc),
	}
}

// DuplicateSources lists source labels that occur more than once, in first-seen order.
// Aggregation still counts every occurrence.
func DuplicateSources(sources []types.SourceRecord) []string {
	seen := make(map[string]int, len(sources))
	var dups []string
	for _, r := range sources {
		seen[r.Source]++
		if seen[r.Source] == 2 {
			dups = append(dups, r.Source)
		}
	}
	return dups
}
