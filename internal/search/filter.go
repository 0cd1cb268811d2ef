package search

import (
	"sort"
	"strings"

	"hotel-aggregator-go/internal/types"
)

// Searchable exposes the text fields a query is matched against.
type Searchable interface {
	SearchText() []string
}

// Filter returns the items whose searchable text contains query, case-insensitively,
// in their original order. A blank query returns items unchanged; any other query
// is matched as given, surrounding spaces included.
func Filter[T Searchable](items []T, query string) []T {
	if strings.TrimSpace(query) == "" {
		return items
	}
	q := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, text := range it.SearchText() {
			if strings.Contains(strings.ToLower(text), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// FilterSources matches on the source label.
func FilterSources(records []types.SourceRecord, query string) []types.SourceRecord {
	return Filter(records, query)
}

// FilterListings matches on business name and category.
func FilterListings(listings []types.BusinessListing, query string) []types.BusinessListing {
	return Filter(listings, query)
}

const (
	SortByName    = "name"
	SortByRating  = "rating"
	SortByReviews = "reviews"
)

// SortListings returns a stably sorted copy. Unknown keys keep the input order.
func SortListings(listings []types.BusinessListing, key string, desc bool) []types.BusinessListing {
	out := make([]types.BusinessListing, len(listings))
	copy(out, listings)

	var less func(a, b types.BusinessListing) bool
	switch strings.ToLower(strings.TrimSpace(key)) {
	case SortByName:
		less = func(a, b types.BusinessListing) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case SortByRating:
		less = func(a, b types.BusinessListing) bool { return a.Rating < b.Rating }
	case SortByReviews:
		less = func(a, b types.BusinessListing) bool { return a.Reviews < b.Reviews }
	default:
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}
