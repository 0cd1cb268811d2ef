// internal/types/aggregate_models.go
package types

// --------------------------------------------
// Cross-source summary
// --------------------------------------------
type AggregateSummary struct {
	SourceCount           int     `json:"source_count"`
	TotalReviews          int     `json:"total_reviews"`
	WeightedAverageRating float64 `json:"weighted_average_rating"` // rounded to 2dp
}

// --------------------------------------------
// Combined histogram, always star 5 down to star 1
// --------------------------------------------
type BucketCount struct {
	Star    int     `json:"star"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type CombinedDistribution []BucketCount

// Total returns the number of reviews across all buckets.
func (d CombinedDistribution) Total() int {
	n := 0
	for _, b := range d {
		n += b.Count
	}
	return n
}

// Count returns the combined count for star, 0 for unknown stars.
func (d CombinedDistribution) Count(star int) int {
	for _, b := range d {
		if b.Star == star {
			return b.Count
		}
	}
	return 0
}

// --------------------------------------------
// Display-ready views
// --------------------------------------------
type ReviewView struct {
	Query            string               `json:"query,omitempty"`
	Summary          AggregateSummary     `json:"summary"`
	Distribution     CombinedDistribution `json:"distribution"`
	Sources          []SourceRecord       `json:"sources"`
	DuplicateSources []string             `json:"duplicate_sources,omitempty"`
}

type ListingView struct {
	Query    string            `json:"query,omitempty"`
	SortKey  string            `json:"sort,omitempty"`
	Summary  AggregateSummary  `json:"summary"`
	Listings []BusinessListing `json:"listings"`
}
