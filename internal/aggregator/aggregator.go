package aggregator

import (
	"math"

	"hotel-aggregator-go/internal/types"
)

// Stars is the display order of the combined histogram.
var Stars = [5]int{5, 4, 3, 2, 1}

// Rated is anything that carries a rating backed by a number of reviews.
type Rated interface {
	RatingValue() (float64, bool)
	ReviewCount() int
}

// Distributed is anything that carries a per-star histogram.
type Distributed interface {
	Buckets() map[int]int
}

// Summarize computes the review-weighted overall rating. Records without reviews
// or without a rating stay out of the weighted mean; an empty denominator yields 0.
func Summarize[T Rated](records []T) types.AggregateSummary {
	var weighted float64
	weight := 0
	total := 0
	for _, r := range records {
		n := r.ReviewCount()
		if n <= 0 {
			continue
		}
		total += n
		if v, ok := r.RatingValue(); ok {
			weighted += v * float64(n)
			weight += n
		}
	}
	avg := 0.0
	if weight > 0 {
		avg = weighted / float64(weight)
	}
	return types.AggregateSummary{
		SourceCount:           len(records),
		TotalReviews:          total,
		WeightedAverageRating: round(avg, 2),
	}
}

// CombineDistributions sums every record's star buckets. Keys outside 1..5 are ignored.
func CombineDistributions[T Distributed](records []T) types.CombinedDistribution {
	var acc [6]int
	for _, r := range records {
		for star, n := range r.Buckets() {
			if star < 1 || star > 5 || n < 0 {
				continue
			}
			acc[star] += n
		}
	}
	total := 0
	for _, n := range acc {
		total += n
	}
	out := make(types.CombinedDistribution, 0, len(Stars))
	for _, star := range Stars {
		pct := 0.0
		if total > 0 {
			pct = round(float64(acc[star])*100/float64(total), 1)
		}
		out = append(out, types.BucketCount{Star: star, Count: acc[star], Percent: pct})
	}
	return out
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
