package normalizer

import (
	"math"
	"strconv"
	"strings"

	"hotel-aggregator-go/internal/types"
)

const (
	minRating = 0.0
	maxRating = 5.0
)

// Normalize defaults every missing field of a raw provider record. It never fails:
// missing rating leaves HasRating false, missing count is 0, missing distribution
// is an empty map, missing reviews an empty slice.
func Normalize(raw types.RawSourceRecord) types.SourceRecord {
	rec := types.SourceRecord{
		Source:       strings.TrimSpace(raw.Source),
		Count:        nonNegativeInt(raw.Count),
		Distribution: make(map[int]int, len(raw.Distribution)),
		Reviews:      make([]types.ReviewSnippet, 0, len(raw.Reviews)),
	}
	rec.Rating, rec.HasRating = rating(raw.Rating)

	for k, v := range raw.Distribution {
		star, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			// not an integer star; nothing to keep
			continue
		}
		rec.Distribution[star] += nonNegativeInt(v)
	}

	for _, r := range raw.Reviews {
		s := types.ReviewSnippet{}
		if v, ok := rating(r.Rating); ok {
			s.Rating = &v
		}
		if r.Snippet != nil {
			s.Snippet = strings.TrimSpace(*r.Snippet)
		}
		if s.Rating == nil && s.Snippet == "" {
			continue
		}
		rec.Reviews = append(rec.Reviews, s)
	}
	return rec
}

// NormalizeBatch normalizes every record, preserving input order.
func NormalizeBatch(raw []types.RawSourceRecord) []types.SourceRecord {
	out := make([]types.SourceRecord, 0, len(raw))
	for _, r := range raw {
		out = append(out, Normalize(r))
	}
	return out
}

// NormalizeListing applies the same defaulting rules to a scraped business listing.
func NormalizeListing(raw types.RawBusinessListing) types.BusinessListing {
	l := types.BusinessListing{
		Name:           strings.TrimSpace(raw.Name),
		Category:       strings.TrimSpace(raw.Category),
		Address:        strings.TrimSpace(raw.Address),
		Reviews:        nonNegativeInt(raw.Reviews),
		Website:        strings.TrimSpace(raw.Website),
		Phone:          strings.TrimSpace(raw.Phone),
		PriceLevel:     strings.TrimSpace(raw.PriceLevel),
		Hours:          strings.TrimSpace(raw.Hours),
		ServiceOptions: strings.TrimSpace(raw.ServiceOptions),
		Latitude:       finite(raw.Latitude),
		Longitude:      finite(raw.Longitude),
	}
	l.Rating, l.HasRating = rating(raw.Rating)
	return l
}

func NormalizeListings(raw []types.RawBusinessListing) []types.BusinessListing {
	out := make([]types.BusinessListing, 0, len(raw))
	for _, r := range raw {
		out = append(out, NormalizeListing(r))
	}
	return out
}

// rating clamps a present, finite value into [0,5].
func rating(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return math.Max(minRating, math.Min(maxRating, *v)), true
}

func nonNegativeInt(v *float64) int {
	if v == nil || math.IsNaN(*v) || *v <= 0 {
		return 0
	}
	if *v >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(*v)
}

func finite(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return *v
}
