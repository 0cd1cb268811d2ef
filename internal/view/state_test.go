package view

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-aggregator-go/internal/types"
)

func batch() []types.SourceRecord {
	return []types.SourceRecord{
		{Source: "Agoda", Rating: 4, HasRating: true, Count: 100, Distribution: map[int]int{5: 60, 4: 40}},
		{Source: "Booking", Rating: 5, HasRating: true, Count: 50, Distribution: map[int]int{5: 50}},
		{Source: "TripAdvisor", Distribution: map[int]int{}},
	}
}

func TestState_EmptyView(t *testing.T) {
	v := NewState().ReviewView("")
	assert.Zero(t, v.Summary.SourceCount)
	assert.Zero(t, v.Summary.WeightedAverageRating)
	assert.Len(t, v.Distribution, 5)
	assert.Empty(t, v.Sources)
}

func TestState_QueryFiltersSourcesButNotSummary(t *testing.T) {
	st := NewState()
	st.Replace(batch())

	v := st.ReviewView("a")
	assert.Equal(t, "a", v.Query)
	require.Len(t, v.Sources, 2)
	assert.Equal(t, "Agoda", v.Sources[0].Source)
	assert.Equal(t, "TripAdvisor", v.Sources[1].Source)
	assert.Equal(t, 3, v.Summary.SourceCount)
	assert.Equal(t, 150, v.Summary.TotalReviews)
	assert.InDelta(t, 4.33, v.Summary.WeightedAverageRating, 1e-9)
	assert.Equal(t, 110, v.Distribution.Count(5))
}

func TestState_ReplaceIsWholesale(t *testing.T) {
	st := NewState()
	st.Replace(batch())
	st.Replace([]types.SourceRecord{{Source: "Only", Rating: 3, HasRating: true, Count: 2}})

	v := st.ReviewView("")
	assert.Equal(t, 1, v.Summary.SourceCount)
	assert.InDelta(t, 3.0, v.Summary.WeightedAverageRating, 1e-9)
}

func TestState_CallerMutationDoesNotLeak(t *testing.T) {
	in := batch()
	st := NewState()
	st.Replace(in)
	in[0] = types.SourceRecord{Source: "changed"}

	assert.Equal(t, "Agoda", st.ReviewView("").Sources[0].Source)

	v := st.ReviewView("")
	v.Sources[0].Source = "mutated view"
	assert.Equal(t, "Agoda", st.ReviewView("").Sources[0].Source)
}

func TestDuplicateSources(t *testing.T) {
	in := append(batch(), types.SourceRecord{Source: "Agoda", Rating: 2, HasRating: true, Count: 50},
		types.SourceRecord{Source: "Agoda"})

	v := BuildReviewView(in, "")
	assert.Equal(t, []string{"Agoda"}, v.DuplicateSources)
	assert.Equal(t, 5, v.Summary.SourceCount)
	assert.Equal(t, 200, v.Summary.TotalReviews)
	assert.InDelta(t, 3.75, v.Summary.WeightedAverageRating, 1e-9)
	assert.Nil(t, DuplicateSources(batch()))
}

func TestState_ListingView(t *testing.T) {
	st := NewState()
	st.ReplaceListings([]types.BusinessListing{
		{Name: "Harbour View", Category: "Hotel", Rating: 4.4, HasRating: true, Reviews: 800},
		{Name: "Spice Route", Category: "Restaurant", Rating: 4.6, HasRating: true, Reviews: 1500},
		{Name: "Sunrise Inn", Category: "Budget hotel", Rating: 3.9, HasRating: true, Reviews: 200},
	})
	v := st.ListingView("HOTEL", "rating", true)
	require.Len(t, v.Listings, 2)
	assert.Equal(t, "Harbour View", v.Listings[0].Name)
	assert.Equal(t, "Sunrise Inn", v.Listings[1].Name)
	assert.Equal(t, 3, v.Summary.SourceCount)
	assert.Equal(t, 2500, v.Summary.TotalReviews)
}

func TestState_QueriesAreIndependent(t *testing.T) {
	st := NewState()
	st.Replace(batch())

	narrow := st.ReviewView("book")
	wide := st.ReviewView("")
	require.Len(t, narrow.Sources, 1)
	assert.Equal(t, "Booking", narrow.Sources[0].Source)
	assert.Len(t, wide.Sources, 3)
	assert.Equal(t, narrow.Summary, wide.Summary)
}

func TestState_ConcurrentAccess(t *testing.T) {
	st := NewState()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			st.Replace(batch())
		}()
		go func() {
			defer wg.Done()
			v := st.ReviewView("o")
			assert.Len(t, v.Distribution, 5)
		}()
	}
	wg.Wait()
	assert.Equal(t, 3, st.ReviewView("").Summary.SourceCount)
}
