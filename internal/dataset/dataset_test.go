package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hotel-aggregator-go/internal/types"
)

func sampleView() types.ReviewView {
	return types.ReviewView{
		Query:   "a",
		Summary: types.AggregateSummary{SourceCount: 3, TotalReviews: 150, WeightedAverageRating: 4.33},
		Distribution: types.CombinedDistribution{
			{Star: 5, Count: 110, Percent: 73.3},
			{Star: 4, Count: 40, Percent: 26.7},
			{Star: 3}, {Star: 2}, {Star: 1},
		},
		Sources: []types.SourceRecord{
			{Source: "Agoda", Rating: 4, HasRating: true, Count: 100, Distribution: map[int]int{5: 60, 4: 40}},
			{Source: "TripAdvisor", Distribution: map[int]int{}},
		},
	}
}

func TestBuildWorkbook(t *testing.T) {
	f, err := BuildWorkbook(sampleView())
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, DistributionSheet, SourcesSheet}, f.GetSheetList())

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	require.Len(t, summary, 5)
	assert.Equal(t, []string{"Total reviews", "150"}, summary[2])
	assert.Equal(t, []string{"Weighted average rating", "4.33"}, summary[3])
	assert.Equal(t, []string{"Query", "a"}, summary[4])

	dist, err := f.GetRows(DistributionSheet)
	require.NoError(t, err)
	require.Len(t, dist, 6)
	assert.Equal(t, []string{"5", "110", "73.3"}, dist[1])
	assert.Equal(t, "1", dist[5][0])

	src, err := f.GetRows(SourcesSheet)
	require.NoError(t, err)
	require.Len(t, src, 3)
	assert.Equal(t, []string{"Agoda", "4", "100", "60", "40", "0", "0", "0"}, src[1][:8])
	assert.Equal(t, "TripAdvisor", src[2][0])
	assert.Equal(t, "", src[2][1])
}

func TestWriteReviewView(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReviewView(&buf, sampleView()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(SourcesSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func listingWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestReadListingsXLSX(t *testing.T) {
	buf := listingWorkbook(t, [][]interface{}{
		{"Business Name", "Category", "Rating", "Review Count", "Address", "Price Level", "Latitude", "Longitude"},
		{"Harbour View", "Hotel", "4.4", "1,204", "12 Pier Rd", "$$$", 13.08, 80.27},
		{"", "Hotel", "5", "3"},
		{"Sunrise Inn", "Budget hotel", "n/a", "(240)"},
	})

	ls, err := ReadListingsXLSX(buf)
	require.NoError(t, err)
	require.Len(t, ls, 2)

	assert.Equal(t, "Harbour View", ls[0].Name)
	assert.Equal(t, "Hotel", ls[0].Category)
	assert.InDelta(t, 4.4, ls[0].Rating, 1e-9)
	assert.Equal(t, 1204, ls[0].Reviews)
	assert.Equal(t, "$$$", ls[0].PriceLevel)
	assert.InDelta(t, 80.27, ls[0].Longitude, 1e-9)

	assert.False(t, ls[1].HasRating)
	assert.Equal(t, 240, ls[1].Reviews)
}

func TestReadListingsXLSX_NoData(t *testing.T) {
	buf := listingWorkbook(t, [][]interface{}{{"Name", "Rating"}})
	_, err := ReadListingsXLSX(buf)
	assert.ErrorIs(t, err, ErrNoDataRows)
}

func TestLoadSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"source":"A","rating":4,"count":100,"distribution":{"5":60,"4":40}},
		{"source":"C"}
	]`), 0o600))

	recs, err := LoadSources(path)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 100, recs[0].Count)
	assert.Empty(t, recs[1].Distribution)

	_, err = LoadSources(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadListings_JSONAndXLSX(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "listings.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"name":"Spice Route","category":"Restaurant","rating":4.6,"reviews":1530}]`), 0o600))

	ls, err := LoadListings(jsonPath)
	require.NoError(t, err)
	require.Len(t, ls, 1)
	assert.Equal(t, 1530, ls[0].Reviews)

	xlsxPath := filepath.Join(dir, "listings.xlsx")
	buf := listingWorkbook(t, [][]interface{}{{"Name", "Category"}, {"Sunrise Inn", "Hotel"}})
	require.NoError(t, os.WriteFile(xlsxPath, buf.Bytes(), 0o600))

	ls, err = LoadListings(xlsxPath)
	require.NoError(t, err)
	require.Len(t, ls, 1)
	assert.Equal(t, "Sunrise Inn", ls[0].Name)
}
