package dataset

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"hotel-aggregator-go/internal/logger"
	"hotel-aggregator-go/internal/types"
)

const (
	SummarySheet      = "Summary"
	DistributionSheet = "Distribution"
	SourcesSheet      = "Sources"
)

// BuildWorkbook lays a review view out as three sheets: the summary, the
// 5..1 histogram and one row per displayed source.
func BuildWorkbook(v types.ReviewView) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{DistributionSheet, SourcesSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("new sheet %s: %w", name, err)
		}
	}

	summary := [][]interface{}{
		{"Metric", "Value"},
		{"Sources", v.Summary.SourceCount},
		{"Total reviews", v.Summary.TotalReviews},
		{"Weighted average rating", v.Summary.WeightedAverageRating},
	}
	if v.Query != "" {
		summary = append(summary, []interface{}{"Query", v.Query})
	}
	if err := writeRows(f, SummarySheet, summary); err != nil {
		return nil, err
	}

	dist := [][]interface{}{{"Star", "Count", "Percent"}}
	for _, b := range v.Distribution {
		dist = append(dist, []interface{}{b.Star, b.Count, b.Percent})
	}
	if err := writeRows(f, DistributionSheet, dist); err != nil {
		return nil, err
	}

	src := [][]interface{}{{"Source", "Rating", "Count", "5", "4", "3", "2", "1", "Duplicate"}}
	dups := map[string]bool{}
	for _, d := range v.DuplicateSources {
		dups[d] = true
	}
	for _, r := range v.Sources {
		var rating interface{} = ""
		if r.HasRating {
			rating = r.Rating
		}
		src = append(src, []interface{}{
			r.Source, rating, r.Count,
			r.Distribution[5], r.Distribution[4], r.Distribution[3], r.Distribution[2], r.Distribution[1],
			dups[r.Source],
		})
	}
	if err := writeRows(f, SourcesSheet, src); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteReviewView streams the workbook for v to w.
func WriteReviewView(w io.Writer, v types.ReviewView) error {
	log := logger.New().Component("dataset.export")
	f, err := BuildWorkbook(v)
	if err != nil {
		log.WithError(err).Error("build workbook failed")
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		log.WithError(err).Error("write workbook failed")
		return fmt.Errorf("write workbook: %w", err)
	}
	log.WithField("sources", len(v.Sources)).Debug("workbook written")
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
