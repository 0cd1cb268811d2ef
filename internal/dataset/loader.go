package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"hotel-aggregator-go/internal/normalizer"
	"hotel-aggregator-go/internal/types"
)

var (
	ErrNoSheets   = errors.New("no sheets")
	ErrNoDataRows = errors.New("no data rows")
)

// LoadSources reads a JSON array of provider records from disk.
func LoadSources(path string) ([]types.SourceRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var raw []types.RawSourceRecord
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decode sources: %w", err)
	}
	return normalizer.NormalizeBatch(raw), nil
}

// LoadListings reads scraped listings from a .json array or the first sheet of an .xlsx.
func LoadListings(path string) ([]types.BusinessListing, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		fh, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		defer fh.Close()
		return ReadListingsXLSX(fh)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var raw []types.RawBusinessListing
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}
	return normalizer.NormalizeListings(raw), nil
}

// ReadListingsXLSX detects columns by header text. Rows without a name are skipped.
func ReadListingsXLSX(r io.Reader) ([]types.BusinessListing, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, ErrNoDataRows
	}

	cols := detectColumns(rows[0])
	var out []types.BusinessListing
	for _, row := range rows[1:] {
		cell := func(key string) string {
			i, ok := cols[key]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		raw := types.RawBusinessListing{
			Name:           cell("name"),
			Category:       cell("category"),
			Address:        cell("address"),
			Rating:         parseNumber(cell("rating")),
			Reviews:        parseNumber(cell("reviews")),
			Website:        cell("website"),
			Phone:          cell("phone"),
			PriceLevel:     cell("priceLevel"),
			Hours:          cell("hours"),
			ServiceOptions: cell("serviceOptions"),
			Latitude:       parseNumber(cell("latitude")),
			Longitude:      parseNumber(cell("longitude")),
		}
		if raw.Name == "" {
			continue
		}
		out = append(out, normalizer.NormalizeListing(raw))
	}
	return out, nil
}

func detectColumns(header []string) map[string]int {
	cols := map[string]int{}
	set := func(key string, i int) {
		if _, ok := cols[key]; !ok {
			cols[key] = i
		}
	}
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "review"):
			set("reviews", i)
		case strings.Contains(l, "rating"):
			set("rating", i)
		case strings.Contains(l, "categor") || l == "type":
			set("category", i)
		case strings.Contains(l, "address"):
			set("address", i)
		case strings.Contains(l, "website") || l == "url":
			set("website", i)
		case strings.Contains(l, "phone"):
			set("phone", i)
		case strings.Contains(l, "price"):
			set("priceLevel", i)
		case strings.Contains(l, "hour"):
			set("hours", i)
		case strings.Contains(l, "service"):
			set("serviceOptions", i)
		case strings.HasPrefix(l, "lat"):
			set("latitude", i)
		case strings.HasPrefix(l, "lon") || strings.HasPrefix(l, "lng"):
			set("longitude", i)
		case strings.Contains(l, "name") || l == "title":
			set("name", i)
		}
	}
	return cols
}

// parseNumber accepts "4.5", "1,234" and "(1,234)"; anything else is absent.
func parseNumber(s string) *float64 {
	s = strings.Trim(strings.ReplaceAll(s, ",", ""), "() ")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
