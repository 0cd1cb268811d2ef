package types

// ReviewSnippet is one displayed review excerpt. Either field may be empty.
type ReviewSnippet struct {
	Rating  *float64 `json:"rating,omitempty"`
	Snippet string   `json:"snippet,omitempty"`
}

// RawSourceRecord is the per-source record as returned by the data provider.
// Numbers arrive as JSON numbers of unknown shape, so everything optional is a pointer.
type RawSourceRecord struct {
	Source       string              `json:"source"`
	Rating       *float64            `json:"rating,omitempty"`
	Count        *float64            `json:"count,omitempty"`
	Distribution map[string]*float64 `json:"distribution,omitempty"`
	Reviews      []RawReviewSnippet  `json:"reviews,omitempty"`
}

type RawReviewSnippet struct {
	Rating  *float64 `json:"rating,omitempty"`
	Snippet *string  `json:"snippet,omitempty"`
}

// SourceRecord is a normalized per-source summary. HasRating is false when the
// provider sent no usable rating; such a record never weighs into the average.
type SourceRecord struct {
	Source       string          `json:"source"`
	Rating       float64         `json:"rating"`
	HasRating    bool            `json:"has_rating"`
	Count        int             `json:"count"`
	Distribution map[int]int     `json:"distribution"`
	Reviews      []ReviewSnippet `json:"reviews"`
}

func (r SourceRecord) RatingValue() (float64, bool) { return r.Rating, r.HasRating }
func (r SourceRecord) ReviewCount() int             { return r.Count }
func (r SourceRecord) Buckets() map[int]int         { return r.Distribution }
func (r SourceRecord) SearchText() []string         { return []string{r.Source} }
