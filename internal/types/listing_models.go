// internal/types/listing_models.go
package types

// --------------------------------------------
// Business listing as scraped from a maps search
// --------------------------------------------
type RawBusinessListing struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Address        string   `json:"address"`
	Rating         *float64 `json:"rating,omitempty"`
	Reviews        *float64 `json:"reviews,omitempty"`
	Website        string   `json:"website"`
	Phone          string   `json:"phone"`
	PriceLevel     string   `json:"priceLevel"`
	Hours          string   `json:"hours"`
	ServiceOptions string   `json:"serviceOptions"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
}

type BusinessListing struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Address        string  `json:"address"`
	Rating         float64 `json:"rating"`
	HasRating      bool    `json:"has_rating"`
	Reviews        int     `json:"reviews"`
	Website        string  `json:"website"`
	Phone          string  `json:"phone"`
	PriceLevel     string  `json:"priceLevel"`
	Hours          string  `json:"hours"`
	ServiceOptions string  `json:"serviceOptions"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

func (b BusinessListing) RatingValue() (float64, bool) { return b.Rating, b.HasRating }
func (b BusinessListing) ReviewCount() int             { return b.Reviews }
func (b BusinessListing) SearchText() []string         { return []string{b.Name, b.Category} }
