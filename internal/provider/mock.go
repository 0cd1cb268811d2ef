package provider

import (
	"hotel-aggregator-go/internal/types"
)

func num(v float64) *float64 { return &v }
func str(v string) *string   { return &v }

// MockReviews is the offline batch served when USE_MOCK_PROVIDER=true.
func MockReviews(hotel string) []types.RawSourceRecord {
	return []types.RawSourceRecord{
		{
			Source: "Agoda",
			Rating: num(4.2),
			Count:  num(1280),
			Distribution: map[string]*float64{
				"5": num(640), "4": num(380), "3": num(160), "2": num(60), "1": num(40),
			},
			Reviews: []types.RawReviewSnippet{
				{Rating: num(5), Snippet: str("Great location near " + hotel + " station.")},
				{Rating: num(3), Snippet: str("Rooms were clean but small.")},
			},
		},
		{
			Source: "Booking",
			Rating: num(4.5),
			Count:  num(2210),
			Distribution: map[string]*float64{
				"5": num(1400), "4": num(560), "3": num(180), "2": num(50), "1": num(20),
			},
			Reviews: []types.RawReviewSnippet{
				{Rating: num(4), Snippet: str("Friendly staff, good breakfast.")},
			},
		},
		{
			Source: "TripAdvisor",
			Rating: num(4.0),
			Count:  num(530),
			Distribution: map[string]*float64{
				"5": num(230), "4": num(170), "3": num(80), "2": num(30), "1": num(20),
			},
		},
		{Source: "Google Maps"},
	}
}

// MockListings is the offline listing batch served when USE_MOCK_PROVIDER=true.
func MockListings(query string) []types.RawBusinessListing {
	return []types.RawBusinessListing{
		{
			Name: "Harbour View Hotel", Category: "Hotel", Address: "12 Pier Rd",
			Rating: num(4.4), Reviews: num(812), PriceLevel: "$$$", Hours: "Open 24 hours",
			ServiceOptions: "Free Wi-Fi", Latitude: num(13.0827), Longitude: num(80.2707),
		},
		{
			Name: "Sunrise Inn", Category: "Budget hotel", Address: "4 Market St",
			Rating: num(3.9), Reviews: num(240), PriceLevel: "$",
			Latitude: num(13.0604), Longitude: num(80.2496),
		},
		{
			Name: "Spice Route Cafe", Category: "Restaurant", Address: "88 Beach Rd",
			Rating: num(4.6), Reviews: num(1530), PriceLevel: "$$", Hours: "8AM-11PM",
			ServiceOptions: "Dine-in, Takeaway",
		},
		{Name: query + " Residency", Category: "Hotel"},
	}
}
