package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hotel-aggregator-go/internal/dataset"
	"hotel-aggregator-go/internal/view"
)

var (
	listingsQuery string
	listingsSort  string
	listingsDesc  bool
	listingsJSON  bool
)

var listingsCmd = &cobra.Command{
	Use:   "listings [file]",
	Short: "Search scraped business listings",
	Long: `Reads scraped business listings from a .json or .xlsx file, filters them by
name and category, and optionally sorts by name, rating or reviews.`,
	Args: cobra.ExactArgs(1),
	RunE: runListings,
}

func init() {
	listingsCmd.Flags().StringVarP(&listingsQuery, "query", "q", "", "filter by name or category")
	listingsCmd.Flags().StringVarP(&listingsSort, "sort", "s", "", "sort key: name, rating or reviews")
	listingsCmd.Flags().BoolVar(&listingsDesc, "desc", false, "sort descending")
	listingsCmd.Flags().BoolVar(&listingsJSON, "json", false, "output the view as JSON")
	rootCmd.AddCommand(listingsCmd)
}

func runListings(cmd *cobra.Command, args []string) error {
	listings, err := dataset.LoadListings(args[0])
	if err != nil {
		return fmt.Errorf("load listings: %w", err)
	}
	v := view.BuildListingView(listings, listingsQuery, listingsSort, listingsDesc)
	newLogger().WithField("matched", len(v.Listings)).Debug("listings projected")
	if listingsJSON {
		return outputJSON(cmd, v)
	}

	cmd.Printf("Listings: %d  Reviews: %d  Overall rating: %.2f\n\n",
		v.Summary.SourceCount, v.Summary.TotalReviews, v.Summary.WeightedAverageRating)
	if len(v.Listings) == 0 {
		cmd.Println("No listings found.")
		return nil
	}
	rows := make([][]string, 0, len(v.Listings))
	for _, l := range v.Listings {
		rating := "-"
		if l.HasRating {
			rating = strconv.FormatFloat(l.Rating, 'f', 1, 64)
		}
		rows = append(rows, []string{l.Name, l.Category, rating, strconv.Itoa(l.Reviews), l.PriceLevel, l.Address})
	}
	return writeTable(cmd.OutOrStdout(), []string{"Name", "Category", "Rating", "Reviews", "Price", "Address"}, rows)
}
