package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hotel-aggregator-go/internal/dataset"
	"hotel-aggregator-go/internal/types"
	"hotel-aggregator-go/internal/view"
)

var summaryJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary [file]",
	Short: "Print the aggregate of a review batch",
	Long: `Reads a JSON array of per-source records and prints the source count,
total reviews, review-weighted average rating and the combined star histogram.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "output the view as JSON")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	log := newLogger().WithField("file", args[0])
	sources, err := dataset.LoadSources(args[0])
	if err != nil {
		return fmt.Errorf("load batch: %w", err)
	}
	log.WithField("sources", len(sources)).Debug("batch loaded")

	v := view.BuildReviewView(sources, "")
	if len(v.DuplicateSources) > 0 {
		log.WithField("duplicates", v.DuplicateSources).Warn("duplicate source labels in batch")
	}
	if summaryJSON {
		return outputJSON(cmd, v)
	}

	cmd.Printf("Sources:        %d\n", v.Summary.SourceCount)
	cmd.Printf("Total reviews:  %d\n", v.Summary.TotalReviews)
	cmd.Printf("Overall rating: %.2f\n", v.Summary.WeightedAverageRating)
	cmd.Println()

	rows := make([][]string, 0, len(v.Distribution))
	for _, b := range v.Distribution {
		rows = append(rows, []string{
			strconv.Itoa(b.Star) + "★",
			strconv.Itoa(b.Count),
			strconv.FormatFloat(b.Percent, 'f', 1, 64) + "%",
			bar(b.Percent),
		})
	}
	if err := writeTable(cmd.OutOrStdout(), []string{"Star", "Count", "Share", ""}, rows); err != nil {
		return err
	}
	cmd.Println()
	return writeSources(cmd, v)
}

func writeSources(cmd *cobra.Command, v types.ReviewView) error {
	if len(v.Sources) == 0 {
		cmd.Println("No sources found.")
		return nil
	}
	dups := map[string]bool{}
	for _, d := range v.DuplicateSources {
		dups[d] = true
	}
	rows := make([][]string, 0, len(v.Sources))
	for _, r := range v.Sources {
		rating := "-"
		if r.HasRating {
			rating = strconv.FormatFloat(r.Rating, 'f', 1, 64)
		}
		name := r.Source
		if dups[name] {
			name += " (dup)"
		}
		rows = append(rows, []string{name, rating, strconv.Itoa(r.Count), strconv.Itoa(len(r.Reviews))})
	}
	return writeTable(cmd.OutOrStdout(), []string{"Source", "Rating", "Reviews", "Snippets"}, rows)
}

// bar draws one block per 5% of share.
func bar(pct float64) string {
	return strings.Repeat("█", int(pct/5))
}

func outputJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
