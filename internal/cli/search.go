package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hotel-aggregator-go/internal/dataset"
	"hotel-aggregator-go/internal/view"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [file] [query]",
	Short: "Filter the sources of a review batch",
	Long: `Prints the sources whose label contains the query, ignoring case,
in their original order. The summary still covers the whole batch.`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output the view as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	sources, err := dataset.LoadSources(args[0])
	if err != nil {
		return fmt.Errorf("load batch: %w", err)
	}
	v := view.BuildReviewView(sources, args[1])
	newLogger().WithField("query", args[1]).WithField("matched", len(v.Sources)).Debug("sources filtered")
	if searchJSON {
		return outputJSON(cmd, v)
	}
	return writeSources(cmd, v)
}
