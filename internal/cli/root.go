// Package cli implements the reviewctl command line: aggregate, search and export
// review batches stored on disk.
package cli

import (
	"github.com/spf13/cobra"

	"hotel-aggregator-go/internal/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "reviewctl",
	Short: "Aggregate hotel review batches",
	Long: `reviewctl reads a batch of per-source review summaries and prints the
weighted overall rating, the combined 5..1 star histogram and searchable tables.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger() *logger.Logger {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logger.NewWithOptions(logger.Options{Level: level, Output: rootCmd.ErrOrStderr()}).Component("reviewctl")
}
