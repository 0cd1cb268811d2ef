package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"hotel-aggregator-go/internal/dataset"
	"hotel-aggregator-go/internal/view"
)

var exportQuery string

var exportCmd = &cobra.Command{
	Use:   "export [file] [out.xlsx]",
	Short: "Write the aggregate of a review batch to a spreadsheet",
	Args:  cobra.ExactArgs(2),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportQuery, "query", "q", "", "only list matching sources")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	sources, err := dataset.LoadSources(args[0])
	if err != nil {
		return fmt.Errorf("load batch: %w", err)
	}
	v := view.BuildReviewView(sources, exportQuery)
	if err := writeOutput(args[1], func(w io.Writer) error {
		return dataset.WriteReviewView(w, v)
	}); err != nil {
		return err
	}
	cmd.Printf("Wrote %s\n", args[1])
	return nil
}

// writeOutput creates path and fills it with write. On any failure, the close
// included, the partial file is removed.
func writeOutput(path string, write func(io.Writer) error) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
		if err != nil {
			err = errors.Join(err, removeIfExists(path))
		}
	}()
	if err := write(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
