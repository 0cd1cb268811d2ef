package cli

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeTable prints rows as a pipe table, padding every cell to its column's
// display width so wide characters in source names line up.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	table := append([][]string{header}, rows...)
	widths := make([]int, len(header))
	for _, row := range table {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if n := runewidth.StringWidth(row[i]); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	var sb strings.Builder
	line := func(cells []string, sep bool) {
		sb.WriteString("|")
		for j, width := range widths {
			sb.WriteString(" ")
			if sep {
				sb.WriteString(strings.Repeat("-", width))
			} else {
				content := ""
				if j < len(cells) {
					content = cells[j]
				}
				sb.WriteString(runewidth.FillRight(content, width))
			}
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}
	line(header, false)
	line(nil, true)
	for _, row := range rows {
		line(row, false)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
