package display

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var errNoHeader = errors.New("markdown requires a header")

// WriteMarkdown renders a GitHub-flavored Markdown table. A header is
// required.
func WriteMarkdown(w io.Writer, header []string, rows [][]string, aligns []Alignment) error {
	if len(header) == 0 {
		return errNoHeader
	}
	numCols := len(header)
	widths := computeWidths(numCols, header, rows)
	// Minimum 3 for alignment markers.
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}
	aligns = extendAligns(aligns, numCols)

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}
	sep := make([]string, numCols)
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(strings.ReplaceAll(cellAt(cells, i), "|", `\|`), width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
