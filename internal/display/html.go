package display

import (
	"fmt"
	"html"
	"io"
)

// WriteHTML renders an HTML table with a thead when a header is present.
func WriteHTML(w io.Writer, header []string, rows [][]string, aligns []Alignment) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	if len(header) > 0 {
		if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
			return err
		}
		if err := writeHTMLRow(w, "th", header, aligns); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeHTMLRow(w, "td", row, aligns); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func writeHTMLRow(w io.Writer, tag string, cells []string, aligns []Alignment) error {
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for i, cell := range cells {
		if _, err := fmt.Fprintf(w, "      <%s%s>%s</%s>\n", tag, alignStyle(aligns, i), html.EscapeString(cell), tag); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "    </tr>")
	return err
}

func alignStyle(aligns []Alignment, col int) string {
	if col >= len(aligns) {
		return ""
	}
	switch aligns[col] {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
