package display

import (
	"fmt"
	"io"
	"text/template"
)

// WriteTemplate executes tmpl once per row with a map of column name to
// cell, writing a newline after each row.
func WriteTemplate(w io.Writer, tmpl string, header []string, rows [][]string) error {
	t, err := template.New("row").Option("missingkey=zero").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, row := range rows {
		data := make(map[string]string, len(header))
		for i, col := range header {
			data[col] = cellAt(row, i)
		}
		if err := t.Execute(w, data); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
