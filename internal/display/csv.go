package display

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// WriteCSV renders the header (if any) and rows as delimited values. A zero
// delimiter means comma.
func WriteCSV(w io.Writer, header []string, rows [][]string, delimiter rune) error {
	cw := csv.NewWriter(w)
	if delimiter != 0 {
		cw.Comma = delimiter
	}
	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTSV renders tab-separated values without quoting.
func WriteTSV(w io.Writer, header []string, rows [][]string) error {
	if len(header) > 0 {
		if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
