package display

import (
	"errors"
	"fmt"
	"io"
)

var errEnvNoHeader = errors.New("env requires a header")

// WriteENV renders each row as KEY="value" lines keyed by the header, with a
// blank line between rows. export prefixes every line with "export ".
func WriteENV(w io.Writer, header []string, rows [][]string, export bool) error {
	if len(header) == 0 {
		return errEnvNoHeader
	}
	prefix := ""
	if export {
		prefix = "export "
	}
	for i, row := range rows {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		for j, key := range header {
			if _, err := fmt.Fprintf(w, "%s%s=%q\n", prefix, key, cellAt(row, j)); err != nil {
				return err
			}
		}
	}
	return nil
}
