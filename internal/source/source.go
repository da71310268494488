// Package source reads delimited text files into records.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/bjaus/recfmt"
)

// ErrMalformedRecord matches every *MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError reports a row whose column count does not match.
type MalformedRecordError struct {
	Line int
	Want int
	Got  int
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s: line %d: want %d columns, got %d", ErrMalformedRecord, e.Line, e.Want, e.Got)
}

func (e *MalformedRecordError) Is(target error) bool { return target == ErrMalformedRecord }

// Mode selects how rows are mapped to field names.
type Mode int

const (
	// Positional maps each column to a fixed name from Options.Columns.
	Positional Mode = iota
	// Header takes field names from the first row.
	Header
)

// DefaultColumns are the positional field names.
var DefaultColumns = []string{"name", "phone", "address"}

// Options configure [Read].
type Options struct {
	Mode      Mode
	Columns   []string
	Delimiter rune
}

func (o Options) columns() []string {
	if len(o.Columns) == 0 {
		return DefaultColumns
	}
	return o.Columns
}

// ReadFile opens path and reads every row as a record.
func ReadFile(path string, opts Options) ([]recfmt.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	records, err := Read(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return records, nil
}

// Read parses rows from r. Every row must have exactly as many cells as
// there are field names; the first bad row fails the read with
// *MalformedRecordError.
func Read(r io.Reader, opts Options) ([]recfmt.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}

	var names []string
	if opts.Mode == Positional {
		names = opts.columns()
	}

	var records []recfmt.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "parse row")
		}
		line, _ := cr.FieldPos(0)
		if names == nil {
			if len(row) == 0 || (len(row) == 1 && row[0] == "") {
				return nil, errors.Newf("line %d: empty header row", line)
			}
			names = row
			continue
		}
		if len(row) != len(names) {
			return nil, &MalformedRecordError{Line: line, Want: len(names), Got: len(row)}
		}
		records = append(records, recfmt.Zip(names, row))
	}
}
