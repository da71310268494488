package recfmt

import (
	"bytes"

	"github.com/samber/lo"

	"github.com/bjaus/recfmt/internal/display"
)

// DataFrame is the tabular-frame representation: named columns and rows of
// cells. A row may lack some columns after frames with different columns are
// merged; those cells render empty.
type DataFrame struct {
	columns []string
	rows    []map[string]string
}

// NewDataFrame builds a single-row frame from a record.
func NewDataFrame(r Record) *DataFrame {
	return &DataFrame{
		columns: r.Names(),
		rows:    []map[string]string{r.Map()},
	}
}

// Columns returns the column names in order.
func (df *DataFrame) Columns() []string {
	out := make([]string, len(df.columns))
	copy(out, df.columns)
	return out
}

// Len returns the number of rows.
func (df *DataFrame) Len() int { return len(df.rows) }

// Row converts row i back into a record holding only the cells it has.
func (df *DataFrame) Row(i int) Record {
	if i < 0 || i >= len(df.rows) {
		return Record{}
	}
	row := df.rows[i]
	fields := make([]Field, 0, len(row))
	for _, col := range df.columns {
		if v, ok := row[col]; ok {
			fields = append(fields, Field{Name: col, Value: v})
		}
	}
	return Record{fields: fields}
}

// Cells returns every row as a slice of cells aligned with Columns.
func (df *DataFrame) Cells() [][]string {
	out := make([][]string, len(df.rows))
	for i, row := range df.rows {
		out[i] = lo.Map(df.columns, func(col string, _ int) string { return row[col] })
	}
	return out
}

// Concat returns a new frame with the rows of df followed by the rows of
// other. Columns are the union, in first-seen order.
func (df *DataFrame) Concat(other *DataFrame) *DataFrame {
	out := &DataFrame{
		columns: lo.Union(df.columns, other.columns),
		rows:    make([]map[string]string, 0, len(df.rows)+len(other.rows)),
	}
	for _, row := range df.rows {
		out.rows = append(out.rows, cloneRow(row))
	}
	for _, row := range other.rows {
		out.rows = append(out.rows, cloneRow(row))
	}
	return out
}

func cloneRow(row map[string]string) map[string]string {
	out := make(map[string]string, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

// BorderStyle controls the borders of frame output.
type BorderStyle = display.BorderStyle

const (
	BorderRounded = display.BorderRounded
	BorderNone    = display.BorderNone
	BorderASCII   = display.BorderASCII
	BorderHeavy   = display.BorderHeavy
	BorderDouble  = display.BorderDouble
)

// FrameSerializer renders records as a text table, one row per record. It is
// the only built-in serializer whose results can be merged.
type FrameSerializer struct {
	Border BorderStyle
	Index  bool
}

// NewFrameSerializer returns a frame serializer with rounded borders and a
// zero-based row index column.
func NewFrameSerializer() FrameSerializer {
	return FrameSerializer{Border: BorderRounded, Index: true}
}

func (s FrameSerializer) Build(r Record) any {
	return NewDataFrame(r)
}

// Stringify renders the frame as a table. A frame without columns renders
// as an empty string.
func (s FrameSerializer) Stringify(rep any) (string, error) {
	df, ok := rep.(*DataFrame)
	if !ok || df == nil {
		return "", unexpected("*DataFrame", rep)
	}
	if len(df.columns) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	err := display.WriteTable(&buf, df.columns, df.Cells(), display.TableOptions{
		Border: s.Border,
		Index:  s.Index,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Flatten reports the first row only.
func (s FrameSerializer) Flatten(rep any) (header, values []string) {
	df, _ := rep.(*DataFrame)
	if df == nil {
		return emptyFlat(0)
	}
	r := df.Row(0)
	header, values = emptyFlat(r.Len())
	return append(header, r.Names()...), append(values, r.Values()...)
}

func (s FrameSerializer) Merge(a, b any) (any, error) {
	left, ok := a.(*DataFrame)
	if !ok || left == nil {
		return nil, unexpected("*DataFrame", a)
	}
	right, ok := b.(*DataFrame)
	if !ok || right == nil {
		return nil, unexpected("*DataFrame", b)
	}
	return left.Concat(right), nil
}
