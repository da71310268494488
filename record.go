package recfmt

import (
	"github.com/samber/lo"
)

// Field is a single named value of a [Record].
type Field struct {
	Name  string
	Value string
}

// Record is an ordered, immutable set of uniquely named string fields.
// The zero value is an empty record.
type Record struct {
	fields []Field
}

// NewRecord builds a record from fields in order. When a name repeats, the
// field keeps its first position and takes the last value.
func NewRecord(fields ...Field) Record {
	out := make([]Field, 0, len(fields))
	index := make(map[string]int, len(fields))
	for _, f := range fields {
		if i, ok := index[f.Name]; ok {
			out[i].Value = f.Value
			continue
		}
		index[f.Name] = len(out)
		out = append(out, f)
	}
	return Record{fields: out}
}

// Zip builds a record by pairing names with values position by position.
// Extra names or values beyond the shorter slice are ignored.
func Zip(names, values []string) Record {
	n := min(len(names), len(values))
	fields := make([]Field, n)
	for i := range n {
		fields[i] = Field{Name: names[i], Value: values[i]}
	}
	return NewRecord(fields...)
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.fields) }

// Fields returns a copy of the fields in order.
func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Names returns the field names in order.
func (r Record) Names() []string {
	return lo.Map(r.fields, func(f Field, _ int) string { return f.Name })
}

// Values returns the field values in order.
func (r Record) Values() []string {
	return lo.Map(r.fields, func(f Field, _ int) string { return f.Value })
}

// Get returns the value of the named field.
func (r Record) Get(name string) (string, bool) {
	f, ok := lo.Find(r.fields, func(f Field) bool { return f.Name == name })
	return f.Value, ok
}

// Map returns the fields as an unordered map.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r.fields))
	for _, f := range r.fields {
		m[f.Name] = f.Value
	}
	return m
}
