package recfmt

import (
	"bytes"

	"github.com/BurntSushi/toml"
)

// TOMLSerializer renders records as a flat TOML table. The encoder writes
// keys in ascending order; Flatten keeps input order.
type TOMLSerializer struct{}

func (TOMLSerializer) Build(r Record) any {
	return NewRecord(r.fields...)
}

func (TOMLSerializer) Stringify(rep any) (string, error) {
	r, ok := rep.(Record)
	if !ok {
		return "", unexpected("Record", rep)
	}
	if err := checkUTF8(r.fields); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(r.Map()); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (TOMLSerializer) Flatten(rep any) (header, values []string) {
	r, _ := rep.(Record)
	header, values = emptyFlat(r.Len())
	return append(header, r.Names()...), append(values, r.Values()...)
}
