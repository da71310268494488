package recfmt

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.Config{
	EscapeHTML:             false,
	ValidateJsonRawMessage: true,
}.Froze()

// Object is the structured-object representation: fields in input order.
type Object []Field

// MarshalJSON encodes the object compactly, keeping field order.
func (o Object) MarshalJSON() ([]byte, error) {
	s, err := encodeObject(o, "", "", ",", ":")
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// JSONSerializer renders records as JSON objects in input field order.
//
// Without an indent the object is written on one line using ", " and ": "
// separators. With an indent each field goes on its own line.
type JSONSerializer struct {
	Indent string
}

func (s JSONSerializer) Build(r Record) any {
	return Object(r.Fields())
}

func (s JSONSerializer) Stringify(rep any) (string, error) {
	o, ok := rep.(Object)
	if !ok {
		return "", unexpected("Object", rep)
	}
	if s.Indent == "" {
		return encodeObject(o, "", "", ", ", ": ")
	}
	return encodeObject(o, "\n", s.Indent, ",", ": ")
}

func (s JSONSerializer) Flatten(rep any) (header, values []string) {
	o, _ := rep.(Object)
	header, values = emptyFlat(len(o))
	for _, f := range o {
		header = append(header, f.Name)
		values = append(values, f.Value)
	}
	return header, values
}

func encodeObject(o Object, newline, indent, sep, colon string) (string, error) {
	if len(o) == 0 {
		return "{}", nil
	}
	if err := checkUTF8(o); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("{")
	for i, f := range o {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(newline)
		sb.WriteString(indent)
		k, err := jsonAPI.MarshalToString(f.Name)
		if err != nil {
			return "", err
		}
		v, err := jsonAPI.MarshalToString(f.Value)
		if err != nil {
			return "", err
		}
		sb.WriteString(k)
		sb.WriteString(colon)
		sb.WriteString(v)
	}
	sb.WriteString(newline)
	sb.WriteString("}")
	return sb.String(), nil
}
