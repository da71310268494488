package recfmt

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownFormat            = errors.New("unknown format")
	ErrSerialization            = errors.New("serialization failed")
	ErrNotMergeable             = errors.New("results cannot be merged")
	ErrUnexpectedRepresentation = errors.New("unexpected representation")
)

// Format is the key a serializer is registered under.
type Format string

const (
	JSON  Format = "JSON"
	XML   Format = "XML"
	YAML  Format = "YAML"
	Frame Format = "FRAME"
	TOML  Format = "TOML"
)

// String returns the format key.
func (f Format) String() string { return string(f) }

// UnknownFormatError reports a lookup of a format that is not registered.
// It matches [ErrUnknownFormat] with errors.Is.
type UnknownFormatError struct {
	Format Format
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownFormat, string(e.Format))
}

func (e *UnknownFormatError) Unwrap() error { return ErrUnknownFormat }

// SerializationError reports a representation that could not be rendered to
// text. It matches [ErrSerialization] and the underlying cause with errors.Is.
type SerializationError struct {
	Format Format
	Err    error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("%s: format %q: %v", ErrSerialization, string(e.Format), e.Err)
}

func (e *SerializationError) Unwrap() []error { return []error{ErrSerialization, e.Err} }

// --- Core Serializer Interfaces ---

// Serializer turns a [Record] into a format-specific representation and back
// into a flat view.
//
// Build must not fail for any record. Stringify is a pure function of the
// representation. Flatten returns the field names and values in record order
// and must agree across all serializers for the same record.
type Serializer interface {
	Build(r Record) any
	Stringify(rep any) (string, error)
	Flatten(rep any) (header, values []string)
}

// Merger is implemented by serializers whose representations can be
// concatenated. Merge returns a new representation holding the rows of a
// followed by the rows of b and never modifies either argument.
type Merger interface {
	Merge(a, b any) (any, error)
}

func unexpected(want string, rep any) error {
	return fmt.Errorf("%w: want %s, got %T", ErrUnexpectedRepresentation, want, rep)
}

func emptyFlat(n int) (header, values []string) {
	return make([]string, 0, n), make([]string, 0, n)
}

// checkUTF8 rejects fields whose name or value is not valid UTF-8. Both JSON
// and TOML documents must be UTF-8 text.
func checkUTF8(fields []Field) error {
	for _, f := range fields {
		if !utf8.ValidString(f.Name) || !utf8.ValidString(f.Value) {
			return fmt.Errorf("field %q: invalid UTF-8", f.Name)
		}
	}
	return nil
}
