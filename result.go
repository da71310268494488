package recfmt

import (
	"errors"
	"fmt"
)

// Result is the output of a single [Registry.Create] call. It owns its
// representation; nothing else holds a reference to it.
type Result struct {
	format Format
	ser    Serializer
	rep    any
}

// NewResult wraps a representation produced by s under format f.
func NewResult(f Format, s Serializer, rep any) *Result {
	return &Result{format: f, ser: s, rep: rep}
}

// Format returns the key the result was created under.
func (r *Result) Format() Format { return r.format }

// Representation returns the format-specific value built by the serializer.
func (r *Result) Representation() any { return r.rep }

// Stringify renders the representation as text. Failures are reported as
// *SerializationError.
func (r *Result) Stringify() (string, error) {
	s, err := r.ser.Stringify(r.rep)
	if err != nil {
		var serr *SerializationError
		if errors.As(err, &serr) {
			return "", err
		}
		return "", &SerializationError{Format: r.format, Err: err}
	}
	return s, nil
}

// String implements fmt.Stringer. Rendering failures yield a marker instead
// of the text.
func (r *Result) String() string {
	s, err := r.Stringify()
	if err != nil {
		return fmt.Sprintf("%%!(%v)", err)
	}
	return s
}

// Flatten returns the field names and values of the representation.
func (r *Result) Flatten() (header, values []string) {
	return r.ser.Flatten(r.rep)
}

// Merge returns a new result holding the rows of r followed by the rows of
// other. Both results must share a format whose serializer implements
// [Merger]. Neither operand is modified.
func (r *Result) Merge(other *Result) (*Result, error) {
	if other == nil || r.format != other.format {
		return nil, fmt.Errorf("%w: format mismatch", ErrNotMergeable)
	}
	m, ok := r.ser.(Merger)
	if !ok {
		return nil, fmt.Errorf("%w: format %q does not support merge", ErrNotMergeable, string(r.format))
	}
	rep, err := m.Merge(r.rep, other.rep)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMergeable, err)
	}
	return NewResult(r.format, r.ser, rep), nil
}
