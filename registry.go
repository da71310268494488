package recfmt

import (
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// Registry binds format keys to serializers. It is safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	serializers map[Format]Serializer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{serializers: make(map[Format]Serializer)}
}

// NewDefaultRegistry returns a registry with every built-in format
// registered, configured by opts.
func NewDefaultRegistry(opts ...Option) *Registry {
	o := newOptions(opts...)
	r := NewRegistry()
	r.Register(JSON, JSONSerializer{Indent: o.jsonIndent})
	r.Register(XML, XMLSerializer{Root: o.xmlRoot, Indent: o.xmlIndent, IDs: o.ids})
	r.Register(YAML, YAMLSerializer{SortKeys: o.yamlSortKeys, Indent: o.yamlIndent})
	r.Register(Frame, FrameSerializer{Border: o.border, Index: o.frameIndex})
	r.Register(TOML, TOMLSerializer{})
	return r
}

// Register binds f to s, replacing any previous binding. A nil serializer,
// including a nil pointer held in the interface, is ignored.
func (r *Registry) Register(f Format, s Serializer) {
	if isNil(s) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.serializers[f] = s
}

// Unregister removes the binding for f, if any.
func (r *Registry) Unregister(f Format) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.serializers, f)
}

// Lookup returns the serializer bound to f.
func (r *Registry) Lookup(f Format) (Serializer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.serializers[f]
	return s, ok
}

// Create builds a result for record rec using the serializer bound to f.
// An unbound format fails with *UnknownFormatError.
func (r *Registry) Create(f Format, rec Record) (*Result, error) {
	s, ok := r.Lookup(f)
	if !ok {
		return nil, &UnknownFormatError{Format: f}
	}
	return NewResult(f, s, s.Build(rec)), nil
}

// Formats returns the registered keys in ascending order.
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	keys := lo.Keys(r.serializers)
	r.mu.RUnlock()
	slices.Sort(keys)
	return keys
}

// ParseFormat matches s against the registered keys, ignoring case.
func (r *Registry) ParseFormat(s string) (Format, error) {
	for _, f := range r.Formats() {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", &UnknownFormatError{Format: Format(s)}
}

func isNil(s Serializer) bool {
	if s == nil {
		return true
	}
	switch v := reflect.ValueOf(s); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
