package recfmt

// Option configures the serializers of [NewDefaultRegistry].
type Option func(*options)

type options struct {
	jsonIndent   string
	xmlRoot      string
	xmlIndent    string
	ids          IDGenerator
	yamlSortKeys bool
	yamlIndent   int
	border       BorderStyle
	frameIndex   bool
}

func newOptions(opts ...Option) options {
	o := options{
		xmlRoot:      DefaultXMLRoot,
		ids:          UUIDGenerator,
		yamlSortKeys: true,
		border:       BorderRounded,
		frameIndex:   true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithJSONIndent writes one field per line, indented by indent.
func WithJSONIndent(indent string) Option {
	return func(o *options) { o.jsonIndent = indent }
}

// WithXMLRoot sets the markup root element name.
func WithXMLRoot(root string) Option {
	return func(o *options) { o.xmlRoot = root }
}

// WithXMLIndent pretty-prints markup using indent.
func WithXMLIndent(indent string) Option {
	return func(o *options) { o.xmlIndent = indent }
}

// WithIDGenerator replaces the source of markup id attributes.
func WithIDGenerator(ids IDGenerator) Option {
	return func(o *options) { o.ids = ids }
}

// WithYAMLSortKeys controls whether mapping keys are written sorted.
func WithYAMLSortKeys(sorted bool) Option {
	return func(o *options) { o.yamlSortKeys = sorted }
}

// WithYAMLIndent sets the mapping indentation width.
func WithYAMLIndent(n int) Option {
	return func(o *options) { o.yamlIndent = n }
}

// WithBorder sets the frame table border.
func WithBorder(b BorderStyle) Option {
	return func(o *options) { o.border = b }
}

// WithFrameIndex toggles the row index column of frame output.
func WithFrameIndex(on bool) Option {
	return func(o *options) { o.frameIndex = on }
}
