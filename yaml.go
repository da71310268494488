package recfmt

import (
	"bytes"
	"cmp"
	"slices"

	"gopkg.in/yaml.v3"
)

// YAMLSerializer renders records as a block mapping.
//
// The representation is a mapping node in input field order. With SortKeys
// the mapping is written with keys in ascending order, the same layout a
// plain map would get from the encoder. Flatten always uses input order.
type YAMLSerializer struct {
	SortKeys bool
	Indent   int
}

// NewYAMLSerializer returns the default mapping serializer, which sorts keys.
func NewYAMLSerializer() YAMLSerializer {
	return YAMLSerializer{SortKeys: true}
}

func (s YAMLSerializer) Build(r Record) any {
	node := &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: make([]*yaml.Node, 0, 2*r.Len()),
	}
	for _, f := range r.fields {
		node.Content = append(node.Content, scalar(f.Name), scalar(f.Value))
	}
	return node
}

func (s YAMLSerializer) Stringify(rep any) (string, error) {
	node, ok := rep.(*yaml.Node)
	if !ok || node == nil || node.Kind != yaml.MappingNode {
		return "", unexpected("mapping *yaml.Node", rep)
	}
	if s.SortKeys {
		node = sortedMapping(node)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if s.Indent > 0 {
		enc.SetIndent(s.Indent)
	}
	if err := enc.Encode(node); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s YAMLSerializer) Flatten(rep any) (header, values []string) {
	node, _ := rep.(*yaml.Node)
	if node == nil {
		return emptyFlat(0)
	}
	header, values = emptyFlat(len(node.Content) / 2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		header = append(header, node.Content[i].Value)
		values = append(values, node.Content[i+1].Value)
	}
	return header, values
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// sortedMapping returns a shallow copy of a mapping node with its key/value
// pairs ordered by key. The input node is left untouched.
func sortedMapping(node *yaml.Node) *yaml.Node {
	pairs := make([][2]*yaml.Node, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		pairs = append(pairs, [2]*yaml.Node{node.Content[i], node.Content[i+1]})
	}
	slices.SortStableFunc(pairs, func(a, b [2]*yaml.Node) int {
		return cmp.Compare(a[0].Value, b[0].Value)
	})
	out := *node
	out.Content = make([]*yaml.Node, 0, len(node.Content))
	for _, p := range pairs {
		out.Content = append(out.Content, p[0], p[1])
	}
	return &out
}
