package recfmt

import (
	"encoding/xml"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// DefaultXMLRoot is the root element name used when none is configured.
const DefaultXMLRoot = "record"

// IDGenerator supplies the synthetic id attribute of markup roots.
type IDGenerator interface {
	NewID() string
}

// IDFunc adapts a function to [IDGenerator].
type IDFunc func() string

func (f IDFunc) NewID() string { return f() }

// UUIDGenerator produces a random, non-persistent UUID per call. It stands in
// until records carry an identity of their own.
var UUIDGenerator IDGenerator = IDFunc(uuid.NewString)

// Element is the markup representation: a root node with an id attribute and
// one child per field.
type Element struct {
	XMLName  xml.Name
	ID       string  `xml:"id,attr,omitempty"`
	Children []Child
}

// Child is a single field element.
type Child struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

// XMLSerializer renders records as markup. Field names must be valid element
// names; anything else fails at Stringify.
type XMLSerializer struct {
	Root   string
	Indent string
	IDs    IDGenerator
}

func (s XMLSerializer) Build(r Record) any {
	root := s.Root
	if root == "" {
		root = DefaultXMLRoot
	}
	ids := s.IDs
	if ids == nil {
		ids = UUIDGenerator
	}
	el := &Element{
		XMLName:  xml.Name{Local: root},
		ID:       ids.NewID(),
		Children: make([]Child, 0, r.Len()),
	}
	for _, f := range r.fields {
		el.Children = append(el.Children, Child{XMLName: xml.Name{Local: f.Name}, Text: f.Value})
	}
	return el
}

func (s XMLSerializer) Stringify(rep any) (string, error) {
	el, ok := rep.(*Element)
	if !ok || el == nil {
		return "", unexpected("*Element", rep)
	}
	if !isXMLName(el.XMLName.Local) {
		return "", fmt.Errorf("invalid root element name %q", el.XMLName.Local)
	}
	for _, c := range el.Children {
		if !isXMLName(c.XMLName.Local) {
			return "", fmt.Errorf("invalid element name %q", c.XMLName.Local)
		}
		if !isXMLText(c.Text) {
			return "", fmt.Errorf("element %q: value contains characters not allowed in XML", c.XMLName.Local)
		}
	}
	var (
		data []byte
		err  error
	)
	if s.Indent != "" {
		data, err = xml.MarshalIndent(el, "", s.Indent)
	} else {
		data, err = xml.Marshal(el)
	}
	if err != nil {
		return "", err
	}
	// Text, not the encoded byte form.
	return string(data), nil
}

func (s XMLSerializer) Flatten(rep any) (header, values []string) {
	el, _ := rep.(*Element)
	if el == nil {
		return emptyFlat(0)
	}
	header, values = emptyFlat(len(el.Children))
	for _, c := range el.Children {
		header = append(header, c.XMLName.Local)
		values = append(values, c.Text)
	}
	return header, values
}

// isXMLText reports whether s is valid UTF-8 made only of XML 1.0 Char
// runes. encoding/xml would otherwise replace offending runes silently.
func isXMLText(s string) bool {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return false
			}
		}
		switch {
		case r == 0x09 || r == 0x0A || r == 0x0D:
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= 0x10FFFF:
		default:
			return false
		}
	}
	return true
}

// isXMLName is a conservative check of the XML Name production.
func isXMLName(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == ':' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return true
}
