// Package display renders flattened records (a header and rows of cells) as
// text tables and other tabular formats.
package display

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedStyle = errors.New("unsupported display style")
	ErrInvalidTemplate  = errors.New("invalid template")
)

// Style selects how flattened rows are displayed.
type Style string

const (
	Table    Style = "table"
	Markdown Style = "markdown"
	CSV      Style = "csv"
	TSV      Style = "tsv"
	HTML     Style = "html"
	ENV      Style = "env"
	None     Style = "none"
)

const goTemplatePrefix = "go-template="

var styles = []Style{Table, Markdown, CSV, TSV, HTML, ENV, None}

// String returns the style name.
func (s Style) String() string { return string(s) }

// Styles returns all static style names.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// GoTemplate returns a Style that executes tmpl once per row. The row is
// passed to the template as a map from column name to cell.
func GoTemplate(tmpl string) Style {
	return Style(goTemplatePrefix + tmpl)
}

// ParseStyle parses a style name or a go-template=<tmpl> string.
func ParseStyle(s string) (Style, error) {
	if tmpl, ok := strings.CutPrefix(s, goTemplatePrefix); ok {
		return GoTemplate(tmpl), nil
	}
	for _, st := range styles {
		if strings.EqualFold(string(st), s) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedStyle, s)
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[string]BorderStyle{
	"rounded": BorderRounded,
	"none":    BorderNone,
	"ascii":   BorderASCII,
	"heavy":   BorderHeavy,
	"double":  BorderDouble,
}

// ParseBorder parses a border name: rounded, none, ascii, heavy or double.
func ParseBorder(s string) (BorderStyle, error) {
	b, ok := borderNames[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("%w: border %q", ErrUnsupportedStyle, s)
	}
	return b, nil
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignNames = map[string]Alignment{
	"left":   AlignLeft,
	"center": AlignCenter,
	"right":  AlignRight,
}

// ParseAlign parses an alignment name: left, center or right. An empty string
// is left.
func ParseAlign(s string) (Alignment, error) {
	if s == "" {
		return AlignLeft, nil
	}
	a, ok := alignNames[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("%w: alignment %q", ErrUnsupportedStyle, s)
	}
	return a, nil
}

// Options tune rendering. Fields a style does not use are ignored.
type Options struct {
	Table     TableOptions
	Delimiter rune
	// Export prefixes ENV lines with "export ".
	Export bool
}

// Write renders header and rows to w in the given style. Nothing is written
// for an empty set of rows.
func Write(w io.Writer, s Style, header []string, rows [][]string, opts Options) error {
	if len(rows) == 0 {
		return nil
	}
	switch s {
	case Table:
		return WriteTable(w, header, rows, opts.Table)
	case Markdown:
		return WriteMarkdown(w, header, rows, opts.Table.Aligns)
	case CSV:
		return WriteCSV(w, header, rows, opts.Delimiter)
	case TSV:
		return WriteTSV(w, header, rows)
	case HTML:
		return WriteHTML(w, header, rows, opts.Table.Aligns)
	case ENV:
		return WriteENV(w, header, rows, opts.Export)
	case None:
		return nil
	default:
		if tmpl, ok := strings.CutPrefix(string(s), goTemplatePrefix); ok {
			return WriteTemplate(w, tmpl, header, rows)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedStyle, s)
	}
}
