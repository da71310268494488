package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TableOptions control [WriteTable].
type TableOptions struct {
	Border BorderStyle
	// Aligns sets per-column alignment; missing entries are AlignLeft.
	Aligns []Alignment
	// Index prepends a right-aligned, zero-based row number column.
	Index       bool
	IndexHeader string
	// MaxWidths truncates cells with "..."; zero means no limit.
	MaxWidths []int
	Caption   string
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// WriteTable renders a text table. An empty header renders rows only.
func WriteTable(w io.Writer, header []string, rows [][]string, opts TableOptions) error {
	aligns := opts.Aligns
	if opts.Index {
		if len(header) > 0 {
			header = append([]string{opts.IndexHeader}, header...)
		}
		indexed := make([][]string, len(rows))
		for i, row := range rows {
			indexed[i] = append([]string{strconv.Itoa(i)}, row...)
		}
		rows = indexed
		aligns = append([]Alignment{AlignRight}, aligns...)
	}

	numCols := colCount(header, rows)
	widths := computeWidths(numCols, header, rows)
	maxWidths := opts.MaxWidths
	if opts.Index && len(maxWidths) > 0 {
		maxWidths = append([]int{0}, maxWidths...)
	}
	for i, limit := range maxWidths {
		if i < numCols && limit > 0 && widths[i] > limit {
			widths[i] = limit
		}
	}
	aligns = extendAligns(aligns, numCols)

	var err error
	if opts.Border == BorderNone {
		err = renderPlainTable(w, header, rows, widths, aligns)
	} else {
		bc, ok := borderSets[opts.Border]
		if !ok {
			return fmt.Errorf("%w: border %d", ErrUnsupportedStyle, opts.Border)
		}
		err = renderBorderedTable(w, header, rows, widths, aligns, bc)
	}
	if err != nil {
		return err
	}
	if opts.Caption != "" {
		if _, err := fmt.Fprintln(w, opts.Caption); err != nil {
			return err
		}
	}
	return nil
}

func colCount(header []string, rows [][]string) int {
	n := len(header)
	for _, row := range rows {
		n = max(n, len(row))
	}
	return n
}

func computeWidths(numCols int, header []string, rows [][]string) []int {
	widths := make([]int, numCols)
	measure := func(cells []string) {
		for i, cell := range cells {
			if w := runewidth.StringWidth(cell); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}
	return widths
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

func renderPlainTable(w io.Writer, header []string, rows [][]string, widths []int, aligns []Alignment) error {
	if len(header) > 0 {
		if err := writePlainRow(w, header, widths, aligns); err != nil {
			return err
		}
		sep := make([]string, len(widths))
		for i, width := range widths {
			sep[i] = strings.Repeat("-", width)
		}
		if _, err := fmt.Fprintln(w, strings.Join(sep, "  ")); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := writePlainRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writePlainRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = formatCell(cellAt(cells, i), width, aligns[i])
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}

func renderBorderedTable(w io.Writer, header []string, rows [][]string, widths []int, aligns []Alignment, bc borderChars) error {
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	if len(header) > 0 {
		if err := drawRow(w, header, widths, aligns, bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := drawRow(w, row, widths, aligns, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawRow(w io.Writer, cells []string, widths []int, aligns []Alignment, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(formatCell(cellAt(cells, i), width, aligns[i]))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

func formatCell(s string, width int, align Alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
