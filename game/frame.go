package game

import "strings"

// Glyphs used for each cell kind and for the side borders.
const (
	GlyphEmpty  = ' '
	GlyphHead   = '='
	GlyphTail   = '-'
	GlyphFood   = '*'
	GlyphBorder = '|'
)

func (c Cell) Glyph() rune {
	switch c {
	case SnakeHead:
		return GlyphHead
	case SnakeTail:
		return GlyphTail
	case Food:
		return GlyphFood
	default:
		return GlyphEmpty
	}
}

// Frame is a rendered snapshot of the grid, one slice of cells per row.
type Frame struct {
	Cells [][]Cell
}

func newFrame(cells [][]Cell) Frame {
	out := make([][]Cell, len(cells))
	for r := range cells {
		out[r] = append([]Cell(nil), cells[r]...)
	}
	return Frame{Cells: out}
}

func (f Frame) Height() int {
	return len(f.Cells)
}

func (f Frame) Width() int {
	if len(f.Cells) == 0 {
		return 0
	}
	return len(f.Cells[0])
}

// Rows returns the glyph rows without borders.
func (f Frame) Rows() []string {
	rows := make([]string, len(f.Cells))
	for r, line := range f.Cells {
		var b strings.Builder
		b.Grow(len(line))
		for _, c := range line {
			b.WriteRune(c.Glyph())
		}
		rows[r] = b.String()
	}
	return rows
}

// Lines returns each row wrapped in the side border.
func (f Frame) Lines() []string {
	rows := f.Rows()
	for i, row := range rows {
		rows[i] = string(GlyphBorder) + row + string(GlyphBorder)
	}
	return rows
}

// String renders the frame the way it is printed to a plain terminal: a
// leading blank line, then one bordered line per row.
func (f Frame) String() string {
	var b strings.Builder
	b.WriteByte('\n')
	for _, line := range f.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
