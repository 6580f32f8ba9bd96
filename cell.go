package tui

import "github.com/mattn/go-runewidth"

// Cell is one character cell of a Buffer. Wide characters occupy two
// cells: the first holds the rune and the second is a continuation with
// Width 0.
type Cell struct {
	Rune  rune
	Style Style
	Width uint8
}

// NewCell returns a cell for r with its display width.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style, Width: uint8(RuneWidth(r))}
}

func blankCell() Cell {
	return Cell{Rune: ' ', Width: 1}
}

// IsContinuation reports whether c is the trailing half of a wide
// character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal reports whether both cells show the same thing.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Width == other.Width && c.Style.Equal(other.Style)
}

// RuneWidth returns the number of cells r occupies: 1 or 2. Zero-width and
// control runes are given one cell so they stay addressable.
func RuneWidth(r rune) int {
	if runewidth.RuneWidth(r) >= 2 {
		return 2
	}
	return 1
}

// StringWidth returns the display width of s in cells.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}

// Truncate shortens s to at most width cells, appending tail when it had
// to cut.
func Truncate(s string, width int, tail string) string {
	return runewidth.Truncate(s, width, tail)
}
