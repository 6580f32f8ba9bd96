package tui

import "strings"

// Buffer is a double-buffered grid of cells. A sweep paints the back
// grid; Swap makes it the front grid, which mirrors what the backend
// shows.
type Buffer struct {
	front  []Cell
	back   []Cell
	width  int
	height int
}

// NewBuffer returns a blank buffer of the given size.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Size returns the buffer dimensions.
func (b *Buffer) Size() Size {
	return Size{Width: b.width, Height: b.height}
}

// Rect returns the buffer bounds.
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) to a flat index, or -1 when out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the back cell at (x, y).
func (b *Buffer) Cell(x, y int) Cell {
	if i := b.idx(x, y); i >= 0 {
		return b.back[i]
	}
	return Cell{}
}

// Front returns the presented cell at (x, y).
func (b *Buffer) Front(x, y int) Cell {
	if i := b.idx(x, y); i >= 0 {
		return b.front[i]
	}
	return Cell{}
}

func (b *Buffer) setCell(x, y int, c Cell) {
	if i := b.idx(x, y); i >= 0 {
		b.back[i] = c
	}
}

// SetRune writes r at (x, y), keeping wide characters whole: a wide
// character that is partly overwritten is blanked, and one that does not
// fit on the row is replaced by a space.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	if b.idx(x, y) < 0 {
		return
	}
	width := RuneWidth(r)

	cur := b.Cell(x, y)
	if cur.IsContinuation() {
		b.clearWideAt(x, y)
	}
	if cur.Width == 2 {
		b.setCell(x+1, y, blankCell())
	}
	if width == 2 && x+1 < b.width {
		if next := b.Cell(x+1, y); next.Width == 2 || next.IsContinuation() {
			b.clearWideAt(x+1, y)
		}
	}
	if width == 2 && x+1 >= b.width {
		b.setCell(x, y, Cell{Rune: ' ', Style: style, Width: 1})
		return
	}

	b.setCell(x, y, Cell{Rune: r, Style: style, Width: uint8(width)})
	if width == 2 {
		b.setCell(x+1, y, Cell{Style: style})
	}
}

// clearWideAt blanks the wide character covering (x, y).
func (b *Buffer) clearWideAt(x, y int) {
	switch cell := b.Cell(x, y); {
	case cell.IsContinuation():
		b.setCell(x-1, y, blankCell())
		b.setCell(x, y, blankCell())
	case cell.Width == 2:
		b.setCell(x, y, blankCell())
		b.setCell(x+1, y, blankCell())
	}
}

// SetString writes s starting at (x, y), clipped to clip, and returns the
// cells it advanced. Wide characters that would straddle the clip edge are
// skipped.
func (b *Buffer) SetString(x, y int, s string, style Style, clip Rect) int {
	clip = clip.Intersect(b.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}
	cur := x
	for _, r := range s {
		if cur >= clip.Right() {
			break
		}
		width := RuneWidth(r)
		if cur >= clip.X && cur+width <= clip.Right() {
			b.SetRune(cur, y, r, style)
		}
		cur += width
	}
	return cur - x
}

// Fill paints every cell of rect inside clip with r.
func (b *Buffer) Fill(rect Rect, r rune, style Style, clip Rect) {
	rect = rect.Intersect(clip).Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}
	width := RuneWidth(r)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if width == 2 && x+1 >= rect.Right() {
				b.SetRune(x, y, ' ', style)
				x++
				continue
			}
			b.SetRune(x, y, r, style)
			x += width
		}
	}
}

// Reset blanks the back grid.
func (b *Buffer) Reset() {
	for i := range b.back {
		b.back[i] = blankCell()
	}
}

// Invalidate marks every front cell unknown, so the next diff emits every
// painted cell.
func (b *Buffer) Invalidate() {
	for i := range b.front {
		b.front[i] = Cell{Rune: -1}
	}
}

// Swap copies the back grid to the front grid.
func (b *Buffer) Swap() {
	copy(b.front, b.back)
}

// Resize changes the dimensions. Both grids are blanked.
func (b *Buffer) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	b.width, b.height = width, height
	b.front = make([]Cell, width*height)
	b.back = make([]Cell, width*height)
	for i := range b.front {
		b.front[i] = blankCell()
		b.back[i] = blankCell()
	}
}

// String renders the back grid, one line per row. Continuation cells are
// skipped.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			cell := b.back[y*b.width+x]
			if cell.IsContinuation() {
				continue
			}
			sb.WriteRune(cell.Rune)
		}
	}
	return sb.String()
}
