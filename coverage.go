package tui

import "github.com/bits-and-blooms/bitset"

// coverage is a bitset over the cells of a screen, set for cells painted
// during a sweep. The zero value is an empty 0x0 coverage.
type coverage struct {
	width, height int
	bits          *bitset.BitSet
}

func newCoverage(s Size) coverage {
	s = s.NonNegative()
	return coverage{width: s.Width, height: s.Height, bits: bitset.New(uint(s.Area()))}
}

// fullCoverage returns a coverage with every cell set.
func fullCoverage(s Size) coverage {
	c := newCoverage(s)
	c.setRect(s.Rect())
	return c
}

func (c coverage) size() Size {
	return Size{Width: c.width, Height: c.height}
}

func (c coverage) index(x, y int) (uint, bool) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0, false
	}
	return uint(y*c.width + x), true
}

func (c coverage) set(x, y int) {
	if i, ok := c.index(x, y); ok {
		c.bits.Set(i)
	}
}

func (c coverage) has(x, y int) bool {
	i, ok := c.index(x, y)
	return ok && c.bits.Test(i)
}

func (c coverage) setRect(r Rect) {
	r = r.Intersect(c.size().Rect())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.set(x, y)
		}
	}
}

// andNot returns the cells set in c but not in other. Both must have the
// same size.
func (c coverage) andNot(other coverage) coverage {
	if c.bits == nil {
		return newCoverage(c.size())
	}
	out := c
	if other.bits == nil {
		out.bits = c.bits.Clone()
	} else {
		out.bits = c.bits.Difference(other.bits)
	}
	return out
}

// count returns the number of set cells.
func (c coverage) count() int {
	if c.bits == nil {
		return 0
	}
	return int(c.bits.Count())
}

// Runs calls fn for each maximal horizontal run of set cells, in row-major
// order, stopping at the first error.
func (c coverage) Runs(fn func(Line) error) error {
	if c.bits == nil || c.width == 0 {
		return nil
	}
	area := uint(c.width * c.height)
	for i := uint(0); i < area; {
		start, ok := c.bits.NextSet(i)
		if !ok || start >= area {
			return nil
		}
		rowEnd := (start/uint(c.width) + 1) * uint(c.width)
		end, ok := c.bits.NextClear(start)
		if !ok || end > rowEnd {
			end = rowEnd
		}
		x, y := int(start)%c.width, int(start)/c.width
		if err := fn(HLine(x, y, int(end-start))); err != nil {
			return err
		}
		i = end
	}
	return nil
}
