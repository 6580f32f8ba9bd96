package layout

import "errors"

// ErrZeroExtent is returned when splitting an extent of zero length or a
// total of zero.
var ErrZeroExtent = errors.New("layout: zero-length extent")

// Extent is a one-dimensional span of cells.
type Extent struct {
	Off, Len int
}

// End returns the first cell past the extent.
func (e Extent) End() int {
	return e.Off + e.Len
}

// IsEmpty reports whether the extent covers no cells.
func (e Extent) IsEmpty() bool {
	return e.Len <= 0
}

// Split divides e proportionally into three consecutive parts: the share
// before a window, the window itself, and the share after it. start and
// length describe the window within a virtual range of size total.
//
// The window always gets at least one cell. When the window touches the end
// of the total range the post part is empty, and when it starts at zero the
// pre part is empty, so a thumb drawn at the extremes sits flush.
func (e Extent) Split(start, length, total int) (pre, active, post Extent, err error) {
	if e.Len <= 0 || total <= 0 {
		return Extent{}, Extent{}, Extent{}, ErrZeroExtent
	}
	start = clamp(start, 0, total)
	length = clamp(length, 0, total-start)

	activeLen := clamp(divRound(e.Len*length, total), 1, e.Len)
	preLen := clamp(divRound(e.Len*start, total), 0, e.Len-activeLen)
	switch {
	case start+length >= total:
		preLen = e.Len - activeLen
	case start == 0:
		preLen = 0
	case preLen+activeLen == e.Len:
		// Not at the end, so leave one cell of track after the thumb.
		if preLen > 0 {
			preLen--
		} else if activeLen > 1 {
			activeLen--
		}
	}
	postLen := e.Len - preLen - activeLen

	pre = Extent{Off: e.Off, Len: preLen}
	active = Extent{Off: pre.End(), Len: activeLen}
	post = Extent{Off: active.End(), Len: postLen}
	return pre, active, post, nil
}

// SplitWeights divides e among n parts in proportion to weights. Leftover
// cells from rounding go to the earliest parts. Weights must be positive.
func (e Extent) SplitWeights(weights ...int) ([]Extent, error) {
	total := 0
	for _, w := range weights {
		if w <= 0 {
			return nil, errors.New("layout: non-positive weight")
		}
		total += w
	}
	if e.Len < 0 || total == 0 {
		return nil, ErrZeroExtent
	}
	out := make([]Extent, len(weights))
	used := 0
	for i, w := range weights {
		out[i].Len = e.Len * w / total
		used += out[i].Len
	}
	for i := 0; used < e.Len; i = (i + 1) % len(out) {
		out[i].Len++
		used++
	}
	off := e.Off
	for i := range out {
		out[i].Off = off
		off += out[i].Len
	}
	return out, nil
}

func divRound(a, b int) int {
	return (2*a + b) / (2 * b)
}
