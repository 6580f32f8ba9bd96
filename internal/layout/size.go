package layout

// Size represents a width/height pair, in cells.
type Size struct {
	Width, Height int
}

// IsZero reports whether either dimension is zero or negative.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(other Size) Size {
	return Size{Width: max(s.Width, other.Width), Height: max(s.Height, other.Height)}
}

// Min returns the component-wise minimum of two sizes.
func (s Size) Min(other Size) Size {
	return Size{Width: min(s.Width, other.Width), Height: min(s.Height, other.Height)}
}

// NonNegative returns the size with negative components raised to zero.
func (s Size) NonNegative() Size {
	return Size{Width: max(0, s.Width), Height: max(0, s.Height)}
}

// Rect returns a rectangle of this size anchored at the origin.
func (s Size) Rect() Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// Area returns Width * Height, or zero for degenerate sizes.
func (s Size) Area() int {
	if s.IsZero() {
		return 0
	}
	return s.Width * s.Height
}
