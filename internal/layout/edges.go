package layout

// Edges holds one value per side of a box, used for padding and margins.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll uses n on every side.
func EdgeAll(n int) Edges {
	return EdgeTRBL(n, n, n, n)
}

// EdgeSymmetric uses v above and below and h on the left and right.
func EdgeSymmetric(v, h int) Edges {
	return EdgeTRBL(v, h, v, h)
}

// EdgeTRBL takes the sides clockwise from the top.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal is the space taken on the x axis.
func (e Edges) Horizontal() int { return e.Left + e.Right }

// Vertical is the space taken on the y axis.
func (e Edges) Vertical() int { return e.Top + e.Bottom }

// IsNegative reports whether any side is below zero. Negative edges are
// rejected by Style.Validate.
func (e Edges) IsNegative() bool {
	return min(e.Top, e.Right, e.Bottom, e.Left) < 0
}
