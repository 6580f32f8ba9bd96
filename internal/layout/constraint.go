package layout

import "fmt"

// Mode describes how tightly a Constraint binds one axis.
type Mode uint8

const (
	Unbounded Mode = iota // Any size is acceptable
	AtMost                // Size must not exceed Value
	Exact                 // Size must equal Value
)

// Constraint bounds a single axis of a measurement.
type Constraint struct {
	Mode  Mode
	Value int
}

// Constraints bounds both axes of a measurement.
type Constraints struct {
	Width, Height Constraint
}

// ExactSize returns constraints requiring exactly s.
func ExactSize(s Size) Constraints {
	return Constraints{
		Width:  Constraint{Mode: Exact, Value: s.Width},
		Height: Constraint{Mode: Exact, Value: s.Height},
	}
}

// Loose returns constraints allowing anything up to s.
func Loose(s Size) Constraints {
	return Constraints{
		Width:  Constraint{Mode: AtMost, Value: s.Width},
		Height: Constraint{Mode: AtMost, Value: s.Height},
	}
}

// Apply coerces a proposed size to satisfy the constraint.
func (c Constraint) Apply(v int) int {
	switch c.Mode {
	case Exact:
		return c.Value
	case AtMost:
		return clamp(v, 0, c.Value)
	}
	return max(0, v)
}

// Max returns the largest size the constraint allows, or fallback when
// unbounded.
func (c Constraint) Max(fallback int) int {
	if c.Mode == Unbounded {
		return fallback
	}
	return c.Value
}

// Apply coerces s to satisfy both axes.
func (c Constraints) Apply(s Size) Size {
	return Size{Width: c.Width.Apply(s.Width), Height: c.Height.Apply(s.Height)}
}

// Shrink removes e from both bounded axes.
func (c Constraints) Shrink(e Edges) Constraints {
	shrink := func(c Constraint, by int) Constraint {
		if c.Mode != Unbounded {
			c.Value = max(0, c.Value-by)
		}
		return c
	}
	return Constraints{Width: shrink(c.Width, e.Horizontal()), Height: shrink(c.Height, e.Vertical())}
}

func (c Constraint) String() string {
	switch c.Mode {
	case Exact:
		return fmt.Sprintf("=%d", c.Value)
	case AtMost:
		return fmt.Sprintf("<=%d", c.Value)
	}
	return "*"
}

func (c Constraints) String() string {
	return fmt.Sprintf("(%s, %s)", c.Width, c.Height)
}

// MeasureFunc reports the natural size of a node's content under the given
// constraints. The result excludes padding and margin.
type MeasureFunc func(Constraints) Size

// CanvasFunc reports the full scrollable size of a node's content given the
// size of its content box.
type CanvasFunc func(content Size) Size
