package layout

import "fmt"

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto     Unit = iota // Sized from children, or from Measure for leaves
	UnitFixed                // Absolute terminal cells
	UnitPercent              // Percentage of the parent's content box
	UnitFlex                 // Weighted share of the space left on the main axis
	UnitMeasured             // Always asks the node's MeasureFunc
)

func (u Unit) String() string {
	switch u {
	case UnitAuto:
		return "auto"
	case UnitFixed:
		return "fixed"
	case UnitPercent:
		return "percent"
	case UnitFlex:
		return "flex"
	case UnitMeasured:
		return "measured"
	}
	return fmt.Sprintf("Unit(%d)", u)
}

// Value is the sizing rule for one axis of a node.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value computed from content.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of terminal cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Flex returns a Value that takes weight shares of the free main-axis space.
// On the cross axis a flex value stretches to fill.
func Flex(weight float64) Value {
	return Value{Amount: weight, Unit: UnitFlex}
}

// Measured returns a Value resolved by the node's MeasureFunc.
func Measured() Value {
	return Value{Unit: UnitMeasured}
}

// Resolve computes the cell count given the available space. For units
// that do not resolve on their own the fallback is returned.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		if available < 0 {
			return fallback
		}
		return int(float64(available) * v.Amount / 100.0)
	}
	return fallback
}

// IsAuto returns true if this value should be computed from content.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsFlex returns true for flex-weighted values.
func (v Value) IsFlex() bool {
	return v.Unit == UnitFlex
}

func (v Value) validate(axis string) error {
	switch v.Unit {
	case UnitFixed:
		if v.Amount < 0 {
			return fmt.Errorf("%s: negative fixed size %v", axis, v.Amount)
		}
	case UnitPercent:
		if v.Amount < 0 {
			return fmt.Errorf("%s: negative percentage %v", axis, v.Amount)
		}
	case UnitFlex:
		if v.Amount <= 0 {
			return fmt.Errorf("%s: flex weight must be positive, got %v", axis, v.Amount)
		}
	case UnitAuto, UnitMeasured:
	default:
		return fmt.Errorf("%s: unknown unit %d", axis, v.Unit)
	}
	return nil
}

func (v Value) String() string {
	switch v.Unit {
	case UnitFixed:
		return fmt.Sprintf("%d", int(v.Amount))
	case UnitPercent:
		return fmt.Sprintf("%g%%", v.Amount)
	case UnitFlex:
		return fmt.Sprintf("%gfr", v.Amount)
	}
	return v.Unit.String()
}
