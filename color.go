package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault is the terminal's own color. It is also the zero value.
	ColorDefault ColorType = iota
	// ColorANSI is an entry of the 256-color palette.
	ColorANSI
	// ColorRGB is a 24-bit true color.
	ColorRGB
)

// Color is a terminal color. The zero value is the terminal default.
type Color struct {
	typ ColorType
	// ANSI keeps the palette index in r.
	r, g, b uint8
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color {
	return Color{}
}

// ANSIColor returns a Color from the 256-color palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a 24-bit Color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// HexColor parses "#RRGGBB" or "#RGB".
func HexColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 || strings.Trim(hex, "0123456789abcdefABCDEF") != "" {
		return Color{}, newError(KindInvalid, "invalid hex color %q", hex)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, newError(KindInvalid, "invalid hex color %q", hex)
	}
	r, g, b := c.RGB255()
	return RGBColor(r, g, b), nil
}

// Type returns the representation of the color.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// ANSI returns the palette index. Only meaningful for ColorANSI.
func (c Color) ANSI() uint8 {
	return c.r
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	return c == other
}

// RGB returns the color components, approximating palette entries. The
// default color reports black.
func (c Color) RGB() (r, g, b uint8) {
	switch c.typ {
	case ColorRGB:
		return c.r, c.g, c.b
	case ColorANSI:
		return paletteRGB(c.r)
	}
	return 0, 0, 0
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if c.typ == ColorDefault {
		return ""
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Luminance returns the relative luminance of the color (0.0-1.0).
func (c Color) Luminance() float64 {
	if c.typ == ColorDefault {
		return 0
	}
	r, g, b := c.RGB()
	lr, lg, lb := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.LinearRgb()
	return 0.2126*lr + 0.7152*lg + 0.0722*lb
}

// IsLight reports whether the color reads as a light background.
func (c Color) IsLight() bool {
	return c.typ != ColorDefault && c.Luminance() > 0.2
}

// ToANSI approximates a true color with the nearest 256-color entry.
func (c Color) ToANSI() Color {
	if c.typ != ColorRGB {
		return c
	}
	if c.r == c.g && c.g == c.b {
		switch {
		case c.r < 8:
			return ANSIColor(16)
		case c.r > 248:
			return ANSIColor(231)
		}
		return ANSIColor(uint8(232 + (int(c.r)-8)*24/240))
	}
	cube := func(v uint8) int { return int(v) * 5 / 255 }
	return ANSIColor(uint8(16 + 36*cube(c.r) + 6*cube(c.g) + cube(c.b)))
}

func (c Color) String() string {
	switch c.typ {
	case ColorANSI:
		for name, named := range colorNames {
			if named == c {
				return name
			}
		}
		return fmt.Sprintf("color(%d)", c.r)
	case ColorRGB:
		return c.Hex()
	}
	return "default"
}

// Standard palette colors.
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)
	Grey    = ANSIColor(8)

	BrightRed     = ANSIColor(9)
	BrightGreen   = ANSIColor(10)
	BrightYellow  = ANSIColor(11)
	BrightBlue    = ANSIColor(12)
	BrightMagenta = ANSIColor(13)
	BrightCyan    = ANSIColor(14)
	BrightWhite   = ANSIColor(15)
)

var colorNames = map[string]Color{
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"grey":           Grey,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
}

// ParseColor accepts a palette name ("blue", "bright-red", "gray"), "default",
// a hex value ("#1e90ff") or a palette index ("color(208)").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "" || s == "default":
		return DefaultColor(), nil
	case s == "gray":
		return Grey, nil
	case strings.HasPrefix(s, "#"):
		return HexColor(s)
	case strings.HasPrefix(s, "color(") && strings.HasSuffix(s, ")"):
		n, err := strconv.ParseUint(s[len("color("):len(s)-1], 10, 8)
		if err != nil {
			return Color{}, wrapError(KindInvalid, err, "invalid palette index %q", s)
		}
		return ANSIColor(uint8(n)), nil
	}
	if c, ok := colorNames[s]; ok {
		return c, nil
	}
	return Color{}, newError(KindInvalid, "unknown color %q", s)
}

// ansi16 holds typical RGB values for the first 16 palette entries.
var ansi16 = [16][3]uint8{
	{0, 0, 0},
	{205, 49, 49},
	{13, 188, 121},
	{229, 229, 16},
	{36, 114, 200},
	{188, 63, 188},
	{17, 168, 205},
	{229, 229, 229},
	{102, 102, 102},
	{241, 76, 76},
	{35, 209, 139},
	{245, 245, 67},
	{59, 142, 234},
	{214, 112, 214},
	{41, 184, 219},
	{255, 255, 255},
}

func paletteRGB(idx uint8) (r, g, b uint8) {
	switch {
	case idx < 16:
		c := ansi16[idx]
		return c[0], c[1], c[2]
	case idx < 232:
		idx -= 16
		level := func(v uint8) uint8 {
			if v == 0 {
				return 0
			}
			return 55 + v*40
		}
		return level(idx / 36), level((idx % 36) / 6), level(idx % 6)
	}
	gray := 8 + (idx-232)*10
	return gray, gray, gray
}
