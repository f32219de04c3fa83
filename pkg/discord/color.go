package discord

import (
	"fmt"

	"cordcore/pkg/codec"
)

// Color is a 24-bit RGB color. Zero doubles as "no color"; Discord renders
// zero-colored roles and profiles with the theme default.
type Color int

// ColorFromRGB packs the three components into a color.
func ColorFromRGB(r, g, b uint8) Color {
	return Color(int(r)<<16 | int(g)<<8 | int(b))
}

// RGB unpacks the color into its components.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// String renders the color as a hex triplet.
func (c Color) String() string {
	return fmt.Sprintf("#%06x", int(c)&0xffffff)
}

// colorValidator accepts a Color or any integer form within 24 bits.
func colorValidator(name string) codec.ValidateFunc[Color] {
	return func(value any) (Color, error) {
		var color Color
		switch v := value.(type) {
		case nil:
			return 0, nil
		case Color:
			color = v
		default:
			n, ok := codec.WireInt(value)
			if !ok {
				return 0, &codec.TypeError{Name: name, Expected: "a color or integer", Value: value}
			}
			color = Color(n)
		}
		if color < 0 || color > 0xffffff {
			return 0, &codec.ValueError{Name: name, Requirement: "a 24-bit color value", Value: value}
		}
		return color, nil
	}
}
