package styles

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Fallback is used when a colour string cannot be parsed.
const Fallback = "#6b7280"

// Parse reads a #rrggbb or #rgb colour.
func Parse(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(expandShortHex(hex))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse colour %q: %w", hex, err)
	}
	return c, nil
}

// MustParse parses hex and falls back to Fallback on error.
func MustParse(hex string) colorful.Color {
	c, err := Parse(hex)
	if err != nil {
		c, _ = colorful.Hex(Fallback)
	}
	return c
}

// ValidColor reports whether hex parses.
func ValidColor(hex string) bool {
	_, err := Parse(hex)
	return err == nil
}

// Lighten adds round(2.55*percent) to each 8-bit channel, saturating at the
// ends of the range. Negative percentages darken.
func Lighten(hex string, percent float64) string {
	r, g, b := MustParse(hex).RGB255()
	amt := int(math.Round(2.55 * percent))
	return fmt.Sprintf("#%02x%02x%02x", shift(r, amt), shift(g, amt), shift(b, amt))
}

func shift(v uint8, amt int) int {
	return max(0, min(255, int(v)+amt))
}

// Blend interpolates between two colours in RGB space, t in [0, 1].
func Blend(from, to string, t float64) string {
	return MustParse(from).BlendRgb(MustParse(to), t).Clamped().Hex()
}

// RGBA converts hex to an image/color value with the given opacity.
func RGBA(hex string, opacity float64) color.NRGBA {
	r, g, b := MustParse(hex).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(max(0, min(1, opacity)) * 255))}
}

func expandShortHex(hex string) string {
	if len(hex) == 4 && hex[0] == '#' {
		return string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	return hex
}
