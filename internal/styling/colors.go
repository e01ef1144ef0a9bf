package styling

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func toTcellColor(color colorful.Color) tcell.Color {
	r, g, b := color.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// lighten moves the lightness of the color towards white by the given
// percentage of the remaining distance.
func lighten(color colorful.Color, percentage int) colorful.Color {
	h, s, l := color.Hsl()
	return colorful.Hsl(h, s, l+(1.0-l)*(float64(percentage)/100.0))
}

// darken moves the lightness of the color towards black by the given
// percentage of the remaining distance.
func darken(color colorful.Color, percentage int) colorful.Color {
	h, s, l := color.Hsl()
	return colorful.Hsl(h, s, l-l*(float64(percentage)/100.0))
}

// colorFromHex parses the given hex color, falling back to the given color if
// it is malformed.
func colorFromHex(hex string, fallback colorful.Color) colorful.Color {
	color, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return color
}
