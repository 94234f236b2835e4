// Package palette maps notes to colors.
package palette

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ingyamilmolinar/rsharp/internal/utils"
)

// HSV converts hue, saturation and value, all in 0..1, to an opaque RGBA.
// Channels are truncated rather than rounded.
func HSV(h, s, v float64) color.RGBA {
	h -= math.Floor(h)
	c := colorful.Hsv(h*360, utils.Clamp(s, 0, 1), utils.Clamp(v, 0, 1))
	return color.RGBA{
		R: utils.ClampByte(c.R * 255),
		G: utils.ClampByte(c.G * 255),
		B: utils.ClampByte(c.B * 255),
		A: 255,
	}
}

// NoteHue places the twelve pitch classes evenly around the color wheel.
func NoteHue(note uint8) float64 {
	return float64(note%12) / 12
}

// NoteColor is HSV(NoteHue(note), s, v).
func NoteColor(note uint8, s, v float64) color.RGBA {
	return HSV(NoteHue(note), s, v)
}
