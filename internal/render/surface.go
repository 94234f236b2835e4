// Package render defines the 2D drawing surface effects paint into.
package render

import (
	"image"
	"image/color"
)

// Surface is the minimal set of primitives the engine needs from a graphics
// backend. Colors with alpha < 255 are blended source-over. Text coordinates
// name the top-left corner of the first glyph.
type Surface interface {
	Size() (w, h int)
	Fill(c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	DrawRect(r image.Rectangle, c color.Color, filled bool)
	DrawText(s string, x, y int, c color.Color)
}
