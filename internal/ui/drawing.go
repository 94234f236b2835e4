package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ingyamilmolinar/rsharp/internal/render"
)

// drawRect draws a rectangle. Tests replace it to capture draw calls.
var drawRect = func(dst *ebiten.Image, r image.Rectangle, c color.Color, filled bool) {
	if filled {
		vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
	} else {
		vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, c, false)
	}
}

// textFace matches the raster surface so headless frames lay out the same.
var textFace = text.NewGoXFace(render.TextFace)

// screenSurface adapts an ebiten image to render.Surface.
type screenSurface struct {
	img *ebiten.Image
}

func newScreenSurface(img *ebiten.Image) *screenSurface { return &screenSurface{img: img} }

func (s *screenSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *screenSurface) Fill(c color.Color) { s.img.Fill(c) }

func (s *screenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s *screenSurface) DrawRect(r image.Rectangle, c color.Color, filled bool) {
	drawRect(s.img, r, c, filled)
}

func (s *screenSurface) DrawText(str string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.img, str, textFace, op)
}
