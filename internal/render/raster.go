package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// circleSegments is the number of cubic arcs used per circle.
const circleSegments = 4

// kappa places cubic control points so four arcs approximate a circle.
const kappa = 0.5522847498

// TextFace is shared with the ebiten surface so both backends lay out chrome identically.
var TextFace = basicfont.Face7x13

// Raster is a CPU Surface backed by an *image.RGBA, used for headless runs,
// frame recording and tests.
type Raster struct {
	img *image.RGBA
}

func NewRaster(w, h int) *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image exposes the backing store. It is overwritten by later draws.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Fill(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillCircle rasterizes an anti-aliased disc into a mask covering its bounding
// box, then composites the color through it.
func (r *Raster) FillCircle(cx, cy, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	box := image.Rect(
		int(math.Floor(cx-radius)), int(math.Floor(cy-radius)),
		int(math.Ceil(cx+radius))+1, int(math.Ceil(cy+radius))+1,
	)
	if !box.Overlaps(r.img.Bounds()) {
		return
	}
	// local circle centre inside the box
	lx := float32(cx - float64(box.Min.X))
	ly := float32(cy - float64(box.Min.Y))
	rad := float32(radius)

	z := vector.NewRasterizer(box.Dx(), box.Dy())
	z.MoveTo(lx+rad, ly)
	for i := 0; i < circleSegments; i++ {
		a0 := float64(i) * math.Pi / 2
		a1 := float64(i+1) * math.Pi / 2
		x0, y0 := math.Cos(a0), math.Sin(a0)
		x1, y1 := math.Cos(a1), math.Sin(a1)
		z.CubeTo(
			lx+rad*float32(x0-kappa*y0), ly+rad*float32(y0+kappa*x0),
			lx+rad*float32(x1+kappa*y1), ly+rad*float32(y1-kappa*x1),
			lx+rad*float32(x1), ly+rad*float32(y1),
		)
	}
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(r.img, box, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

func (r *Raster) DrawRect(rect image.Rectangle, c color.Color, filled bool) {
	src := image.NewUniform(c)
	if filled {
		draw.Draw(r.img, rect, src, image.Point{}, draw.Over)
		return
	}
	edges := []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+1),
		image.Rect(rect.Min.X, rect.Max.Y-1, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y+1, rect.Min.X+1, rect.Max.Y-1),
		image.Rect(rect.Max.X-1, rect.Min.Y+1, rect.Max.X, rect.Max.Y-1),
	}
	for _, e := range edges {
		draw.Draw(r.img, e, src, image.Point{}, draw.Over)
	}
}

func (r *Raster) DrawText(s string, x, y int, c color.Color) {
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: TextFace,
		Dot:  fixed.P(x, y+TextFace.Ascent),
	}
	d.DrawString(s)
}

// TextWidth returns the advance of s in pixels.
func TextWidth(s string) int {
	return font.MeasureString(TextFace, s).Round()
}
