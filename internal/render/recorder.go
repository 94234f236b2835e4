package render

import (
	"image"
	"image/color"
)

// Op names a recorded Surface call.
type Op int

const (
	OpFill Op = iota
	OpCircle
	OpRect
	OpText
)

// Call is one recorded drawing primitive.
type Call struct {
	Op     Op
	X, Y   float64
	Radius float64
	Rect   image.Rectangle
	Filled bool
	Text   string
	Color  color.NRGBA
}

// Recorder is a Surface that remembers what was drawn instead of drawing it.
type Recorder struct {
	W, H  int
	Calls []Call
}

func NewRecorder(w, h int) *Recorder { return &Recorder{W: w, H: h} }

func nrgba(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Fill(c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFill, Color: nrgba(c)})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, X: cx, Y: cy, Radius: radius, Color: nrgba(c)})
}

func (r *Recorder) DrawRect(rect image.Rectangle, c color.Color, filled bool) {
	r.Calls = append(r.Calls, Call{Op: OpRect, Rect: rect, Filled: filled, Color: nrgba(c)})
}

func (r *Recorder) DrawText(s string, x, y int, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpText, X: float64(x), Y: float64(y), Text: s, Color: nrgba(c)})
}

// Count returns how many calls of kind op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }
