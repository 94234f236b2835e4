package effect

import (
	"image/color"

	"github.com/ingyamilmolinar/rsharp/core/event"
	"github.com/ingyamilmolinar/rsharp/internal/render"
)

// DefaultBackground is the dark grey frames are cleared to.
var DefaultBackground = color.RGBA{20, 20, 20, 255}

// Pipeline owns an ordered list of effects. Registration order is trigger,
// update and paint order, so later effects draw on top.
type Pipeline struct {
	background color.RGBA
	effects    []Effect
}

func NewPipeline(background color.RGBA) *Pipeline {
	return &Pipeline{background: background}
}

func (p *Pipeline) Register(effects ...Effect) {
	p.effects = append(p.effects, effects...)
}

func (p *Pipeline) Effects() []Effect { return p.effects }

func (p *Pipeline) Dispatch(ev event.NoteEvent) {
	for _, e := range p.effects {
		e.Trigger(ev)
	}
}

func (p *Pipeline) Advance(dt float64) {
	for _, e := range p.effects {
		e.Update(dt)
	}
}

// Paint clears dst to the background and renders every effect over it.
func (p *Pipeline) Paint(dst render.Surface) {
	dst.Fill(p.background)
	for _, e := range p.effects {
		e.Render(dst)
	}
}

func (p *Pipeline) Reset() {
	for _, e := range p.effects {
		e.Reset()
	}
}

// Live sums the live sub-entities of every effect that reports them.
func (p *Pipeline) Live() int {
	n := 0
	for _, e := range p.effects {
		if c, ok := e.(Counter); ok {
			n += c.Live()
		}
	}
	return n
}
