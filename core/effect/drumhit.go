package effect

import (
	"image/color"

	"github.com/ingyamilmolinar/rsharp/core/event"
	"github.com/ingyamilmolinar/rsharp/core/palette"
	"github.com/ingyamilmolinar/rsharp/internal/render"
	"github.com/ingyamilmolinar/rsharp/internal/utils"
)

const (
	flashStartRadius = 10
	flashMinTarget   = 30
	flashVelGrowth   = 100
	flashDecay       = 0.05
	flashEase        = 0.2
	flashCore        = 0.3
	flashSaturation  = 0.7
	flashValue       = 1.0
)

// Flash is one expanding, fading circle.
type Flash struct {
	X, Y         float64
	Radius       float64
	TargetRadius float64
	Life         float64
	DecayRate    float64
	Color        color.RGBA
}

// DrumHit flashes a glowing circle at the drum's kit position on every hit.
type DrumHit struct {
	width, height int
	flashes       []Flash
}

func NewDrumHit(width, height int) *DrumHit {
	return &DrumHit{width: width, height: height}
}

func (d *DrumHit) Trigger(ev event.NoteEvent) {
	if !ev.Strikes() {
		return
	}
	x, y := Position(ev.Note, d.width, d.height)
	d.flashes = append(d.flashes, Flash{
		X:            float64(x),
		Y:            float64(y),
		Radius:       flashStartRadius,
		TargetRadius: flashMinTarget + float64(ev.Velocity)/127*flashVelGrowth,
		Life:         1,
		DecayRate:    flashDecay,
		Color:        palette.NoteColor(ev.Note, flashSaturation, flashValue),
	})
}

// Update decays every flash by DecayRate and eases its radius towards the
// target. Both move once per call, whatever dt is.
func (d *DrumHit) Update(dt float64) {
	live := d.flashes[:0]
	for _, f := range d.flashes {
		f.Life -= f.DecayRate
		f.Radius = utils.Approach(f.Radius, f.TargetRadius, flashEase)
		if f.Life > 0 {
			live = append(live, f)
		}
	}
	d.flashes = live
}

func (d *DrumHit) Render(dst render.Surface) {
	for _, f := range d.flashes {
		glow := color.NRGBA{R: f.Color.R, G: f.Color.G, B: f.Color.B, A: utils.ClampByte(f.Life * 255)}
		dst.FillCircle(f.X, f.Y, f.Radius, glow)
		dst.FillCircle(f.X, f.Y, f.Radius*flashCore*f.Life, color.White)
	}
}

func (d *DrumHit) Reset() { d.flashes = d.flashes[:0] }

func (d *DrumHit) Live() int { return len(d.flashes) }

// Flashes returns a copy of the live flashes.
func (d *DrumHit) Flashes() []Flash {
	return append([]Flash(nil), d.flashes...)
}
