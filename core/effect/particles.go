package effect

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/ingyamilmolinar/rsharp/core/event"
	"github.com/ingyamilmolinar/rsharp/core/palette"
	"github.com/ingyamilmolinar/rsharp/internal/render"
	"github.com/ingyamilmolinar/rsharp/internal/utils"
)

// DefaultMaxParticles bounds an emitter's pool when no cap is given.
const DefaultMaxParticles = 200

const (
	particleBase      = 10
	particleVelSpread = 50
	particleMinSpeed  = 1
	particleMaxSpeed  = 4
	particleMinLife   = 1
	particleMaxLife   = 3
	particleMinSize   = 2
	particleMaxSize   = 5
	particleSatVal    = 0.8
)

type Particle struct {
	X, Y     float64
	VX, VY   float64
	Age      float64
	Lifetime float64
	Size     float64
	Color    color.RGBA
}

// ParticleEmitter bursts particles out of the drum's kit position.
type ParticleEmitter struct {
	width, height int
	max           int
	rng           *rand.Rand
	particles     []Particle
}

// NewParticleEmitter returns an emitter holding at most limit particles. A nil
// rng seeds one from the current time.
func NewParticleEmitter(width, height, limit int, rng *rand.Rand) *ParticleEmitter {
	if limit <= 0 {
		limit = DefaultMaxParticles
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ParticleEmitter{
		width:     width,
		height:    height,
		max:       limit,
		rng:       rng,
		particles: make([]Particle, 0, limit),
	}
}

// Burst is the number of particles a hit of velocity vel asks for.
func Burst(vel uint8) int {
	return int(float64(vel)/127*particleVelSpread) + particleBase
}

func (p *ParticleEmitter) uniform(lo, hi float64) float64 {
	return lo + p.rng.Float64()*(hi-lo)
}

// Trigger emits a burst. Particles beyond the pool cap are dropped.
func (p *ParticleEmitter) Trigger(ev event.NoteEvent) {
	if !ev.Strikes() {
		return
	}
	x, y := Position(ev.Note, p.width, p.height)
	c := palette.NoteColor(ev.Note, particleSatVal, particleSatVal)
	n := min(Burst(ev.Velocity), p.max-len(p.particles))
	for i := 0; i < n; i++ {
		angle := p.uniform(0, 2*math.Pi)
		speed := p.uniform(particleMinSpeed, particleMaxSpeed)
		p.particles = append(p.particles, Particle{
			X:        float64(x),
			Y:        float64(y),
			VX:       math.Cos(angle) * speed,
			VY:       math.Sin(angle) * speed,
			Lifetime: p.uniform(particleMinLife, particleMaxLife),
			Size:     p.uniform(particleMinSize, particleMaxSize),
			Color:    c,
		})
	}
}

// Update moves each particle by its velocity once per call and ages it by
// FixedStep, independent of dt.
func (p *ParticleEmitter) Update(dt float64) {
	live := p.particles[:0]
	for _, pt := range p.particles {
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.Age += FixedStep
		if pt.Age < pt.Lifetime {
			live = append(live, pt)
		}
	}
	p.particles = live
}

func (p *ParticleEmitter) Render(dst render.Surface) {
	for _, pt := range p.particles {
		alpha := utils.ClampByte((1 - pt.Age/pt.Lifetime) * 255)
		dst.FillCircle(pt.X, pt.Y, pt.Size, color.NRGBA{R: pt.Color.R, G: pt.Color.G, B: pt.Color.B, A: alpha})
	}
}

func (p *ParticleEmitter) Reset() { p.particles = p.particles[:0] }

func (p *ParticleEmitter) Live() int { return len(p.particles) }

func (p *ParticleEmitter) Cap() int { return p.max }

// Particles returns a copy of the live particles.
func (p *ParticleEmitter) Particles() []Particle {
	return append([]Particle(nil), p.particles...)
}
