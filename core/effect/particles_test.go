package effect

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ingyamilmolinar/rsharp/core/event"
	"github.com/ingyamilmolinar/rsharp/internal/render"
)

func seeded() *rand.Rand { return rand.New(rand.NewSource(7)) }

func TestBurst(t *testing.T) {
	tests := []struct {
		vel  uint8
		want int
	}{
		{0, 10},
		{1, 10},
		{64, 35},
		{127, 60},
	}
	for _, tt := range tests {
		if got := Burst(tt.vel); got != tt.want {
			t.Errorf("Burst(%d) = %d, want %d", tt.vel, got, tt.want)
		}
	}
}

func TestParticleEmitterIgnoresSilentEvents(t *testing.T) {
	p := NewParticleEmitter(800, 600, 200, seeded())
	p.Trigger(noteOn(36, 0))
	p.Trigger(event.NoteEvent{Kind: event.NoteOff, Note: 36, Velocity: 90})
	if p.Live() != 0 {
		t.Fatalf("expected no particles, got %d", p.Live())
	}
}

func TestParticleEmitterRespectsCap(t *testing.T) {
	p := NewParticleEmitter(800, 600, 200, seeded())
	// velocity 102 asks for int(102/127*50)+10 = 50 particles
	if Burst(102) != 50 {
		t.Fatalf("Burst(102) = %d", Burst(102))
	}
	for i := 0; i < 10; i++ {
		p.Trigger(noteOn(36, 102))
	}
	if p.Live() != 200 {
		t.Fatalf("live = %d, want 200", p.Live())
	}
}

func TestParticleEmitterDefaultCap(t *testing.T) {
	p := NewParticleEmitter(800, 600, 0, seeded())
	if p.Cap() != DefaultMaxParticles {
		t.Fatalf("cap = %d", p.Cap())
	}
	if NewParticleEmitter(10, 10, 0, nil).rng == nil {
		t.Fatal("nil rng not replaced")
	}
}

func TestParticleRanges(t *testing.T) {
	p := NewParticleEmitter(800, 600, 200, seeded())
	p.Trigger(noteOn(38, 127))
	ps := p.Particles()
	if len(ps) != 60 {
		t.Fatalf("got %d particles, want 60", len(ps))
	}
	for _, pt := range ps {
		if pt.X != 320 || pt.Y != 360 {
			t.Fatalf("particle spawned at (%v,%v)", pt.X, pt.Y)
		}
		speed := math.Hypot(pt.VX, pt.VY)
		if speed < 1-1e-9 || speed >= 4 {
			t.Fatalf("speed %v out of [1,4)", speed)
		}
		if pt.Lifetime < 1 || pt.Lifetime >= 3 {
			t.Fatalf("lifetime %v out of [1,3)", pt.Lifetime)
		}
		if pt.Size < 2 || pt.Size >= 5 {
			t.Fatalf("size %v out of [2,5)", pt.Size)
		}
		if pt.Age != 0 {
			t.Fatalf("new particle aged %v", pt.Age)
		}
	}
}

func TestParticleUpdateIntegratesPerStep(t *testing.T) {
	p := NewParticleEmitter(800, 600, 200, seeded())
	p.Trigger(noteOn(36, 1))
	before := p.Particles()[0]
	// dt is deliberately large: motion is per call, not per second
	p.Update(0.5)
	after := p.Particles()[0]
	if after.X != before.X+before.VX || after.Y != before.Y+before.VY {
		t.Fatalf("moved from (%v,%v) to (%v,%v)", before.X, before.Y, after.X, after.Y)
	}
	if after.Age != FixedStep {
		t.Fatalf("age = %v, want %v", after.Age, FixedStep)
	}
}

func TestParticlesExpire(t *testing.T) {
	p := NewParticleEmitter(800, 600, 200, seeded())
	p.Trigger(noteOn(36, 127))
	// lifetimes are below 3s, i.e. 180 steps
	for i := 0; i < 181; i++ {
		p.Update(FixedStep)
		for _, pt := range p.Particles() {
			if pt.Age >= pt.Lifetime {
				t.Fatalf("expired particle kept: %+v", pt)
			}
		}
	}
	if p.Live() != 0 {
		t.Fatalf("%d particles outlived their lifetime", p.Live())
	}
}

func TestParticleRenderFades(t *testing.T) {
	p := NewParticleEmitter(800, 600, 200, seeded())
	p.Trigger(noteOn(36, 1))
	for i := 0; i < 30; i++ {
		p.Update(FixedStep)
	}
	pts := p.Particles()
	rec := render.NewRecorder(800, 600)
	p.Render(rec)
	if rec.Count(render.OpCircle) != len(pts) {
		t.Fatalf("rendered %d circles for %d particles", rec.Count(render.OpCircle), len(pts))
	}
	for i, c := range rec.Calls {
		want := uint8((1 - pts[i].Age/pts[i].Lifetime) * 255)
		if c.Color.A != want || c.Radius != pts[i].Size {
			t.Fatalf("particle %d drawn as %+v", i, c)
		}
	}
	if len(p.Particles()) != len(pts) || p.Particles()[0] != pts[0] {
		t.Fatal("render mutated particles")
	}
}

func TestParticleReset(t *testing.T) {
	p := NewParticleEmitter(800, 600, 200, seeded())
	p.Trigger(noteOn(36, 127))
	p.Reset()
	if p.Live() != 0 {
		t.Fatalf("reset left %d particles", p.Live())
	}
	p.Trigger(noteOn(36, 127))
	if p.Live() != 60 {
		t.Fatalf("pool unusable after reset: %d", p.Live())
	}
}
