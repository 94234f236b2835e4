// Package effect holds the visual effects driven by note events and the
// pipeline that composites them.
package effect

import (
	"github.com/ingyamilmolinar/rsharp/core/event"
	"github.com/ingyamilmolinar/rsharp/internal/render"
)

// FixedStep is the simulation step the effects are tuned for.
const FixedStep = 1.0 / 60

// Effect reacts to note events and paints its own sub-entities.
//
// Trigger only mutates state. Render only reads it. Reset returns the effect
// to its freshly constructed state.
type Effect interface {
	Trigger(ev event.NoteEvent)
	Update(dt float64)
	Render(dst render.Surface)
	Reset()
}

// Counter is implemented by effects that can report their live sub-entities.
type Counter interface {
	Live() int
}
