// Package engine runs the playback loop: it advances the clock, releases due
// note events into the effect pipeline and paints frames.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ingyamilmolinar/rsharp/core/clock"
	"github.com/ingyamilmolinar/rsharp/core/effect"
	"github.com/ingyamilmolinar/rsharp/core/event"
	game_log "github.com/ingyamilmolinar/rsharp/internal/log"
	"github.com/ingyamilmolinar/rsharp/internal/render"
)

type State int

const (
	Running State = iota
	Paused
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

type Input int

const (
	InputTogglePause Input = iota + 1
	InputPause
	InputResume
	InputReset
	InputQuit
)

func (i Input) String() string {
	switch i {
	case InputTogglePause:
		return "toggle-pause"
	case InputPause:
		return "pause"
	case InputResume:
		return "resume"
	case InputReset:
		return "reset"
	case InputQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Playback is the audio handle the engine keeps in step with the visuals.
// Implementations that also satisfy io.Closer are closed on termination.
type Playback interface {
	Play() error
	Pause()
	Resume()
	Restart() error
	IsPlaying() bool
}

const DefaultFPS = 60

type Options struct {
	Timeline *event.Timeline
	Pipeline *effect.Pipeline
	// Audio may be nil for a visual-only run.
	Audio  Playback
	Logger *game_log.Logger
	// Now defaults to time.Now.
	Now func() time.Time
	FPS int
}

// Stats is a snapshot of the engine for status lines and tests.
type Stats struct {
	Elapsed    float64
	PausedFor  float64
	State      State
	Dispatched int
	Remaining  int
	Live       int
	Frames     int
	Audio      bool
}

// Engine is single threaded: Handle, Step and Paint must be called from the
// same goroutine, which is the one running Run or the ebiten game loop.
type Engine struct {
	timeline *event.Timeline
	pipeline *effect.Pipeline
	clock    *clock.Clock
	audio    Playback
	logger   *game_log.Logger
	now      func() time.Time
	interval time.Duration

	state      State
	started    bool
	closed     bool
	last       time.Time
	dispatched int
	frames     int
}

func New(opts Options) *Engine {
	if opts.Timeline == nil {
		opts.Timeline = event.NewTimeline(nil)
	}
	if opts.Pipeline == nil {
		opts.Pipeline = effect.NewPipeline(effect.DefaultBackground)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	return &Engine{
		timeline: opts.Timeline,
		pipeline: opts.Pipeline,
		clock:    clock.New(),
		audio:    opts.Audio,
		logger:   opts.Logger,
		now:      opts.Now,
		interval: time.Second / time.Duration(opts.FPS),
		state:    Running,
	}
}

// Start begins audio playback and takes the first wall-clock reading. Step
// calls it on first use. An audio failure drops the engine to visual-only.
func (e *Engine) Start() {
	if e.started || e.state == Terminated {
		return
	}
	e.started = true
	e.last = e.now()
	e.logger.Infof("[ENGINE] start: %d events over %.2fs", e.timeline.Len(), e.timeline.Duration())
	if e.audio == nil {
		return
	}
	if err := e.audio.Play(); err != nil {
		e.logger.Warnf("[ENGINE] audio unavailable, continuing without it: %v", err)
		e.dropAudio()
	}
}

// audioLive reports whether there is a playing or paused audio handle.
func (e *Engine) audioLive() bool { return e.audio != nil && e.started }

func (e *Engine) dropAudio() {
	if c, ok := e.audio.(io.Closer); ok {
		if err := c.Close(); err != nil {
			e.logger.Debugf("[ENGINE] closing audio: %v", err)
		}
	}
	e.audio = nil
}

// Handle applies one input. Inputs that do not apply to the current state
// are ignored, and Terminated ignores everything.
func (e *Engine) Handle(in Input) {
	if e.state == Terminated {
		return
	}
	if in == InputTogglePause {
		if e.state == Running {
			in = InputPause
		} else {
			in = InputResume
		}
	}
	e.logger.Debugf("[ENGINE] input %s in state %s", in, e.state)

	switch in {
	case InputPause:
		if e.state != Running {
			return
		}
		e.state = Paused
		e.clock.Pause()
		if e.audioLive() {
			e.audio.Pause()
		}
		e.logger.Infof("[ENGINE] paused at %.3fs", e.clock.Now())
	case InputResume:
		if e.state != Paused {
			return
		}
		e.state = Running
		e.clock.Resume()
		e.last = e.now()
		if e.audioLive() {
			e.audio.Resume()
		}
		e.logger.Infof("[ENGINE] resumed at %.3fs", e.clock.Now())
	case InputReset:
		e.reset()
	case InputQuit:
		e.state = Terminated
		e.logger.Infof("[ENGINE] quit after %d frames", e.frames)
		e.Close()
	}
}

func (e *Engine) reset() {
	e.timeline.Rewind()
	e.clock.Reset()
	e.pipeline.Reset()
	e.dispatched = 0
	e.state = Running
	e.last = e.now()
	if e.audioLive() {
		if err := e.audio.Restart(); err != nil {
			e.logger.Warnf("[ENGINE] audio restart failed, continuing without it: %v", err)
			e.dropAudio()
		}
	}
	e.logger.Infof("[ENGINE] reset")
}

// Step runs one loop iteration. While running it feeds the wall-clock delta
// since the previous iteration into the clock, dispatches due events and
// advances the effects. While paused only the pause accumulator moves.
func (e *Engine) Step() error {
	if e.state == Terminated {
		return ErrTerminated
	}
	if !e.started {
		e.Start()
	}
	now := e.now()
	dt := now.Sub(e.last).Seconds()
	e.last = now
	if dt < 0 {
		dt = 0
	}
	e.frames++
	e.clock.Tick(dt)
	if e.state == Paused {
		return nil
	}

	for _, ev := range e.timeline.Due(e.clock.Now()) {
		e.pipeline.Dispatch(ev)
		e.dispatched++
	}
	e.pipeline.Advance(dt)
	return nil
}

// Paint renders the current effect state. It never advances the simulation.
func (e *Engine) Paint(dst render.Surface) {
	e.pipeline.Paint(dst)
}

// Run drives the engine from a ticker at the configured frame rate until
// ctx is cancelled, Quit is handled or present fails.
func (e *Engine) Run(ctx context.Context, dst render.Surface, present func(render.Surface) error) error {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	e.Start()
	for {
		select {
		case <-ticker.C:
			if ctx.Err() != nil {
				e.Handle(InputQuit)
				return nil
			}
			if err := e.Step(); err != nil {
				if errors.Is(err, ErrTerminated) {
					return nil
				}
				return err
			}
			e.Paint(dst)
			if present == nil {
				continue
			}
			if err := present(dst); err != nil {
				e.Handle(InputQuit)
				return fmt.Errorf("%w: %v", ErrRenderSurface, err)
			}
		case <-ctx.Done():
			e.Handle(InputQuit)
			return nil
		}
	}
}

func (e *Engine) State() State { return e.state }

// Now is the playback time in seconds.
func (e *Engine) Now() float64 { return e.clock.Now() }

// Finished reports that every event has been released and every effect has
// died down.
func (e *Engine) Finished() bool {
	return e.timeline.Done() && e.pipeline.Live() == 0
}

func (e *Engine) Stats() Stats {
	return Stats{
		Elapsed:    e.clock.Now(),
		PausedFor:  e.clock.PausedFor(),
		State:      e.state,
		Dispatched: e.dispatched,
		Remaining:  e.timeline.Remaining(),
		Live:       e.pipeline.Live(),
		Frames:     e.frames,
		Audio:      e.audio != nil,
	}
}

// Close terminates the engine and releases the audio handle. It is safe to
// call more than once.
func (e *Engine) Close() {
	e.state = Terminated
	if e.closed {
		return
	}
	e.closed = true
	if e.audio != nil {
		e.dropAudio()
	}
}
