package app

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/ingyamilmolinar/rsharp/core/effect"
	"github.com/ingyamilmolinar/rsharp/core/engine"
	"github.com/ingyamilmolinar/rsharp/core/event"
	"github.com/ingyamilmolinar/rsharp/internal/audio"
	"github.com/ingyamilmolinar/rsharp/internal/config"
	game_log "github.com/ingyamilmolinar/rsharp/internal/log"
	"github.com/ingyamilmolinar/rsharp/internal/midi"
	"github.com/ingyamilmolinar/rsharp/internal/render"
	"github.com/ingyamilmolinar/rsharp/internal/ui"
)

type VisualizeOptions struct {
	MIDIPath  string
	AudioPath string
	// BPM converts ticks to seconds. Zero means the configured default,
	// negative means the file's own tempo map.
	BPM    float64
	Config *config.Config
	Logger *game_log.Logger
	// Seed fixes the particle randomness when non-zero.
	Seed int64

	Headless     bool
	Frames       int
	RecordDir    string
	ExitWhenDone bool
}

// openAudio is replaced in tests.
var openAudio = func(path string, logger *game_log.Logger) (engine.Playback, error) {
	return audio.Open(path, logger)
}

// Build loads the MIDI file and assembles an engine for it. now may be nil.
func Build(opts VisualizeOptions, now func() time.Time) (*engine.Engine, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bpm := opts.BPM
	if bpm == 0 {
		bpm = cfg.Playback.DefaultBPM
	}
	events, err := midi.Load(opts.MIDIPath, bpm)
	if err != nil {
		return nil, err
	}
	opts.Logger.Infof("[MIDI] loaded %d note events from %s", len(events), opts.MIDIPath)

	w, h := cfg.Window.Width, cfg.Window.Height
	pipe := effect.NewPipeline(cfg.BackgroundColor())
	if cfg.Effects.DrumHits {
		pipe.Register(effect.NewDrumHit(w, h))
	}
	if cfg.Effects.Particles {
		var rng *rand.Rand
		if opts.Seed != 0 {
			rng = rand.New(rand.NewSource(opts.Seed))
		}
		pipe.Register(effect.NewParticleEmitter(w, h, cfg.Effects.MaxParticles, rng))
	}

	var playback engine.Playback
	switch {
	case opts.AudioPath == "":
	case opts.Headless:
		playback = &audio.Nop{}
	default:
		p, err := openAudio(opts.AudioPath, opts.Logger)
		if err != nil {
			opts.Logger.Warnf("[AUDIO] %v; running without audio", err)
		} else {
			playback = p
		}
	}

	return engine.New(engine.Options{
		Timeline: event.NewTimeline(events),
		Pipeline: pipe,
		Audio:    playback,
		Logger:   opts.Logger,
		Now:      now,
		FPS:      cfg.Window.FPS,
	}), nil
}

// Visualize runs the visualizer in a window, or headless on a raster.
func Visualize(ctx context.Context, opts VisualizeOptions) error {
	if opts.MIDIPath == "" {
		return Usagef("no MIDI file given")
	}
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if !opts.Headless {
		eng, err := Build(opts, nil)
		if err != nil {
			return err
		}
		return ui.Run(ui.New(eng, opts.Config.Window, opts.Logger))
	}
	return runHeadless(ctx, opts)
}

// frameClock advances by exactly one frame per tick so headless output does
// not depend on how fast frames are produced.
type frameClock struct {
	t    time.Time
	step time.Duration
}

func (c *frameClock) now() time.Time { return c.t }

func (c *frameClock) tick() { c.t = c.t.Add(c.step) }

func runHeadless(ctx context.Context, opts VisualizeOptions) error {
	cfg := opts.Config
	clk := &frameClock{t: time.Unix(0, 0), step: time.Second / time.Duration(cfg.Window.FPS)}
	eng, err := Build(opts, clk.now)
	if err != nil {
		return err
	}
	if opts.RecordDir != "" {
		if err := os.MkdirAll(opts.RecordDir, 0755); err != nil {
			return fmt.Errorf("%w: %v", engine.ErrRenderSurface, err)
		}
	}
	if opts.Frames <= 0 && !opts.ExitWhenDone {
		opts.Logger.Warnf("[ENGINE] headless run without -frames or -exit-when-done runs until interrupted")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	raster := render.NewRaster(cfg.Window.Width, cfg.Window.Height)
	frames := 0
	present := func(render.Surface) error {
		frames++
		clk.tick()
		if opts.RecordDir != "" {
			if err := writePNG(filepath.Join(opts.RecordDir, fmt.Sprintf("frame_%05d.png", frames)), raster); err != nil {
				return err
			}
		}
		if (opts.Frames > 0 && frames >= opts.Frames) || (opts.ExitWhenDone && eng.Finished()) {
			cancel()
		}
		return nil
	}
	err = eng.Run(ctx, raster, present)
	st := eng.Stats()
	opts.Logger.Infof("[ENGINE] headless run done: %d frames, %.2fs, %d events", frames, st.Elapsed, st.Dispatched)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func writePNG(path string, r *render.Raster) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, r.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
