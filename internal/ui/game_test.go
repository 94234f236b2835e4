package ui

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/rsharp/core/effect"
	"github.com/ingyamilmolinar/rsharp/core/engine"
	"github.com/ingyamilmolinar/rsharp/core/event"
	"github.com/ingyamilmolinar/rsharp/internal/audio"
	"github.com/ingyamilmolinar/rsharp/internal/config"
	game_log "github.com/ingyamilmolinar/rsharp/internal/log"
	"github.com/ingyamilmolinar/rsharp/internal/render"
)

var testLogger = game_log.Discard()

// fakeInput is the state the polled input functions report.
type fakeInput struct {
	x, y    int
	mouse   bool
	keys    map[ebiten.Key]bool
	closing bool
}

func (in *fakeInput) install(t *testing.T) {
	t.Helper()
	in.keys = map[ebiten.Key]bool{}
	restore := SetInputForTest(
		func() (int, int) { return in.x, in.y },
		func(b ebiten.MouseButton) bool { return b == ebiten.MouseButtonLeft && in.mouse },
		func(k ebiten.Key) bool { return in.keys[k] },
		func() bool { return in.closing },
	)
	t.Cleanup(restore)
}

type testGame struct {
	*Game
	in    *fakeInput
	now   time.Time
	audio *audio.Nop
	drums *effect.DrumHit
}

func newTestGame(t *testing.T, events ...event.NoteEvent) *testGame {
	t.Helper()
	tg := &testGame{in: &fakeInput{}, now: time.Unix(0, 0), audio: &audio.Nop{}}
	tg.in.install(t)
	tg.drums = effect.NewDrumHit(800, 600)
	pipe := effect.NewPipeline(color.RGBA{20, 20, 20, 255})
	pipe.Register(tg.drums)
	eng := engine.New(engine.Options{
		Timeline: event.NewTimeline(events),
		Pipeline: pipe,
		Audio:    tg.audio,
		Logger:   testLogger,
		Now:      func() time.Time { return tg.now },
	})
	tg.Game = New(eng, config.DefaultConfig().Window, testLogger)
	return tg
}

// frame advances wall time by one tick and runs Update.
func (tg *testGame) frame(t *testing.T) error {
	t.Helper()
	tg.now = tg.now.Add(time.Second / 60)
	return tg.Update()
}

// tap presses k for one frame and releases it on the next.
func (tg *testGame) tap(t *testing.T, k ebiten.Key) {
	t.Helper()
	tg.in.keys[k] = true
	tg.frame(t)
	tg.in.keys[k] = false
	tg.frame(t)
}

func TestLayoutUsesConfiguredSize(t *testing.T) {
	tg := newTestGame(t)
	if w, h := tg.Layout(1920, 1080); w != 800 || h != 600 {
		t.Fatalf("Layout = %dx%d, want 800x600", w, h)
	}
}

func TestSpaceTogglesPause(t *testing.T) {
	tg := newTestGame(t)
	tg.frame(t)
	tg.tap(t, ebiten.KeySpace)
	if tg.eng.State() != engine.Paused || tg.audio.IsPlaying() {
		t.Fatalf("state %s playing %v after space", tg.eng.State(), tg.audio.IsPlaying())
	}
	tg.tap(t, ebiten.KeySpace)
	if tg.eng.State() != engine.Running || !tg.audio.IsPlaying() {
		t.Fatalf("state %s playing %v after second space", tg.eng.State(), tg.audio.IsPlaying())
	}
}

func TestHeldKeyFiresOnce(t *testing.T) {
	tg := newTestGame(t)
	tg.in.keys[ebiten.KeySpace] = true
	for i := 0; i < 10; i++ {
		tg.frame(t)
	}
	if tg.eng.State() != engine.Paused {
		t.Fatalf("held space toggled more than once: %s", tg.eng.State())
	}
}

func TestRKeyResets(t *testing.T) {
	tg := newTestGame(t, event.NoteEvent{Kind: event.NoteOn, Note: 36, Velocity: 100})
	tg.frame(t)
	tg.frame(t)
	if tg.drums.Live() != 1 {
		t.Fatalf("no flash before reset")
	}
	tg.in.keys[ebiten.KeySpace] = true
	tg.frame(t)
	tg.in.keys[ebiten.KeySpace] = false
	tg.in.keys[ebiten.KeyR] = true
	tg.Update()
	st := tg.eng.Stats()
	if st.State != engine.Running || st.Elapsed != 0 || tg.audio.Restarts != 1 {
		t.Fatalf("after R: %+v restarts=%d", st, tg.audio.Restarts)
	}
}

func TestEscapeTerminates(t *testing.T) {
	tg := newTestGame(t)
	tg.frame(t)
	tg.in.keys[ebiten.KeyEscape] = true
	if err := tg.frame(t); err != ebiten.Termination {
		t.Fatalf("Update after Esc = %v, want Termination", err)
	}
	if err := tg.frame(t); err != ebiten.Termination {
		t.Fatalf("Update after quit = %v, want Termination", err)
	}
}

func TestWindowCloseTerminates(t *testing.T) {
	tg := newTestGame(t)
	tg.frame(t)
	tg.in.closing = true
	if err := tg.frame(t); err != ebiten.Termination {
		t.Fatalf("Update while closing = %v", err)
	}
	if tg.eng.State() != engine.Terminated {
		t.Fatalf("state = %s", tg.eng.State())
	}
}

func TestResetButtonClick(t *testing.T) {
	tg := newTestGame(t)
	tg.frame(t)
	tg.frame(t)
	if tg.eng.Now() == 0 {
		t.Fatal("clock did not advance")
	}
	r := tg.reset.Rect()
	tg.in.x, tg.in.y = r.Min.X+1, r.Min.Y+1
	tg.in.mouse = true
	tg.Update()
	if tg.eng.Now() != 0 || tg.audio.Restarts != 1 {
		t.Fatalf("reset button did not reset: now=%v restarts=%d", tg.eng.Now(), tg.audio.Restarts)
	}
	// holding the button does not reset again
	tg.frame(t)
	tg.frame(t)
	if tg.audio.Restarts != 1 {
		t.Fatalf("held click reset %d times", tg.audio.Restarts)
	}
}

func TestClickOutsideResetIgnored(t *testing.T) {
	tg := newTestGame(t)
	tg.in.x, tg.in.y = 400, 300
	tg.in.mouse = true
	tg.frame(t)
	// dragging onto the button does not count as a click
	r := tg.reset.Rect()
	tg.in.x, tg.in.y = r.Min.X+1, r.Min.Y+1
	tg.frame(t)
	if tg.audio.Restarts != 0 {
		t.Fatalf("restarts = %d", tg.audio.Restarts)
	}
}

func TestPaintChrome(t *testing.T) {
	tg := newTestGame(t, event.NoteEvent{Kind: event.NoteOn, Note: 36, Velocity: 100})
	tg.frame(t)

	rec := render.NewRecorder(800, 600)
	tg.paint(rec)
	if rec.Calls[0].Op != render.OpFill {
		t.Fatalf("frame not cleared first")
	}
	var texts []string
	for _, c := range rec.Calls {
		if c.Op == render.OpText {
			texts = append(texts, c.Text)
		}
	}
	if len(texts) != 2 || texts[0] != "RESET" {
		t.Fatalf("running chrome texts = %q", texts)
	}

	tg.in.keys[ebiten.KeySpace] = true
	tg.frame(t)
	rec.Reset()
	tg.paint(rec)
	paused := false
	for _, c := range rec.Calls {
		if c.Op == render.OpText && c.Text == "PAUSED" {
			paused = true
			if c.Color != (color.NRGBA{255, 255, 255, 255}) {
				t.Fatalf("paused text color %v", c.Color)
			}
		}
	}
	if !paused {
		t.Fatal("no PAUSED overlay while paused")
	}
}

func TestDrawSendsButtonRectsThroughDrawRect(t *testing.T) {
	tg := newTestGame(t)

	type call struct {
		r      image.Rectangle
		c      color.Color
		filled bool
	}
	var calls []call
	orig := drawRect
	drawRect = func(dst *ebiten.Image, r image.Rectangle, c color.Color, filled bool) {
		calls = append(calls, call{r: r, c: c, filled: filled})
	}
	defer func() { drawRect = orig }()

	tg.Draw(ebiten.NewImage(800, 600))

	if len(calls) != 2 {
		t.Fatalf("expected 2 rect draws, got %d: %v", len(calls), calls)
	}
	if calls[0].r != resetRect || !calls[0].filled || calls[0].c != colButtonFill {
		t.Fatalf("fill call = %+v", calls[0])
	}
	if calls[1].r != resetRect || calls[1].filled || calls[1].c != colButtonBorder {
		t.Fatalf("border call = %+v", calls[1])
	}
}

func TestStatusLine(t *testing.T) {
	got := statusLine(engine.Stats{Elapsed: 1.5, Dispatched: 3, Remaining: 7, Live: 42, Audio: true})
	want := "   1.50s  events 3  queued 7  live 42  audio on"
	if got != want {
		t.Fatalf("statusLine = %q, want %q", got, want)
	}
}
