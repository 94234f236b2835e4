package ui

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/ingyamilmolinar/rsharp/core/engine"
	"github.com/ingyamilmolinar/rsharp/internal/config"
	game_log "github.com/ingyamilmolinar/rsharp/internal/log"
)

var resetRect = image.Rect(10, 10, 90, 40)

// Game adapts the engine to ebiten's update/draw loop.
type Game struct {
	eng    *engine.Engine
	logger *game_log.Logger
	window config.WindowConfig

	reset     *Button
	keys      *keyEdges
	showDebug bool
	frame     int64
}

func New(eng *engine.Engine, window config.WindowConfig, logger *game_log.Logger) *Game {
	g := &Game{
		eng:    eng,
		logger: logger,
		window: window,
		keys:   newKeyEdges(),
	}
	g.reset = NewButton("RESET", resetRect, func() {
		g.logger.Debugf("[UI] reset button clicked")
		g.eng.Handle(engine.InputReset)
	})
	return g
}

// Update polls input and advances the engine by one step.
func (g *Game) Update() error {
	if g.eng.State() == engine.Terminated {
		return ebiten.Termination
	}
	g.handleInput()
	if err := g.eng.Step(); err != nil {
		if errors.Is(err, engine.ErrTerminated) {
			return ebiten.Termination
		}
		return err
	}
	g.frame++
	return nil
}

func (g *Game) handleInput() {
	if windowClosing() {
		g.logger.Infof("[UI] window closing")
		g.eng.Handle(engine.InputQuit)
		return
	}
	if g.keys.justPressed(ebiten.KeyEscape) {
		g.eng.Handle(engine.InputQuit)
		return
	}
	if g.keys.justPressed(ebiten.KeySpace) {
		g.eng.Handle(engine.InputTogglePause)
	}
	if g.keys.justPressed(ebiten.KeyR) {
		g.eng.Handle(engine.InputReset)
	}
	if g.keys.justPressed(ebiten.KeyF) {
		g.showDebug = !g.showDebug
	}
	x, y := cursorPosition()
	g.reset.Handle(x, y, isMouseButtonPressed(ebiten.MouseButtonLeft))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.paint(newScreenSurface(screen))
	if g.showDebug {
		w, _ := g.Layout(0, 0)
		msg := fmt.Sprintf("TPS %.0f FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS())
		ebitenutil.DebugPrintAt(screen, msg, w-110, 10)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.window.Width, g.window.Height
}

// Run opens the window and blocks until the engine terminates.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.window.Width, g.window.Height)
	ebiten.SetWindowTitle(g.window.Title)
	ebiten.SetTPS(g.window.FPS)
	ebiten.SetWindowClosingHandled(true)
	defer g.eng.Close()
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("%w: %v", engine.ErrRenderSurface, err)
	}
	return nil
}
