package ui

import (
	"fmt"

	"github.com/ingyamilmolinar/rsharp/core/engine"
	"github.com/ingyamilmolinar/rsharp/internal/render"
)

const pausedLabel = "PAUSED"

// paint draws the effects and then the window chrome on top.
func (g *Game) paint(dst render.Surface) {
	g.eng.Paint(dst)
	g.reset.Draw(dst)

	w, h := dst.Size()
	st := g.eng.Stats()
	if st.State == engine.Paused {
		x := (w - render.TextWidth(pausedLabel)) / 2
		y := (h - render.TextFace.Height) / 2
		dst.DrawText(pausedLabel, x, y, colPausedText)
	}
	dst.DrawText(statusLine(st), 10, h-render.TextFace.Height-8, colStatusText)
}

func statusLine(st engine.Stats) string {
	audio := "off"
	if st.Audio {
		audio = "on"
	}
	return fmt.Sprintf("%7.2fs  events %d  queued %d  live %d  audio %s",
		st.Elapsed, st.Dispatched, st.Remaining, st.Live, audio)
}
