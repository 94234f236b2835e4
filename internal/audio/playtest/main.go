// Command playtest plays a WAV through the audio device, exercising pause,
// resume and restart. It is a manual check for machines with sound.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ingyamilmolinar/rsharp/internal/audio"
	game_log "github.com/ingyamilmolinar/rsharp/internal/log"
)

func main() {
	step := flag.Duration("step", time.Second, "time between transport actions")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: playtest [-step 1s] <file.wav>")
		os.Exit(2)
	}
	logger := game_log.New(os.Stderr, game_log.LevelDebug)
	p, err := audio.Open(flag.Arg(0), logger)
	if err != nil {
		logger.Errorf("[AUDIO] %v", err)
		os.Exit(1)
	}
	defer p.Close()
	if c := p.Clip(); c != nil {
		logger.Infof("[AUDIO] %.2fs clip, %d frames at %dHz", c.Duration(), c.Frames(), c.SampleRate)
	}

	actions := []struct {
		name string
		do   func() error
	}{
		{"play", p.Play},
		{"pause", func() error { p.Pause(); return nil }},
		{"resume", func() error { p.Resume(); return nil }},
		{"restart", p.Restart},
	}
	for _, a := range actions {
		if err := a.do(); err != nil {
			logger.Errorf("[AUDIO] %s: %v", a.name, err)
			os.Exit(1)
		}
		logger.Infof("[AUDIO] %s (playing=%v)", a.name, p.IsPlaying())
		time.Sleep(*step)
	}
}
