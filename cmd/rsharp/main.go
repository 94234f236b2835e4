// Command rsharp visualizes a MIDI file, optionally in sync with audio.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/ncruces/zenity"

	"github.com/ingyamilmolinar/rsharp/internal/app"
	"github.com/ingyamilmolinar/rsharp/internal/config"
)

func main() {
	os.Exit(app.ExitCode(run(os.Args[1:])))
}

func run(args []string) error {
	fs := flag.NewFlagSet("rsharp", flag.ContinueOnError)
	var (
		bpm        float64
		audioPath  string
		configPath string
		logLevel   string
		opts       app.VisualizeOptions
	)
	fs.Float64Var(&bpm, "bpm", 0, "tempo used to convert ticks to seconds (0: config default, <0: file tempo map)")
	fs.Float64Var(&bpm, "b", 0, "shorthand for -bpm")
	fs.StringVar(&audioPath, "audio", "", "WAV file to play alongside")
	fs.StringVar(&audioPath, "a", "", "shorthand for -audio")
	fs.StringVar(&configPath, "config", "", "config file (default: user config dir)")
	fs.StringVar(&logLevel, "log-level", "", "DEBUG, INFO, WARN, ERROR or NONE")
	fs.BoolVar(&opts.Headless, "headless", false, "render off screen without a window")
	fs.IntVar(&opts.Frames, "frames", 0, "headless: stop after this many frames")
	fs.StringVar(&opts.RecordDir, "record", "", "headless: write every frame as PNG into this directory")
	fs.BoolVar(&opts.ExitWhenDone, "exit-when-done", false, "headless: stop once all events have played out")
	fs.Int64Var(&opts.Seed, "seed", 0, "particle random seed (0: time based)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: rsharp [flags] <midi-file>")
		fs.PrintDefaults()
	}

	positional, err := app.ParseArgs(fs, args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return app.Usagef("bad config: %v", err)
	}
	logger, err := app.Logger(os.Stderr, cfg, logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	switch len(positional) {
	case 0:
		if opts.Headless {
			fs.Usage()
			return app.Usagef("no MIDI file given")
		}
		path, err := zenity.SelectFile(
			zenity.Title("Open MIDI file"),
			zenity.FileFilters{{Name: "MIDI files", Patterns: []string{"*.mid", "*.midi"}}},
		)
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				return app.Usagef("no MIDI file selected")
			}
			logger.Errorf("[UI] file picker: %v", err)
			return app.Usagef("no MIDI file given")
		}
		opts.MIDIPath = path
	case 1:
		opts.MIDIPath = positional[0]
	default:
		fs.Usage()
		return app.Usagef("expected one MIDI file, got %d arguments", len(positional))
	}

	opts.BPM = bpm
	opts.AudioPath = audioPath
	opts.Config = cfg
	opts.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := app.Visualize(ctx, opts); err != nil {
		logger.Errorf("[MAIN] %v", err)
		return err
	}
	return nil
}
