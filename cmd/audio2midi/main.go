// Command audio2midi turns the percussive hits of a WAV file into a MIDI file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ingyamilmolinar/rsharp/internal/app"
	"github.com/ingyamilmolinar/rsharp/internal/config"
	"github.com/ingyamilmolinar/rsharp/internal/midi"
)

func main() {
	os.Exit(app.ExitCode(run(os.Args[1:])))
}

func run(args []string) error {
	fs := flag.NewFlagSet("audio2midi", flag.ContinueOnError)
	var (
		output   string
		bpm      float64
		note     int
		velocity int
		logLevel string
		opts     = midi.DefaultWriteOptions()
	)
	fs.StringVar(&output, "output", "output.mid", "MIDI file to write")
	fs.StringVar(&output, "o", "output.mid", "shorthand for -output")
	fs.Float64Var(&bpm, "bpm", opts.BPM, "tempo of the written file")
	fs.Float64Var(&bpm, "b", opts.BPM, "shorthand for -bpm")
	fs.IntVar(&note, "note", int(opts.Note), "MIDI note number for every hit")
	fs.IntVar(&note, "n", int(opts.Note), "shorthand for -note")
	fs.IntVar(&velocity, "velocity", int(opts.Velocity), "note velocity")
	fs.IntVar(&velocity, "v", int(opts.Velocity), "shorthand for -velocity")
	fs.BoolVar(&opts.Dynamic, "dynamic", false, "scale velocity by onset strength")
	fs.StringVar(&logLevel, "log-level", "", "DEBUG, INFO, WARN, ERROR or NONE")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: audio2midi [flags] <audio.wav>")
		fs.PrintDefaults()
	}

	positional, err := app.ParseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		fs.Usage()
		return app.Usagef("expected one audio file, got %d arguments", len(positional))
	}
	if note < 0 || note > 127 || velocity < 1 || velocity > 127 {
		return app.Usagef("note must be 0..127 and velocity 1..127")
	}
	logger, err := app.Logger(os.Stderr, config.DefaultConfig(), logLevel)
	if err != nil {
		return err
	}
	opts.BPM = bpm
	opts.Note = uint8(note)
	opts.Velocity = uint8(velocity)

	n, err := app.Convert(app.ConvertOptions{
		Input:  positional[0],
		Output: output,
		Write:  opts,
		Logger: logger,
	})
	if err != nil {
		logger.Errorf("[CONVERT] %v", err)
		return err
	}
	fmt.Printf("Created %d notes in %s\n", n, output)
	return nil
}
