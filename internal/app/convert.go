package app

import (
	"path/filepath"
	"strings"

	game_log "github.com/ingyamilmolinar/rsharp/internal/log"
	"github.com/ingyamilmolinar/rsharp/internal/midi"
	"github.com/ingyamilmolinar/rsharp/internal/onset"
)

type ConvertOptions struct {
	Input  string
	Output string
	Write  midi.WriteOptions
	// Detector defaults to an EnergyDetector.
	Detector onset.Detector
	Logger   *game_log.Logger
}

// Convert detects the onsets of a WAV file and writes them as a one-note
// MIDI file. It returns the number of notes written.
func Convert(opts ConvertOptions) (int, error) {
	if opts.Input == "" {
		return 0, Usagef("no input audio file")
	}
	if opts.Output == "" {
		opts.Output = MIDIPathFor(opts.Input)
	}
	if opts.Detector == nil {
		opts.Detector = onset.NewEnergyDetector()
	}
	opts.Logger.Infof("[CONVERT] analyzing %s for onsets", opts.Input)
	onsets, err := onset.DetectFile(opts.Input, opts.Detector)
	if err != nil {
		return 0, err
	}
	opts.Logger.Infof("[CONVERT] saving %d notes to %s", len(onsets), opts.Output)
	if err := midi.SaveOnsets(opts.Output, onsets, opts.Write); err != nil {
		return 0, err
	}
	return len(onsets), nil
}

// MIDIPathFor names the MIDI file written next to an audio file.
func MIDIPathFor(audioPath string) string {
	return strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".mid"
}
