// Command launcher converts an audio file to MIDI and plays both in the
// visualizer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/ingyamilmolinar/rsharp/internal/app"
	"github.com/ingyamilmolinar/rsharp/internal/config"
	"github.com/ingyamilmolinar/rsharp/internal/midi"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	stepStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	errStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5555"))
)

func main() {
	os.Exit(app.ExitCode(run(os.Args[1:])))
}

func run(args []string) error {
	if len(args) != 1 {
		fmt.Println(titleStyle.Render("R# Visualizer Launcher"))
		fmt.Println("Usage: launcher <audio.wav>")
		return app.Usagef("expected one audio file")
	}
	audioPath := args[0]
	if _, err := os.Stat(audioPath); err != nil {
		fmt.Println(errStyle.Render("Error: file not found: " + audioPath))
		return err
	}
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	logger, err := app.Logger(os.Stderr, cfg, "")
	if err != nil {
		return err
	}

	midiPath := app.MIDIPathFor(audioPath)
	fmt.Println(titleStyle.Render("--- Processing: " + filepath.Base(audioPath) + " ---"))

	fmt.Println(stepStyle.Render("[1/2] Converting audio to MIDI..."))
	write := midi.DefaultWriteOptions()
	write.BPM = 120
	write.Dynamic = true
	n, err := app.Convert(app.ConvertOptions{Input: audioPath, Output: midiPath, Write: write, Logger: logger})
	if err != nil {
		fmt.Println(errStyle.Render("Error: " + err.Error()))
		return err
	}
	fmt.Println(okStyle.Render(fmt.Sprintf("Conversion complete: %d notes.", n)))

	fmt.Println(stepStyle.Render("[2/2] Launching visualizer..."))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = app.Visualize(ctx, app.VisualizeOptions{
		MIDIPath:  midiPath,
		AudioPath: audioPath,
		BPM:       120,
		Config:    cfg,
		Logger:    logger,
	})
	if err != nil {
		fmt.Println(errStyle.Render("Error: " + err.Error()))
	}
	return err
}
