package app

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/ingyamilmolinar/rsharp/core/engine"
	"github.com/ingyamilmolinar/rsharp/internal/config"
	game_log "github.com/ingyamilmolinar/rsharp/internal/log"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{Usagef("no file"), 2},
		{flag.ErrHelp, 2},
		{engine.ErrInputLoad, 1},
		{errors.New("boom"), 1},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func newFlags() (*flag.FlagSet, *float64, *string) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	bpm := fs.Float64("bpm", 0, "")
	audio := fs.String("audio", "", "")
	return fs, bpm, audio
}

func TestParseArgsInterspersed(t *testing.T) {
	fs, bpm, audio := newFlags()
	pos, err := ParseArgs(fs, []string{"song.mid", "--bpm", "100", "-audio", "song.wav"})
	if err != nil {
		t.Fatal(err)
	}
	if len(pos) != 1 || pos[0] != "song.mid" || *bpm != 100 || *audio != "song.wav" {
		t.Fatalf("pos=%v bpm=%v audio=%q", pos, *bpm, *audio)
	}
}

func TestParseArgsDoubleDash(t *testing.T) {
	fs, _, _ := newFlags()
	pos, err := ParseArgs(fs, []string{"--", "-weird.mid"})
	if err != nil {
		t.Fatal(err)
	}
	if len(pos) != 1 || pos[0] != "-weird.mid" {
		t.Fatalf("pos = %v", pos)
	}
}

func TestParseArgsUnknownFlag(t *testing.T) {
	fs, _, _ := newFlags()
	_, err := ParseArgs(fs, []string{"a.mid", "--nope"})
	if ExitCode(err) != 2 {
		t.Fatalf("err = %v, want usage error", err)
	}
}

func TestLoggerLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	l, err := Logger(io.Discard, cfg, "")
	if err != nil || l.Level() != game_log.LevelInfo {
		t.Fatalf("default level: %v %v", l, err)
	}
	l, err = Logger(io.Discard, cfg, "debug")
	if err != nil || l.Level() != game_log.LevelDebug {
		t.Fatalf("override level: %v %v", l, err)
	}
	if _, err := Logger(io.Discard, cfg, "loud"); ExitCode(err) != 2 {
		t.Fatalf("bad level err = %v", err)
	}
}

func TestMIDIPathFor(t *testing.T) {
	if got := MIDIPathFor("/music/take 1.wav"); got != "/music/take 1.mid" {
		t.Fatalf("MIDIPathFor = %q", got)
	}
}
