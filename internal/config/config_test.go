package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Fatalf("default window = %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Effects.MaxParticles != 200 {
		t.Fatalf("default particle cap = %d", cfg.Effects.MaxParticles)
	}
	if cfg.Playback.DefaultBPM != 120 {
		t.Fatalf("default bpm = %v", cfg.Playback.DefaultBPM)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"effects":{"maxParticles":50,"background":[1,2,3],"drumHits":true,"particles":false}}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Effects.MaxParticles != 50 {
		t.Fatalf("maxParticles = %d, want 50", cfg.Effects.MaxParticles)
	}
	if cfg.Effects.Particles {
		t.Fatalf("particles should be disabled")
	}
	if got := cfg.BackgroundColor(); got.R != 1 || got.G != 2 || got.B != 3 || got.A != 255 {
		t.Fatalf("background = %v", got)
	}
	if cfg.Window.FPS != 60 {
		t.Fatalf("fps default lost: %d", cfg.Window.FPS)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"window":{"width":0,"height":600,"fps":60}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	cfg := DefaultConfig()
	cfg.Window.FPS = 30
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Window.FPS != 30 {
		t.Fatalf("fps = %d, want 30", got.Window.FPS)
	}
}
