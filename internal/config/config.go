package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
)

// WindowConfig controls the render surface.
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title,omitempty"`
	FPS    int    `json:"fps"`
}

// EffectsConfig tunes the shipped effects.
type EffectsConfig struct {
	MaxParticles int      `json:"maxParticles"`
	Background   [3]uint8 `json:"background"`
	DrumHits     bool     `json:"drumHits"`
	Particles    bool     `json:"particles"`
}

// PlaybackConfig holds timing defaults.
type PlaybackConfig struct {
	DefaultBPM float64 `json:"defaultBpm"`
}

// Config is the main configuration structure
type Config struct {
	Window   WindowConfig   `json:"window"`
	Effects  EffectsConfig  `json:"effects"`
	Playback PlaybackConfig `json:"playback"`
	LogLevel string         `json:"logLevel,omitempty"`
}

// DefaultConfig returns the values the visualizer uses when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "R# - MIDI Visualizer",
			FPS:    60,
		},
		Effects: EffectsConfig{
			MaxParticles: 200,
			Background:   [3]uint8{20, 20, 20},
			DrumHits:     true,
			Particles:    true,
		},
		Playback: PlaybackConfig{
			DefaultBPM: 120,
		},
		LogLevel: "INFO",
	}
}

// BackgroundColor returns the configured clear color.
func (c *Config) BackgroundColor() color.RGBA {
	b := c.Effects.Background
	return color.RGBA{b[0], b[1], b[2], 255}
}

// Validate rejects values the engine cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.Window.FPS)
	}
	if c.Effects.MaxParticles < 0 {
		return fmt.Errorf("maxParticles must not be negative, got %d", c.Effects.MaxParticles)
	}
	if c.Playback.DefaultBPM < 0 {
		return fmt.Errorf("defaultBpm must not be negative, got %v", c.Playback.DefaultBPM)
	}
	return nil
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rsharp"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config at path, or the default location when path is empty.
// A missing file yields the defaults. Fields absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
