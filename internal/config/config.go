// Package config loads viewer and turntable settings from a JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"turntable/internal/turntable"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Turntable TurntableConfig `json:"turntable"`
	Window    WindowConfig    `json:"window"`
}

type TurntableConfig struct {
	LineCount     uint32  `json:"lineCount"`
	LineThickness float32 `json:"lineThickness"`
	Height        float32 `json:"height"`
	Radius        float32 `json:"radius"`
	// ScrollDegrees is how far one unit of scroll turns the table.
	ScrollDegrees float32 `json:"scrollDegrees"`
}

type WindowConfig struct {
	Width     int32  `json:"width"`
	Height    int32  `json:"height"`
	TargetFPS int32  `json:"targetFps"`
	Title     string `json:"title"`
}

func Default() Config {
	return Config{
		Turntable: TurntableConfig{
			LineCount:     106,
			LineThickness: 0.002,
			Height:        0.03,
			Radius:        0.1,
			ScrollDegrees: 10,
		},
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			TargetFPS: 120,
			Title:     "Turntable",
		},
	}
}

// Load reads path over the defaults: keys missing from the file keep their
// default value, keys present are taken as written, zero included.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	t := c.Turntable
	switch {
	case t.Radius <= 0:
		return fmt.Errorf("%w: radius must be positive, got %v", ErrInvalid, t.Radius)
	case t.Height < 0:
		return fmt.Errorf("%w: height must not be negative, got %v", ErrInvalid, t.Height)
	case t.LineThickness < 0:
		return fmt.Errorf("%w: line thickness must not be negative, got %v", ErrInvalid, t.LineThickness)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	return nil
}

func (c Config) Settings() turntable.Settings {
	t := c.Turntable
	return turntable.Settings{
		LineCount:        t.LineCount,
		LineThickness:    t.LineThickness,
		Height:           t.Height,
		InnerRadius:      t.Radius,
		ScrollMultiplier: mgl32.DegToRad(t.ScrollDegrees),
	}
}

// Save writes the config as indented JSON.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
