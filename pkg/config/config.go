// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/yuvrender/pkg/adapters/ggsurface"
	"github.com/user/yuvrender/pkg/player"
	"github.com/user/yuvrender/pkg/render"
)

// Config represents the full configuration for a playback run.
type Config struct {
	// Host container
	Container string `yaml:"container"` // WIDTHxHEIGHT
	Tolerance int    `yaml:"tolerance"`

	// Surface
	Background string `yaml:"background"`
	Scaler     string `yaml:"scaler"`

	// Input
	Streams []StreamConfig `yaml:"streams"`
	Events  []EventConfig  `yaml:"events"`

	// Output
	Snapshots SnapshotConfig `yaml:"snapshots"`
	Summary   string         `yaml:"summary"`
	LogLevel  string         `yaml:"log_level"`
}

// StreamConfig describes one raw I420 file.
type StreamConfig struct {
	Path      string `yaml:"path"`
	Size      string `yaml:"size"` // WIDTHxHEIGHT
	MaxFrames int    `yaml:"max_frames"`
}

// EventConfig schedules a container change before the given frame.
type EventConfig struct {
	Frame  int    `yaml:"frame"`
	Action string `yaml:"action"`
	Size   string `yaml:"size"` // resize only
}

// SnapshotConfig controls surface snapshots.
type SnapshotConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	Every   int    `yaml:"every"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Container:  "640x360",
		Tolerance:  render.DefaultTolerance,
		Background: "#000000",
		Scaler:     "approx-bilinear",
		Snapshots: SnapshotConfig{
			Dir:   "./snapshots",
			Every: 30,
		},
		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate reports the first problem found in the configuration.
func (c Config) Validate() error {
	if _, _, err := ParseSize(c.Container); err != nil {
		return fmt.Errorf("container: %w", err)
	}
	if c.Tolerance < 0 {
		return errors.New("tolerance must not be negative")
	}
	if c.Scaler != "" && ggsurface.ScalerByName(c.Scaler) == nil {
		return fmt.Errorf("unknown scaler %q", c.Scaler)
	}
	if len(c.Streams) == 0 {
		return errors.New("no streams configured")
	}
	for i, s := range c.Streams {
		if s.Path == "" {
			return fmt.Errorf("stream %d: path is required", i)
		}
		if _, _, err := ParseSize(s.Size); err != nil {
			return fmt.Errorf("stream %d: %w", i, err)
		}
		if s.MaxFrames < 0 {
			return fmt.Errorf("stream %d: max_frames must not be negative", i)
		}
	}
	for i, e := range c.Events {
		if e.Frame < 0 {
			return fmt.Errorf("event %d: frame must not be negative", i)
		}
		switch player.EventAction(e.Action) {
		case player.ActionResize:
			if _, _, err := ParseSize(e.Size); err != nil {
				return fmt.Errorf("event %d: %w", i, err)
			}
		case player.ActionHide, player.ActionShow, player.ActionClear:
		default:
			return fmt.Errorf("event %d: unknown action %q", i, e.Action)
		}
	}
	if c.Snapshots.Enabled && c.Snapshots.Every <= 0 {
		return errors.New("snapshots.every must be positive")
	}
	return nil
}

// ParseSize parses a size such as "640x360". Zero is allowed on either axis.
func ParseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w < 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return w, h, nil
}

// ParseColor parses a hex color string to color.Color.
// Malformed input yields black.
func ParseColor(hex string) color.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.Black
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.Black
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// ToPlayerConfig converts Config to player.Config. Call Validate first.
func (c Config) ToPlayerConfig() player.Config {
	cfg := player.DefaultConfig()
	cfg.ContainerWidth, cfg.ContainerHeight, _ = ParseSize(c.Container)
	cfg.Tolerance = c.Tolerance

	for _, s := range c.Streams {
		w, h, _ := ParseSize(s.Size)
		cfg.Streams = append(cfg.Streams, player.Stream{
			Path:      s.Path,
			Width:     w,
			Height:    h,
			MaxFrames: s.MaxFrames,
		})
	}
	for _, e := range c.Events {
		ev := player.Event{Frame: e.Frame, Action: player.EventAction(e.Action)}
		if ev.Action == player.ActionResize {
			ev.Width, ev.Height, _ = ParseSize(e.Size)
		}
		cfg.Events = append(cfg.Events, ev)
	}
	if c.Snapshots.Enabled {
		cfg.SnapshotEvery = c.Snapshots.Every
	}
	return cfg
}
