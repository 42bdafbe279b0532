// Package config provides YAML/TOML host configuration loading for tinybreak.
// The cartridge itself takes no configuration; these settings only shape how
// hosts display the framebuffer, pace frames and read the keyboard.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tinybreak/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all host configuration.
type Config struct {
	Display DisplayConfig `yaml:"display" toml:"display"`
	Timing  TimingConfig  `yaml:"timing" toml:"timing"`
	Input   InputConfig   `yaml:"input" toml:"input"`
	Log     LogConfig     `yaml:"log" toml:"log"`
}

// DisplayConfig defines how the framebuffer is shown.
type DisplayConfig struct {
	Palette []string `yaml:"palette" toml:"palette"` // Four colours, lightest first
	Scale   int      `yaml:"scale" toml:"scale"`     // Terminal downsample factor
	Zoom    int      `yaml:"zoom" toml:"zoom"`       // Window pixel zoom
}

// TimingConfig defines the frame pacing.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate" toml:"tick_rate"`
}

// InputConfig defines keyboard handling.
type InputConfig struct {
	HoldFrames int       `yaml:"hold_frames" toml:"hold_frames"`
	Keys       KeyConfig `yaml:"keys" toml:"keys"`
}

// KeyConfig lists the keys bound to each gamepad button.
type KeyConfig struct {
	Left  []string `yaml:"left" toml:"left"`
	Right []string `yaml:"right" toml:"right"`
	Up    []string `yaml:"up" toml:"up"`
	Down  []string `yaml:"down" toml:"down"`
	X     []string `yaml:"x" toml:"x"`
	Z     []string `yaml:"z" toml:"z"`
}

// ForButton returns the keys bound to a gamepad button.
func (k KeyConfig) ForButton(b core.Button) []string {
	switch b {
	case core.ButtonLeft:
		return k.Left
	case core.ButtonRight:
		return k.Right
	case core.ButtonUp:
		return k.Up
	case core.ButtonDown:
		return k.Down
	case core.Button1:
		return k.X
	case core.Button2:
		return k.Z
	default:
		return nil
	}
}

// ReservedKeys are taken by host commands (quit, pause, help) and cannot
// be bound to a gamepad button.
var ReservedKeys = []string{"q", "esc", "escape", "ctrl+c", "p", "?"}

// IsReservedKey reports whether a key name is taken by a host command.
func IsReservedKey(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range ReservedKeys {
		if k == name {
			return true
		}
	}
	return false
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"` // debug, info, warn, error
	File  string `yaml:"file" toml:"file"`   // Empty means stderr (discarded by the terminal host)
}

// Validate checks that the configuration can drive a host.
func (c Config) Validate() error {
	if _, err := c.ParsePalette(); err != nil {
		return err
	}
	if c.Timing.TickRate < 1 || c.Timing.TickRate > 1000 {
		return fmt.Errorf("%w: tick_rate %d out of range 1-1000", ErrInvalidConfig, c.Timing.TickRate)
	}
	if c.Display.Scale < 1 || c.Display.Scale > 8 {
		return fmt.Errorf("%w: scale %d out of range 1-8", ErrInvalidConfig, c.Display.Scale)
	}
	if c.Display.Zoom < 1 || c.Display.Zoom > 16 {
		return fmt.Errorf("%w: zoom %d out of range 1-16", ErrInvalidConfig, c.Display.Zoom)
	}
	if c.Input.HoldFrames < 1 {
		return fmt.Errorf("%w: hold_frames must be positive", ErrInvalidConfig)
	}
	for _, b := range core.Buttons {
		for _, k := range c.Input.Keys.ForButton(b) {
			if IsReservedKey(k) {
				return fmt.Errorf("%w: key %q for %s is reserved", ErrInvalidConfig, k, b)
			}
		}
	}
	return nil
}

// ParsePalette converts the configured colour strings to a palette.
func (c Config) ParsePalette() (core.Palette, error) {
	var p core.Palette
	if len(c.Display.Palette) != core.PaletteSize {
		return p, fmt.Errorf("%w: palette needs %d colours, got %d",
			ErrInvalidConfig, core.PaletteSize, len(c.Display.Palette))
	}
	for i, s := range c.Display.Palette {
		color, err := core.ParseColor(s)
		if err != nil {
			return p, fmt.Errorf("%w: palette[%d]: %w", ErrInvalidConfig, i, err)
		}
		p[i] = color
	}
	return p, nil
}

// Runtime builds the runtime settings handed to hosts.
func (c Config) Runtime() (core.RuntimeConfig, error) {
	if err := c.Validate(); err != nil {
		return core.RuntimeConfig{}, err
	}
	palette, err := c.ParsePalette()
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	return core.RuntimeConfig{
		TickRate: c.Timing.TickRate,
		Palette:  palette,
	}, nil
}
