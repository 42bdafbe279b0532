package config

import (
	_ "embed"
)

//go:embed defaults/tinybreak.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in host configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Palette: []string{"#e0f8cf", "#86c06c", "#306850", "#071821"},
			Scale:   1,
			Zoom:    4,
		},
		Timing: TimingConfig{
			TickRate: 60,
		},
		Input: InputConfig{
			HoldFrames: 6,
			Keys: KeyConfig{
				Left:  []string{"left", "a", "h"},
				Right: []string{"right", "d", "l"},
				Up:    []string{"up", "w", "k"},
				Down:  []string{"down", "s", "j"},
				X:     []string{"x", " "},
				Z:     []string{"z", "enter"},
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
