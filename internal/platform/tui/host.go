package tui

import (
	"github.com/vovakirdan/tinybreak/internal/core"
)

// Host is the terminal console: a framebuffer plus a gamepad register fed by
// key presses. Terminals report presses but never releases, so each press
// holds its button for a fixed number of frames; key repeat keeps it held.
type Host struct {
	*core.Framebuffer

	holdFrames int
	held       map[core.Button]int // Frames left before release
}

// NewHost creates a terminal host.
func NewHost(holdFrames int) *Host {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &Host{
		Framebuffer: core.NewScreen(),
		holdFrames:  holdFrames,
		held:        make(map[core.Button]int, len(core.Buttons)),
	}
}

// Press holds a button for the configured number of frames.
func (h *Host) Press(b core.Button) {
	h.held[b] = h.holdFrames
}

// ReleaseAll drops every held button.
func (h *Host) ReleaseAll() {
	for b := range h.held {
		delete(h.held, b)
	}
}

// Gamepad implements cart.Host.
func (h *Host) Gamepad() core.Gamepad {
	var pad core.Gamepad
	for b, frames := range h.held {
		if frames > 0 {
			pad = pad.With(b)
		}
	}
	return pad
}

// EndFrame ages held buttons by one frame.
func (h *Host) EndFrame() {
	for b, frames := range h.held {
		if frames <= 1 {
			delete(h.held, b)
			continue
		}
		h.held[b] = frames - 1
	}
}
