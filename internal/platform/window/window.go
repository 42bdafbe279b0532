// Package window provides an Ebitengine console host that shows the
// framebuffer in a desktop window. Unlike terminals, windows report key
// releases, so the gamepad mirrors the keyboard exactly.
package window

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tinybreak/internal/cart"
	"github.com/vovakirdan/tinybreak/internal/config"
	"github.com/vovakirdan/tinybreak/internal/core"
	"github.com/vovakirdan/tinybreak/internal/games/breakout"
)

// Host is the window console: a framebuffer plus the keyboard state polled
// at the start of each frame.
type Host struct {
	*core.Framebuffer

	keys map[core.Button][]ebiten.Key
	pad  core.Gamepad
}

// NewHost creates a window host with the configured key bindings.
// Reserved keys and keys Ebitengine does not know are logged and skipped.
func NewHost(keys config.KeyConfig, logger *log.Logger) *Host {
	h := &Host{
		Framebuffer: core.NewScreen(),
		keys:        make(map[core.Button][]ebiten.Key, len(core.Buttons)),
	}
	for _, b := range core.Buttons {
		for _, name := range keys.ForButton(b) {
			if config.IsReservedKey(name) {
				logger.Warn("skipping reserved key binding", "button", b, "key", name)
				continue
			}
			k, err := parseKey(name)
			if err != nil {
				logger.Warn("skipping key binding", "button", b, "key", name, "error", err)
				continue
			}
			h.keys[b] = append(h.keys[b], k)
		}
	}
	return h
}

// parseKey maps a config key name to an Ebitengine key.
func parseKey(name string) (ebiten.Key, error) {
	switch strings.ToLower(name) {
	case "left":
		return ebiten.KeyArrowLeft, nil
	case "right":
		return ebiten.KeyArrowRight, nil
	case "up":
		return ebiten.KeyArrowUp, nil
	case "down":
		return ebiten.KeyArrowDown, nil
	case " ", "space":
		return ebiten.KeySpace, nil
	case "enter":
		return ebiten.KeyEnter, nil
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// poll samples the keyboard into the gamepad register.
func (h *Host) poll() {
	var pad core.Gamepad
	for b, keys := range h.keys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				pad = pad.With(b)
				break
			}
		}
	}
	h.pad = pad
}

// Gamepad implements cart.Host.
func (h *Host) Gamepad() core.Gamepad {
	return h.pad
}

// Game implements ebiten.Game around the cartridge.
type Game struct {
	cart    *cart.Cartridge
	host    *Host
	palette core.Palette
	pixels  []byte
	logger  *log.Logger
}

// Options configures the window host.
type Options struct {
	Zoom   int
	Logger *log.Logger
}

// Update runs one cartridge frame.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.logger.Info("quit", "frame", g.cart.Snapshot().Frame)
		return ebiten.Termination
	}

	g.host.poll()
	g.host.Clear()
	g.cart.Update()
	return nil
}

// Draw copies the framebuffer to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.host.RGBA(g.palette, g.pixels)
	screen.WritePixels(g.pixels)
}

// Layout keeps the console resolution; Ebitengine scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.ScreenSize, core.ScreenSize
}

// Run opens the window and drives the cartridge until it is closed.
func Run(c *cart.Cartridge, host *Host, cfg core.RuntimeConfig, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	zoom := opts.Zoom
	if zoom < 1 {
		zoom = 1
	}

	ebiten.SetWindowSize(core.ScreenSize*zoom, core.ScreenSize*zoom)
	ebiten.SetWindowTitle(breakout.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	game := &Game{
		cart:    c,
		host:    host,
		palette: cfg.Palette,
		pixels:  make([]byte, core.ScreenSize*core.ScreenSize*4),
		logger:  logger,
	}

	logger.Info("window opened", "zoom", zoom, "tps", cfg.TickRate)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("window host: %w", err)
	}
	return nil
}
