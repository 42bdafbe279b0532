// Package cart exposes the cartridge to a console host.
// The host calls Update once per frame; everything else happens inside.
package cart

import (
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tinybreak/internal/core"
	"github.com/vovakirdan/tinybreak/internal/games/breakout"
)

// ErrPoisoned is the panic value raised when the game state is accessed
// after an earlier frame panicked while holding the lock.
var ErrPoisoned = errors.New("cart: game state poisoned by an earlier panic")

// Host is the console the cartridge runs on: a drawing surface plus the
// gamepad register.
type Host interface {
	core.Surface
	Gamepad() core.Gamepad
}

// Cartridge owns the game and serializes access to it.
// The game is built lazily on first access and is never torn down.
type Cartridge struct {
	host   Host
	logger *log.Logger

	mu       sync.Mutex
	once     sync.Once
	game     *breakout.Game
	poisoned bool
}

// Option configures a Cartridge.
type Option func(*Cartridge)

// WithLogger sets the logger used for debug events.
func WithLogger(l *log.Logger) Option {
	return func(c *Cartridge) {
		c.logger = l
	}
}

// New creates a cartridge bound to the given host.
func New(host Host, opts ...Option) *Cartridge {
	c := &Cartridge{host: host}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c
}

var (
	defaultCart *Cartridge
	defaultOnce sync.Once
)

// Default returns the process-wide cartridge, creating it on first call.
// Arguments passed on later calls are ignored.
func Default(host Host, opts ...Option) *Cartridge {
	defaultOnce.Do(func() {
		defaultCart = New(host, opts...)
	})
	return defaultCart
}

// with runs fn on the game while holding the lock.
// A panic inside fn poisons the cartridge for every later call.
func (c *Cartridge) with(fn func(g *breakout.Game)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.poisoned {
		panic(ErrPoisoned)
	}
	c.once.Do(func() {
		c.game = breakout.New()
		c.logger.Debug("cartridge booted", "bricks", c.game.BricksAlive())
	})

	done := false
	defer func() {
		if !done {
			c.poisoned = true
		}
	}()
	fn(c.game)
	done = true
}

// Update runs one frame: poll the gamepad, move the paddle, step the
// physics and draw. Each step takes the lock on its own.
func (c *Cartridge) Update() {
	pad := c.host.Gamepad()

	if pad.Has(core.ButtonRight) {
		c.with(func(g *breakout.Game) { g.Paddle().Shift(1, 0) })
	}
	if pad.Has(core.ButtonLeft) {
		c.with(func(g *breakout.Game) { g.Paddle().Shift(-1, 0) })
	}
	if pad.Has(core.ButtonDown) {
		c.with(func(g *breakout.Game) { g.Paddle().Shift(0, 1) })
	}
	if pad.Has(core.ButtonUp) {
		c.with(func(g *breakout.Game) { g.Paddle().Shift(0, -1) })
	}

	var result core.StepResult
	c.with(func(g *breakout.Game) { result = g.Update() })
	c.with(func(g *breakout.Game) { g.Render(c.host) })

	for _, slot := range result.Exploded {
		c.logger.Debug("brick exploded", "frame", result.Frame, "slot", slot)
	}
}

// Snapshot returns a copy of the current game state.
func (c *Cartridge) Snapshot() breakout.Snapshot {
	var snap breakout.Snapshot
	c.with(func(g *breakout.Game) { snap = g.Snapshot() })
	return snap
}

// Poisoned reports whether an earlier panic has disabled the cartridge.
func (c *Cartridge) Poisoned() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.poisoned
}
