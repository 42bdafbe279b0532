package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tinybreak/internal/cart"
	"github.com/vovakirdan/tinybreak/internal/core"
	"github.com/vovakirdan/tinybreak/internal/games/breakout"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model driving the cartridge.
type Model struct {
	cart     *cart.Cartridge
	host     *Host
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig

	width, height int
	paused        bool
	quitting      bool
}

// Options configures the terminal host.
type Options struct {
	Keys   KeyMap
	Scale  int
	Logger *log.Logger
}

// NewModel creates a new Bubble Tea model for the given cartridge and host.
func NewModel(c *cart.Cartridge, host *Host, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		cart:     c,
		host:     host,
		renderer: NewRenderer(cfg.Palette, opts.Scale),
		keys:     opts.Keys,
		help:     help.New(),
		logger:   logger,
		config:   cfg,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "frame", m.cart.Snapshot().Frame)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.host.ReleaseAll()
		m.logger.Debug("pause toggled", "paused", m.paused)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.paused {
		return m, nil
	}
	if b, ok := m.keys.MapKey(msg); ok {
		m.host.Press(b)
	}
	return m, nil
}

// handleTick runs one cartridge frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.host.Clear()
		m.cart.Update()
		m.host.EndFrame()
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// tooSmall reports whether the terminal cannot fit the picture.
func (m Model) tooSmall() (bool, int, int) {
	cols, rows := m.renderer.Size(m.host.Framebuffer)
	// Size is unknown until the first WindowSizeMsg
	if m.width == 0 && m.height == 0 {
		return false, cols, rows
	}
	return m.width < cols || m.height < rows+1, cols, rows
}

// View renders the current frame to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if small, cols, rows := m.tooSmall(); small {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.\nTry a larger window or --scale %d.\n\n%s",
			cols, rows+1, m.width, m.height, m.renderer.scale+1, m.help.View(m.keys))
	}

	snap := m.cart.Snapshot()
	status := fmt.Sprintf("%s  frame %d  bricks %d/%d  pad %s",
		breakout.Title, snap.Frame, snap.BricksAlive, breakout.BrickCount, m.host.Gamepad())
	if m.paused {
		status += "  PAUSED"
	}

	return m.renderer.Render(m.host.Framebuffer) + "\n" +
		statusStyle.Render(status) + "  " + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the cartridge.
func Run(c *cart.Cartridge, host *Host, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(c, host, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
