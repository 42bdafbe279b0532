package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tinybreak/internal/cart"
	"github.com/vovakirdan/tinybreak/internal/config"
	"github.com/vovakirdan/tinybreak/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDefaults(t *testing.T) {
	km := NewKeyMap(config.DefaultConfig().Input.Keys)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Button
		ok   bool
	}{
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ButtonRight, true},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ButtonLeft, true},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ButtonUp, true},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ButtonDown, true},
		{"wasd d", runeKey('d'), core.ButtonRight, true},
		{"vim h", runeKey('h'), core.ButtonLeft, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.Button1, true},
		{"z", runeKey('z'), core.Button2, true},
		{"unbound", runeKey('m'), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := km.MapKey(tc.msg)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestKeyMapCustom(t *testing.T) {
	keys := config.DefaultConfig().Input.Keys
	keys.Right = []string{"e"}
	km := NewKeyMap(keys)

	b, ok := km.MapKey(runeKey('e'))
	assert.True(t, ok)
	assert.Equal(t, core.ButtonRight, b)

	_, ok = km.MapKey(runeKey('d'))
	assert.False(t, ok, "replaced binding should no longer match")
}

func TestKeyMapHelp(t *testing.T) {
	km := NewKeyMap(config.DefaultConfig().Input.Keys)
	assert.Len(t, km.ShortHelp(), 5)
	assert.Len(t, km.FullHelp(), 3)
	assert.Equal(t, "←/a/h", km.Buttons[core.ButtonLeft].Help().Key)
	assert.Equal(t, "x/space", km.Buttons[core.Button1].Help().Key)
}

func TestHostHoldsButtons(t *testing.T) {
	h := NewHost(3)
	h.Press(core.ButtonRight)

	for frame := range 3 {
		assert.True(t, h.Gamepad().Has(core.ButtonRight), "frame %d", frame)
		h.EndFrame()
	}
	assert.Equal(t, core.Gamepad(0), h.Gamepad(), "button should be released after hold expires")
}

func TestHostRepeatExtendsHold(t *testing.T) {
	h := NewHost(2)
	h.Press(core.ButtonUp)
	h.EndFrame()
	h.Press(core.ButtonUp) // key repeat
	h.EndFrame()

	assert.True(t, h.Gamepad().Has(core.ButtonUp))

	h.Press(core.ButtonLeft)
	assert.Equal(t, core.Gamepad(core.ButtonUp|core.ButtonLeft), h.Gamepad())

	h.ReleaseAll()
	assert.Equal(t, core.Gamepad(0), h.Gamepad())
}

func TestRendererSize(t *testing.T) {
	fb := core.NewScreen()

	cols, rows := NewRenderer(core.DefaultPalette, 1).Size(fb)
	assert.Equal(t, 160, cols)
	assert.Equal(t, 80, rows)

	cols, rows = NewRenderer(core.DefaultPalette, 2).Size(fb)
	assert.Equal(t, 80, cols)
	assert.Equal(t, 40, rows)

	cols, rows = NewRenderer(core.DefaultPalette, 3).Size(fb)
	assert.Equal(t, 54, cols)
	assert.Equal(t, 27, rows)
}

func TestRendererOutputShape(t *testing.T) {
	fb := core.NewFramebuffer(6, 4)
	fb.SetDrawColors(0x4)
	fb.Rect(0, 0, 3, 4)

	out := NewRenderer(core.DefaultPalette, 1).Render(fb)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 6, lipgloss.Width(line))
		assert.Equal(t, 6, strings.Count(line, "▀"))
	}
}

func TestRendererSampleKeepsDarkest(t *testing.T) {
	fb := core.NewFramebuffer(4, 4)
	fb.Set(1, 1, 3)
	fb.Set(2, 3, 1)

	r := NewRenderer(core.DefaultPalette, 2)
	assert.Equal(t, uint8(3), r.sample(fb, 0, 0))
	assert.Equal(t, uint8(1), r.sample(fb, 1, 1))
	assert.Equal(t, uint8(0), r.sample(fb, 1, 0))
}

func TestRendererCachesStyles(t *testing.T) {
	r := NewRenderer(core.DefaultPalette, 1)
	r.style(3, 0)
	r.style(3, 0)
	r.style(0, 3)
	assert.Equal(t, 2, r.styles.Len())
}

func newTestModel(t *testing.T) (Model, *Host) {
	t.Helper()
	host := NewHost(2)
	c := cart.New(host)
	m := NewModel(c, host, core.DefaultConfig(), Options{
		Keys:  NewKeyMap(config.DefaultConfig().Input.Keys),
		Scale: 1,
	})
	return m, host
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModelTickRunsFrame(t *testing.T) {
	m, host := newTestModel(t)

	m, cmd := step(t, m, TickMsg(time.Now()))
	assert.NotNil(t, cmd, "tick should schedule the next tick")
	assert.Equal(t, uint64(1), m.cart.Snapshot().Frame)

	// Frame was drawn: border in palette entry 3
	assert.Equal(t, uint8(3), host.Get(0, 0))
}

func TestModelKeyMovesPaddle(t *testing.T) {
	m, _ := newTestModel(t)
	before := m.cart.Snapshot().PaddleX

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = step(t, m, TickMsg(time.Now()))
	m, _ = step(t, m, TickMsg(time.Now()))
	m, _ = step(t, m, TickMsg(time.Now()))

	// Held for two frames, released on the third
	assert.Equal(t, before+2, m.cart.Snapshot().PaddleX)
}

func TestModelPause(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = step(t, m, runeKey('p'))
	assert.True(t, m.paused)

	m, _ = step(t, m, TickMsg(time.Now()))
	assert.Equal(t, uint64(0), m.cart.Snapshot().Frame, "paused model should not run frames")
	assert.Contains(t, m.View(), "PAUSED")

	m, _ = step(t, m, runeKey('p'))
	m, _ = step(t, m, TickMsg(time.Now()))
	assert.Equal(t, uint64(1), m.cart.Snapshot().Frame)
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := step(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelTooSmall(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Contains(t, m.View(), "Terminal too small")

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 200, Height: 90})
	assert.NotContains(t, m.View(), "Terminal too small")
}
