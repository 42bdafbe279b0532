package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tinybreak/internal/config"
	"github.com/vovakirdan/tinybreak/internal/core"
)

// KeyMap translates Bubble Tea key messages to gamepad buttons and host
// commands. This centralizes key bindings and makes them testable.
type KeyMap struct {
	Buttons map[core.Button]key.Binding

	Pause key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(keys config.KeyConfig) KeyMap {
	km := KeyMap{
		Buttons: make(map[core.Button]key.Binding, len(core.Buttons)),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	for _, b := range core.Buttons {
		bound := keys.ForButton(b)
		km.Buttons[b] = key.NewBinding(
			key.WithKeys(bound...),
			key.WithHelp(helpKeys(bound), b.String()),
		)
	}
	return km
}

// helpKeys formats a key list for the help footer.
func helpKeys(keys []string) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		switch k {
		case " ":
			names = append(names, "space")
		case "left":
			names = append(names, "←")
		case "right":
			names = append(names, "→")
		case "up":
			names = append(names, "↑")
		case "down":
			names = append(names, "↓")
		default:
			names = append(names, k)
		}
	}
	return strings.Join(names, "/")
}

// MapKey returns the gamepad button bound to a key, if any.
func (km KeyMap) MapKey(msg tea.KeyMsg) (core.Button, bool) {
	// Iterate in register order so overlapping bindings resolve predictably
	for _, b := range core.Buttons {
		if binding, ok := km.Buttons[b]; ok && key.Matches(msg, binding) {
			return b, true
		}
	}
	return 0, false
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.Buttons[core.ButtonLeft],
		km.Buttons[core.ButtonRight],
		km.Pause,
		km.Help,
		km.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.Buttons[core.ButtonLeft],
			km.Buttons[core.ButtonRight],
			km.Buttons[core.ButtonUp],
			km.Buttons[core.ButtonDown],
		},
		{
			km.Buttons[core.Button1],
			km.Buttons[core.Button2],
		},
		{
			km.Pause,
			km.Help,
			km.Quit,
		},
	}
}
