package core

import "strings"

// Button is a single bit of the gamepad register.
type Button uint8

// Gamepad bits, laid out like the console's GAMEPAD1 register.
const (
	Button1     Button = 1
	Button2     Button = 2
	ButtonLeft  Button = 16
	ButtonRight Button = 32
	ButtonUp    Button = 64
	ButtonDown  Button = 128
)

// Buttons lists every button in register order.
var Buttons = []Button{Button1, Button2, ButtonLeft, ButtonRight, ButtonUp, ButtonDown}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case Button1:
		return "x"
	case Button2:
		return "z"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseButton returns the button with the given name.
func ParseButton(name string) (Button, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, b := range Buttons {
		if b.String() == name {
			return b, true
		}
	}
	switch name {
	case "1", "button1":
		return Button1, true
	case "2", "button2":
		return Button2, true
	}
	return 0, false
}

// Gamepad is the input bitmask polled once per frame.
// There is no edge detection: a held button is set on every frame.
type Gamepad uint8

// Has returns true if the button is pressed.
func (g Gamepad) Has(b Button) bool {
	return uint8(g)&uint8(b) != 0
}

// With returns the gamepad state with the button pressed.
func (g Gamepad) With(b Button) Gamepad {
	return g | Gamepad(b)
}

// Without returns the gamepad state with the button released.
func (g Gamepad) Without(b Button) Gamepad {
	return g &^ Gamepad(b)
}

// String lists the pressed buttons, e.g. "right+up".
func (g Gamepad) String() string {
	var names []string
	for _, b := range Buttons {
		if g.Has(b) {
			names = append(names, b.String())
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}
