package core

import "testing"

func TestGamepadBits(t *testing.T) {
	var g Gamepad
	if g.Has(ButtonRight) {
		t.Error("Empty gamepad should have no buttons")
	}

	g = g.With(ButtonRight).With(ButtonUp)
	if !g.Has(ButtonRight) || !g.Has(ButtonUp) {
		t.Error("With() should press buttons")
	}
	if g.Has(ButtonLeft) {
		t.Error("Left should not be pressed")
	}
	if uint8(g) != 32|64 {
		t.Errorf("Expected register value 96, got %d", uint8(g))
	}

	g = g.Without(ButtonRight)
	if g.Has(ButtonRight) {
		t.Error("Without() should release the button")
	}
}

func TestGamepadString(t *testing.T) {
	tests := []struct {
		pad      Gamepad
		expected string
	}{
		{0, "none"},
		{Gamepad(ButtonLeft), "left"},
		{Gamepad(ButtonRight | ButtonDown), "right+down"},
		{Gamepad(Button1 | Button2), "x+z"},
	}

	for _, tc := range tests {
		if got := tc.pad.String(); got != tc.expected {
			t.Errorf("Gamepad(%d).String() = %q, expected %q", tc.pad, got, tc.expected)
		}
	}
}

func TestParseButton(t *testing.T) {
	for _, b := range Buttons {
		got, ok := ParseButton(b.String())
		if !ok || got != b {
			t.Errorf("ParseButton(%q) = %v, %v", b.String(), got, ok)
		}
	}

	if got, ok := ParseButton(" Right "); !ok || got != ButtonRight {
		t.Errorf("ParseButton should ignore case and spaces, got %v, %v", got, ok)
	}
	if _, ok := ParseButton("select"); ok {
		t.Error("Unknown button should not parse")
	}
}
