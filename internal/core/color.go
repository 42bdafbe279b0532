package core

import (
	"fmt"
	"strconv"
)

// DrawColors is the console's draw colour register.
// Each 4-bit slot selects a palette entry: 0 is transparent, n is entry n-1.
// Slot 1 (bits 0-3) fills shapes, slot 2 (bits 4-7) outlines them.
type DrawColors uint16

// Slot returns the raw value of a 1-based draw colour slot.
func (d DrawColors) Slot(n int) uint8 {
	if n < 1 || n > 4 {
		return 0
	}
	return uint8(d>>(4*(n-1))) & 0x0f //#nosec G115 -- masked to 4 bits
}

// Fill returns the fill slot value.
func (d DrawColors) Fill() uint8 {
	return d.Slot(1)
}

// Outline returns the outline slot value.
func (d DrawColors) Outline() uint8 {
	return d.Slot(2)
}

// String formats the register the way cartridges write it, e.g. 0x32.
func (d DrawColors) String() string {
	return fmt.Sprintf("0x%x", uint16(d))
}

// Color is a 24-bit RGB colour (0xRRGGBB).
type Color uint32

// RGB splits the colour into its channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c) //#nosec G115 -- byte extraction
}

// Hex returns the colour as a #rrggbb string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// PaletteSize is the number of colours the console can show at once.
const PaletteSize = 4

// Palette maps palette indices 0-3 to real colours.
type Palette [PaletteSize]Color

// DefaultPalette is the console's power-on palette.
var DefaultPalette = Palette{0xe0f8cf, 0x86c06c, 0x306850, 0x071821}

// ParseColor parses "#rrggbb", "rrggbb" or "0xrrggbb".
func ParseColor(s string) (Color, error) {
	orig := s
	switch {
	case len(s) == 7 && s[0] == '#':
		s = s[1:]
	case len(s) == 8 && (s[:2] == "0x" || s[:2] == "0X"):
		s = s[2:]
	}
	if len(s) != 6 {
		return 0, fmt.Errorf("invalid colour %q", orig)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid colour %q: %w", orig, err)
	}
	return Color(v), nil
}
