package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	fb := NewScreen()

	if fb.Width() != ScreenSize || fb.Height() != ScreenSize {
		t.Errorf("Expected %dx%d, got %dx%d", ScreenSize, ScreenSize, fb.Width(), fb.Height())
	}

	// Should be cleared to palette index 0
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if fb.Get(x, y) != 0 {
				t.Fatalf("Expected 0 at (%d,%d), got %d", x, y, fb.Get(x, y))
			}
		}
	}
}

func TestFramebufferSetGet(t *testing.T) {
	fb := NewFramebuffer(10, 5)

	fb.Set(5, 2, 3)
	if got := fb.Get(5, 2); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}

	// Out of bounds should be ignored
	fb.Set(-1, 0, 3)
	fb.Set(10, 0, 3)
	fb.Set(0, -1, 3)
	fb.Set(0, 5, 3)

	if got := fb.Get(-1, 0); got != 0 {
		t.Errorf("Out-of-bounds Get should return 0, got %d", got)
	}
	if got := fb.Get(100, 100); got != 0 {
		t.Errorf("Out-of-bounds Get should return 0, got %d", got)
	}
}

func TestFramebufferRectFillOnly(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.SetDrawColors(0x4)
	fb.Rect(2, 3, 3, 2)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 3 && y < 5
			want := uint8(0)
			if inside {
				want = 3
			}
			if got := fb.Get(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %d, expected %d", x, y, got, want)
			}
		}
	}
}

func TestFramebufferRectOutline(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.SetDrawColors(0x32) // fill entry 1, outline entry 2
	fb.Rect(1, 1, 4, 4)

	if fb.DrawColors() != 0x32 {
		t.Errorf("Draw colours = %v after Rect, expected 0x32", fb.DrawColors())
	}

	tests := []struct {
		x, y int
		want uint8
	}{
		{1, 1, 2}, // corners
		{4, 1, 2},
		{1, 4, 2},
		{4, 4, 2},
		{2, 1, 2}, // edges
		{1, 3, 2},
		{2, 2, 1}, // interior
		{3, 3, 1},
		{0, 0, 0}, // outside
		{5, 5, 0},
	}

	for _, tc := range tests {
		if got := fb.Get(tc.x, tc.y); got != tc.want {
			t.Errorf("pixel (%d,%d) = %d, expected %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestFramebufferRectTransparent(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.SetDrawColors(0x20) // outline only
	fb.Rect(0, 0, 5, 5)

	if got := fb.Get(2, 2); got != 0 {
		t.Errorf("Transparent fill should leave interior untouched, got %d", got)
	}
	if got := fb.Get(0, 2); got != 1 {
		t.Errorf("Outline should use entry 1, got %d", got)
	}
}

func TestFramebufferRectClipping(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.SetDrawColors(0x2)

	// Entirely off-screen (like an exploded brick) draws nothing
	fb.Rect(-32, -32, 9, 4)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if fb.Get(x, y) != 0 {
				t.Fatalf("Off-screen rect touched pixel (%d,%d)", x, y)
			}
		}
	}

	// Partially visible rect is clipped
	fb.Rect(-2, 8, 4, 4)
	if fb.Get(0, 8) != 1 || fb.Get(1, 9) != 1 {
		t.Error("Visible part of clipped rect should be drawn")
	}
	if fb.Get(2, 8) != 0 {
		t.Error("Rect should end at its right edge")
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetDrawColors(0x4)
	fb.Rect(0, 0, 4, 4)
	fb.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if fb.Get(x, y) != 0 {
				t.Fatalf("Clear() left pixel (%d,%d) = %d", x, y, fb.Get(x, y))
			}
		}
	}
}

func TestFramebufferString(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Set(0, 0, 3)
	fb.Set(2, 1, 1)

	expected := "█  \n  ░"
	if got := fb.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
	if got := fb.Row(5); got != strings.Repeat(" ", 3) {
		t.Errorf("Row() out of range = %q", got)
	}
}

func TestFramebufferRGBA(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Set(1, 0, 3)

	dst := make([]byte, 2*1*4)
	fb.RGBA(DefaultPalette, dst)

	expected := []byte{0xe0, 0xf8, 0xcf, 0xff, 0x07, 0x18, 0x21, 0xff}
	for i := range expected {
		if dst[i] != expected[i] {
			t.Fatalf("byte %d = %#x, expected %#x", i, dst[i], expected[i])
		}
	}
}
