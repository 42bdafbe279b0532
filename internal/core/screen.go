package core

import (
	"strings"
)

// Surface is the drawing half of the console the cartridge calls into.
// Drawing follows a two-call protocol: set the colour register, then draw.
type Surface interface {
	SetDrawColors(c DrawColors)
	Rect(x, y int32, w, h uint32)
}

// Framebuffer is a palette-indexed pixel buffer implementing Surface.
// It decouples cartridge rendering from the display, so hosts can show the
// same pixels in a terminal, a window or plain text.
type Framebuffer struct {
	width      int
	height     int
	pixels     []uint8 // Palette indices 0-3, row-major
	drawColors DrawColors
}

// NewFramebuffer creates a cleared framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]uint8, width*height),
	}
	fb.Clear()
	return fb
}

// NewScreen creates the console's 160x160 framebuffer.
func NewScreen() *Framebuffer {
	return NewFramebuffer(ScreenSize, ScreenSize)
}

// Width returns the framebuffer width in pixels.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the framebuffer height in pixels.
func (fb *Framebuffer) Height() int {
	return fb.height
}

// DrawColors returns the current draw colour register.
func (fb *Framebuffer) DrawColors() DrawColors {
	return fb.drawColors
}

// SetDrawColors sets the draw colour register used by the next draw call.
func (fb *Framebuffer) SetDrawColors(c DrawColors) {
	fb.drawColors = c
}

// Clear fills the whole framebuffer with palette index 0.
func (fb *Framebuffer) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = 0
	}
}

// Set writes a palette index at the given position.
// Out-of-bounds coordinates are silently ignored.
func (fb *Framebuffer) Set(x, y int, index uint8) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.pixels[y*fb.width+x] = index & 0x03
}

// Get returns the palette index at the given position.
// Returns 0 for out-of-bounds coordinates.
func (fb *Framebuffer) Get(x, y int) uint8 {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return 0
	}
	return fb.pixels[y*fb.width+x]
}

// Rect draws a rectangle using the draw colour register.
// The outline slot draws a 1-pixel border; the fill slot paints the inside,
// or the whole rectangle when the outline is transparent.
func (fb *Framebuffer) Rect(x, y int32, w, h uint32) {
	if w == 0 || h == 0 {
		return
	}
	fill := fb.drawColors.Fill()
	outline := fb.drawColors.Outline()

	left, top := int(x), int(y)
	right, bottom := left+int(w), top+int(h) // exclusive

	if outline != 0 {
		idx := (outline - 1) & 0x03
		fb.hLine(left, right, top, idx)
		fb.hLine(left, right, bottom-1, idx)
		fb.vLine(left, top, bottom, idx)
		fb.vLine(right-1, top, bottom, idx)
		left, top = left+1, top+1
		right, bottom = right-1, bottom-1
	}

	if fill == 0 {
		return
	}
	idx := (fill - 1) & 0x03

	// Clip the fill area to the buffer
	x0 := Clamp(left, 0, fb.width)
	x1 := Clamp(right, 0, fb.width)
	y0 := Clamp(top, 0, fb.height)
	y1 := Clamp(bottom, 0, fb.height)
	for py := y0; py < y1; py++ {
		row := fb.pixels[py*fb.width : (py+1)*fb.width]
		for px := x0; px < x1; px++ {
			row[px] = idx
		}
	}
}

// hLine draws pixels [x0, x1) on row y.
func (fb *Framebuffer) hLine(x0, x1, y int, idx uint8) {
	for x := x0; x < x1; x++ {
		fb.Set(x, y, idx)
	}
}

// vLine draws pixels [y0, y1) on column x.
func (fb *Framebuffer) vLine(x, y0, y1 int, idx uint8) {
	for y := y0; y < y1; y++ {
		fb.Set(x, y, idx)
	}
}

// Glyphs used by String, indexed by palette entry (lightest to darkest).
var shadeGlyphs = [PaletteSize]rune{' ', '░', '▒', '█'}

// String converts the framebuffer to text, one rune per pixel.
// Each row is joined with newlines.
func (fb *Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow(fb.width*fb.height*3 + fb.height) // Pre-allocate for efficiency

	for y := 0; y < fb.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(fb.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as text.
func (fb *Framebuffer) Row(y int) string {
	if y < 0 || y >= fb.height {
		return strings.Repeat(" ", fb.width)
	}
	runes := make([]rune, fb.width)
	for x := range runes {
		runes[x] = shadeGlyphs[fb.pixels[y*fb.width+x]]
	}
	return string(runes)
}

// RGBA writes the framebuffer as RGBA bytes into dst using the palette.
// dst must hold at least Width()*Height()*4 bytes.
func (fb *Framebuffer) RGBA(palette Palette, dst []byte) {
	for i, idx := range fb.pixels {
		r, g, b := palette[idx&0x03].RGB()
		o := i * 4
		dst[o] = r
		dst[o+1] = g
		dst[o+2] = b
		dst[o+3] = 0xff
	}
}
