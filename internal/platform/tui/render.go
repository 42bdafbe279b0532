package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tinybreak/internal/core"
)

// halfBlock shows two stacked pixels: the foreground is the top pixel and
// the background the bottom one.
const halfBlock = '▀'

// Renderer converts a Framebuffer to a styled string for display.
type Renderer struct {
	palette core.Palette
	scale   int
	styles  *intmap.Map[uint16, lipgloss.Style] // Keyed by top<<8 | bottom
}

// NewRenderer creates a renderer. A scale above 1 shrinks the picture,
// keeping the darkest pixel of each scale x scale block.
func NewRenderer(palette core.Palette, scale int) *Renderer {
	if scale < 1 {
		scale = 1
	}
	return &Renderer{
		palette: palette,
		scale:   scale,
		styles:  intmap.New[uint16, lipgloss.Style](core.PaletteSize * core.PaletteSize),
	}
}

// Size returns the terminal cells needed for a framebuffer.
func (r *Renderer) Size(fb *core.Framebuffer) (cols, rows int) {
	w := (fb.Width() + r.scale - 1) / r.scale
	h := (fb.Height() + r.scale - 1) / r.scale
	return w, (h + 1) / 2
}

// style returns the cached style for a pixel pair.
func (r *Renderer) style(top, bottom uint8) lipgloss.Style {
	k := uint16(top)<<8 | uint16(bottom)
	if s, ok := r.styles.Get(k); ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(r.palette[top&0x03].Hex())).
		Background(lipgloss.Color(r.palette[bottom&0x03].Hex()))
	r.styles.Put(k, s)
	return s
}

// sample returns the darkest palette index in the block at (x, y).
func (r *Renderer) sample(fb *core.Framebuffer, x, y int) uint8 {
	var idx uint8
	for dy := 0; dy < r.scale; dy++ {
		for dx := 0; dx < r.scale; dx++ {
			if v := fb.Get(x*r.scale+dx, y*r.scale+dy); v > idx {
				idx = v
			}
		}
	}
	return idx
}

// Render draws the framebuffer as rows of half-block glyphs.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (r *Renderer) Render(fb *core.Framebuffer) string {
	cols, rows := r.Size(fb)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(cols*rows*4 + rows)

	for row := range rows {
		if row > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < cols {
			top, bottom := r.sample(fb, x, row*2), r.sample(fb, x, row*2+1)

			// Collect consecutive cells with the same colours
			n := 0
			for x < cols && r.sample(fb, x, row*2) == top && r.sample(fb, x, row*2+1) == bottom {
				n++
				x++
			}

			sb.WriteString(r.style(top, bottom).Render(strings.Repeat(string(halfBlock), n)))
		}
	}
	return sb.String()
}
