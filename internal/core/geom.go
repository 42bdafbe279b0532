// Package core provides fundamental types for the tinybreak console.
// It contains no external dependencies (especially no Bubble Tea) to keep
// cartridge logic pure and testable.
package core

// Orientation tells which face of a rectangle a collision struck,
// and therefore which velocity axis to reflect.
type Orientation int

const (
	// Vertical means a left or right face was hit (reflect horizontal motion).
	Vertical Orientation = iota
	// Horizontal means a top or bottom face was hit (reflect vertical motion).
	Horizontal
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// edgeMargin shrinks the right edges when classifying a collision.
const edgeMargin = 2

// Rect represents an axis-aligned bounding box with a draw colour selector.
type Rect struct {
	X, Y   int32      // Top-left corner position
	W, H   uint32     // Width and height
	Colors DrawColors // Draw colours set before rendering
}

// NewRect creates a new rectangle with the given position, size and colours.
func NewRect(x, y int32, w, h uint32, colors DrawColors) Rect {
	return Rect{X: x, Y: y, W: w, H: h, Colors: colors}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int32 {
	return r.X + int32(r.W) //#nosec G115 -- sizes are tiny
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int32 {
	return r.Y + int32(r.H) //#nosec G115 -- sizes are tiny
}

// Shift translates the rectangle. There is no bounds checking.
func (r *Rect) Shift(dx, dy int32) {
	r.X += dx
	r.Y += dy
}

// Collides returns true if this rectangle overlaps another on both axes.
// Rectangles that only share an edge do not collide.
func (r Rect) Collides(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Collision classifies an overlap with other. The boolean is false when the
// rectangles do not collide. A hit is Vertical when either right edge, pulled
// in by a 2-unit margin, still lies left of the opposite left edge; every
// other overlap is Horizontal. Corner hits can be misclassified.
func (r Rect) Collision(other Rect) (Orientation, bool) {
	if !r.Collides(other) {
		return 0, false
	}
	if r.Right()-edgeMargin < other.X || other.Right()-edgeMargin < r.X {
		return Vertical, true
	}
	return Horizontal, true
}

// Render selects the rectangle's colours and draws it on the surface.
func (r Rect) Render(s Surface) {
	s.SetDrawColors(r.Colors)
	s.Rect(r.X, r.Y, r.W, r.H)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
