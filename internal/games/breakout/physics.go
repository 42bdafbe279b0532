package breakout

import "github.com/vovakirdan/tinybreak/internal/core"

// Ball is the bouncing ball. Each velocity component is +1 or -1.
type Ball struct {
	Model  core.Rect
	DX, DY int32 // Velocity per frame
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.Model.Shift(b.DX, b.DY)
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Reflect reverses the velocity component matching the face that was hit.
func (b *Ball) Reflect(o core.Orientation) {
	switch o {
	case core.Vertical:
		b.BounceX()
	case core.Horizontal:
		b.BounceY()
	}
}

// Wall is one side of the play-field border. Walls never move.
type Wall struct {
	Model       core.Rect
	Orientation core.Orientation // Axis the wall constrains
}

// Paddle is the player-controlled block.
type Paddle struct {
	Model core.Rect
}

// Shift moves the paddle. Nothing stops it from passing through walls.
func (p *Paddle) Shift(dx, dy int32) {
	p.Model.Shift(dx, dy)
}

// Brick grid geometry
const (
	brickCell   = 4 + 1 // Grid pitch on both axes
	brickOffset = 2     // Margin from the field origin
	brickLong   = 8 + 1 // Long side of a brick
	brickShort  = 4     // Short side of a brick
)

// Graveyard is where exploded bricks are parked, outside the field.
const Graveyard int32 = -32

// Brick is a destructible block. Exploded bricks keep their slot but are
// moved off-field, so they can never be hit again.
type Brick struct {
	Model core.Rect
}

// NewBrick creates a wide brick in grid cell (col, row).
func NewBrick(col, row int32) Brick {
	return Brick{Model: core.NewRect(
		col*brickCell+brickOffset,
		row*brickCell+brickOffset,
		brickLong, brickShort,
		ColorsSprite,
	)}
}

// NewRotatedBrick creates a tall brick in grid cell (col, row).
func NewRotatedBrick(col, row int32) Brick {
	return Brick{Model: core.NewRect(
		col*brickCell+brickOffset,
		row*brickCell+brickOffset,
		brickShort, brickLong,
		ColorsSprite,
	)}
}

// Explode moves the brick to the graveyard. Calling it twice is harmless.
func (b *Brick) Explode() {
	b.Model.X = Graveyard
	b.Model.Y = Graveyard
}

// Alive returns true while the brick is still in the field.
func (b Brick) Alive() bool {
	return b.Model.X != Graveyard || b.Model.Y != Graveyard
}
