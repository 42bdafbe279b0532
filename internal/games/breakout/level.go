package breakout

import "github.com/vovakirdan/tinybreak/internal/core"

// Draw colour registers used by the cartridge.
const (
	ColorsSprite core.DrawColors = 0x32 // Paddle, ball and bricks
	ColorsWall   core.DrawColors = 0x4  // Field border
)

// Fixed collection sizes
const (
	WallCount  = 4
	BrickCount = 13
)

// Wall storage order
const (
	WallTop = iota
	WallLeft
	WallBottom
	WallRight
)

// Starting positions
const (
	paddleSize  = 14
	paddleStart = core.ScreenSize/2 - paddleSize/2
	ballSize    = 4
	ballStartX  = 80
	ballStartY  = 30
)

// newWalls builds the border around the 160x160 field.
func newWalls() [WallCount]Wall {
	const edge = core.ScreenSize - 1
	return [WallCount]Wall{
		WallTop: {
			Model:       core.NewRect(0, 0, core.ScreenSize, 1, ColorsWall),
			Orientation: core.Horizontal,
		},
		WallLeft: {
			Model:       core.NewRect(0, 0, 1, core.ScreenSize, ColorsWall),
			Orientation: core.Vertical,
		},
		WallBottom: {
			Model:       core.NewRect(0, edge, core.ScreenSize, 1, ColorsWall),
			Orientation: core.Horizontal,
		},
		WallRight: {
			Model:       core.NewRect(edge, 0, 1, core.ScreenSize, ColorsWall),
			Orientation: core.Vertical,
		},
	}
}

// newBricks lays out the initial brick grid, row by row.
func newBricks() [BrickCount]Brick {
	return [BrickCount]Brick{
		NewBrick(0, 0), NewBrick(2, 0), NewBrick(4, 0), NewRotatedBrick(6, 0), NewRotatedBrick(7, 0),
		NewBrick(0, 1), NewBrick(2, 1), NewBrick(4, 1),
		NewRotatedBrick(0, 2), NewRotatedBrick(1, 2), NewBrick(2, 2), NewBrick(4, 2), NewBrick(6, 2),
	}
}

// newPaddle places the paddle in the middle of the field.
func newPaddle() Paddle {
	return Paddle{Model: core.NewRect(paddleStart, paddleStart, paddleSize, paddleSize, ColorsSprite)}
}

// newBall serves the ball towards the bottom right.
func newBall() Ball {
	return Ball{
		Model: core.NewRect(ballStartX, ballStartY, ballSize, ballSize, ColorsSprite),
		DX:    1,
		DY:    1,
	}
}
