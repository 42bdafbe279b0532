// Package breakout implements the tinybreak cartridge: a paddle, a ball,
// a walled 160x160 field and a fixed grid of bricks.
//
// The game has no score, no lives and no end. The ball bounces forever;
// bricks it touches explode.
package breakout

import "github.com/vovakirdan/tinybreak/internal/core"

// Title is the display name of the cartridge.
const Title = "tinybreak"

// Game is the root aggregate holding every entity on the field.
// Collections have fixed size for the lifetime of the game.
type Game struct {
	paddle Paddle
	ball   Ball
	walls  [WallCount]Wall
	bricks [BrickCount]Brick

	frame uint64
}

// New creates a game with the initial layout.
func New() *Game {
	return &Game{
		paddle: newPaddle(),
		ball:   newBall(),
		walls:  newWalls(),
		bricks: newBricks(),
	}
}

// Paddle returns the paddle for input handling.
func (g *Game) Paddle() *Paddle {
	return &g.paddle
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Brick returns a copy of the brick in slot i.
func (g *Game) Brick(i int) Brick {
	return g.bricks[i]
}

// Wall returns a copy of the wall in slot i.
func (g *Game) Wall(i int) Wall {
	return g.walls[i]
}

// Frame returns the number of updates run so far.
func (g *Game) Frame() uint64 {
	return g.frame
}

// BricksAlive counts bricks still on the field.
func (g *Game) BricksAlive() int {
	n := 0
	for i := range g.bricks {
		if g.bricks[i].Alive() {
			n++
		}
	}
	return n
}

// Update advances the simulation by one frame.
// Collisions are resolved against the ball's current position, in order:
// walls, paddle, bricks. The ball moves last.
func (g *Game) Update() core.StepResult {
	g.frame++
	result := core.StepResult{Frame: g.frame}

	// Walls reflect independently, so a corner flips both axes
	for i := range g.walls {
		if g.ball.Model.Collides(g.walls[i].Model) {
			g.ball.Reflect(g.walls[i].Orientation)
		}
	}

	if o, hit := g.ball.Model.Collision(g.paddle.Model); hit {
		g.ball.Reflect(o)
	}

	for i := range g.bricks {
		brick := &g.bricks[i]
		o, hit := g.ball.Model.Collision(brick.Model)
		if !hit {
			continue
		}
		brick.Explode()
		g.ball.Reflect(o)
		result.Exploded = append(result.Exploded, i)
	}

	g.ball.Move()

	return result
}

// Render draws the field: walls, bricks, paddle, then the ball.
// Exploded bricks are drawn too, off-screen.
func (g *Game) Render(dst core.Surface) {
	for i := range g.walls {
		g.walls[i].Model.Render(dst)
	}
	for i := range g.bricks {
		g.bricks[i].Model.Render(dst)
	}
	g.paddle.Model.Render(dst)
	g.ball.Model.Render(dst)
}
