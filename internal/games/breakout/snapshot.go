package breakout

// Snapshot contains the complete game state for replay checks and dumps.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame   uint64 `yaml:"frame"`
	PaddleX int32  `yaml:"paddle_x"`
	PaddleY int32  `yaml:"paddle_y"`

	BallX  int32 `yaml:"ball_x"`
	BallY  int32 `yaml:"ball_y"`
	BallDX int32 `yaml:"ball_dx"`
	BallDY int32 `yaml:"ball_dy"`

	BricksAlive int `yaml:"bricks_alive"`

	// Brick positions (each brick is 2 ints: X, Y), in storage order
	BrickData []int32 `yaml:"brick_data,flow"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int32, len(g.bricks)*2)
	for i, brick := range g.bricks {
		brickData[i*2] = brick.Model.X
		brickData[i*2+1] = brick.Model.Y
	}

	return Snapshot{
		Frame:       g.frame,
		PaddleX:     g.paddle.Model.X,
		PaddleY:     g.paddle.Model.Y,
		BallX:       g.ball.Model.X,
		BallY:       g.ball.Model.Y,
		BallDX:      g.ball.DX,
		BallDY:      g.ball.DY,
		BricksAlive: g.BricksAlive(),
		BrickData:   brickData,
	}
}

// ApplySnapshot restores game state from a snapshot.
// Brick data of the wrong length is ignored.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.frame = snap.Frame
	g.paddle.Model.X = snap.PaddleX
	g.paddle.Model.Y = snap.PaddleY
	g.ball.Model.X = snap.BallX
	g.ball.Model.Y = snap.BallY
	g.ball.DX = snap.BallDX
	g.ball.DY = snap.BallDY

	if len(snap.BrickData) == len(g.bricks)*2 {
		for i := range g.bricks {
			g.bricks[i].Model.X = snap.BrickData[i*2]
			g.bricks[i].Model.Y = snap.BrickData[i*2+1]
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.PaddleX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksAlive) //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
