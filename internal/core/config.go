package core

// Console dimensions in pixels.
const (
	ScreenSize = 160
)

// RuntimeConfig contains the settings a host runs the cartridge with.
type RuntimeConfig struct {
	TickRate int     // Frames per second (default 60)
	Palette  Palette // Colours for palette indices 0-3
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Palette:  DefaultPalette,
	}
}

// StepResult is returned by the cartridge after each frame.
type StepResult struct {
	Frame    uint64 // Frame number, starting at 1
	Exploded []int  // Storage indices of bricks destroyed this frame
}
