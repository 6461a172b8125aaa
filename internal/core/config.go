package core

// DefaultCellAspect is the width/height ratio of a terminal character cell.
// Most monospace fonts draw cells about twice as tall as they are wide.
const DefaultCellAspect = 0.5

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW    int     // Screen width in characters
	ScreenH    int     // Screen height in characters
	TickRate   int     // Frames per second requested from the platform
	Seed       int64   // RNG seed (0 means time-based)
	CellAspect float64 // Width/height of one character cell
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0,
		CellAspect: DefaultCellAspect,
	}
}

// AspectRatio returns the viewport width/height in physical units.
// Returns 1 for an empty screen so callers never divide by zero.
func (c RuntimeConfig) AspectRatio() float32 {
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		return 1
	}
	cell := c.CellAspect
	if cell <= 0 {
		cell = DefaultCellAspect
	}
	return float32(float64(c.ScreenW) * cell / float64(c.ScreenH))
}

// GameState represents the current state of the game.
type GameState struct {
	Score   int  // Whole seconds survived
	Paused  bool // Whether the game is paused
	Crashed bool // Whether the pause was caused by a gate collision
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
