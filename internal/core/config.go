package core

import "time"

// DefaultTickInterval is the gravity interval used when nothing overrides it.
const DefaultTickInterval = 333 * time.Millisecond

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Base gravity interval
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: DefaultTickInterval,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score       int  // Current score
	TetrisCount int  // Number of four-row clears
	Running     bool // Whether the gravity timer should be armed
	Paused      bool // Whether the game is paused
	GameOver    bool // Whether the game has ended
}

// StepResult is returned by Game.Step() and Game.Handle().
type StepResult struct {
	State GameState
	// Changed reports whether the visible state was mutated.
	Changed bool
}
