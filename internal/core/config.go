package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to size its viewport and seed its RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the coarse status the platform needs between ticks.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Remaining lives
	Level    int    // Current level (1-based)
	Phase    string // Name of the current state machine phase
	GameOver bool   // Whether the session has ended (lost or won)
	Paused   bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event // Sound-worthy events raised during the tick, in order
}
