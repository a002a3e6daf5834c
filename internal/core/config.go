package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW int    // Screen width in characters
	ScreenH int    // Screen height in characters
	Seed    int64  // RNG seed for deterministic gameplay
	Player  string // Name recorded with saved scores
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 84,
		ScreenH: 28,
		Seed:    0, // 0 means use current time in platform layer
		Player:  "player",
	}
}

// GameState is the summary the platform needs after every tick.
type GameState struct {
	Score    int
	Level    int
	Length   int
	GameOver bool
	Paused   bool
}

// StepResult is returned by a simulation tick.
// Cues holds at most one entry per cue kind, in the order they fired.
type StepResult struct {
	State GameState
	Cues  []Cue
}
