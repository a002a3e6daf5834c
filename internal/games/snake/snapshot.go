package snake

import "slices"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateChomping GameStateType = "chomping"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// HazardView is a live hazard as seen by the renderer.
type HazardView struct {
	Pos      Point
	Phase    Phase
	Progress float64 // Fraction of the current phase elapsed
}

// Snapshot captures the game state for rendering and determinism testing.
// It shares no memory with the game.
type Snapshot struct {
	Tick  uint64
	State GameStateType
	Rows  int
	Cols  int

	Snake   []Point // Head at index 0
	Dir     Direction
	Food    Point
	HasFood bool

	Hazards      []HazardView
	PendingSeeds int
	Dropping     bool // Seeds are still being dropped after a meal

	Score  int
	Level  int
	Length int

	ChompFrames  int
	ChompElapsed int // Frames of the current chomp already shown

	LevelFlash    int
	RewardFlash   int
	Texts         []FloatingText
	Explosions    []Explosion
	IdleTicks     int
	IdleThreshold int
	PendingGrowth int
}

// Head returns the head cell.
func (s Snapshot) Head() Point {
	if len(s.Snake) == 0 {
		return Point{}
	}
	return s.Snake[0]
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.chomping:
		state = StateChomping
	}

	now := g.now()
	live := g.hazards.Live()
	hazards := make([]HazardView, len(live))
	for i, h := range live {
		hazards[i] = HazardView{Pos: h.Pos, Phase: h.Phase, Progress: g.hazards.Progress(h, now)}
	}

	elapsed := 0
	if g.chomping {
		elapsed = g.cfg.Food.ChompFrames - g.chompLeft
	}

	return Snapshot{
		Tick:          g.tick,
		State:         state,
		Rows:          g.grid.Rows,
		Cols:          g.grid.Cols,
		Snake:         slices.Clone(g.snake),
		Dir:           g.direction,
		Food:          g.food,
		HasFood:       g.hasFood,
		Hazards:       hazards,
		PendingSeeds:  len(g.hazards.Seeds()),
		Dropping:      g.dropRemaining > 0,
		Score:         g.score,
		Level:         g.level,
		Length:        len(g.snake),
		ChompFrames:   g.cfg.Food.ChompFrames,
		ChompElapsed:  elapsed,
		LevelFlash:    g.levelFlash,
		RewardFlash:   g.rewardFlash,
		Texts:         slices.Clone(g.texts),
		Explosions:    slices.Clone(g.explosions),
		IdleTicks:     g.idleTicks,
		IdleThreshold: g.idleThreshold,
		PendingGrowth: g.pendingGrowth,
	}
}
