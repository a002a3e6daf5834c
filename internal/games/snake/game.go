// Package snake implements the pooping snake: a toroidal snake game where every
// meal leaves three hazards behind that must be eaten, or at least disarmed,
// before they go off.
package snake

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/poopsnake/internal/config"
	"github.com/vovakirdan/poopsnake/internal/core"
)

// Clock returns the current wall-clock time. Tests inject a fake one.
type Clock func() time.Time

// Option configures a Game.
type Option func(*Game)

// WithClock replaces the wall clock used for hazard timing.
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// FloatingText is a short message drawn near a cell for a few ticks.
type FloatingText struct {
	Text  string
	Pos   Point
	Ticks int
}

// Explosion marks the cell of an expired hazard for a few ticks.
type Explosion struct {
	Pos   Point
	Ticks int
}

// TickReport is the result of one Step.
// The pacing fields are consumed by Pacer after the tick.
type TickReport struct {
	core.StepResult
	LevelUps    int  // Level-ups committed this tick
	GrowthUnits int  // Forced growth (expiry penalty or idle) committed this tick
	GoodEaten   bool // A Good hazard was eaten this tick
	Restarted   bool // The game was reset this tick
}

// Game implements the pooping snake.
type Game struct {
	cfg     config.SnakeConfig
	grid    Grid
	runtime core.RuntimeConfig
	rng     *rand.Rand
	clock   Clock
	tick    uint64

	// Snake state
	snake     []Point   // Head at index 0
	direction Direction // Direction of the last committed move
	nextDir   Direction // Buffered direction for next move
	food      Point
	hasFood   bool

	// Meal and hazard state
	hazards       *HazardField
	activeGroup   GroupID
	dropRemaining int
	pendingGrowth int
	chomping      bool
	chompLeft     int

	score         int
	level         int
	idleTicks     int
	idleThreshold int

	// Cosmetics
	levelFlash  int
	rewardFlash int
	texts       []FloatingText
	explosions  []Explosion

	gameOver    bool
	paused      bool
	pausedAt    time.Time
	pausedTotal time.Duration

	cues []core.Cue
}

// New creates a game from cfg. Call Reset before the first Step.
func New(cfg config.SnakeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		grid:  Grid{Rows: cfg.Grid.Rows, Cols: cfg.Grid.Cols},
		clock: time.Now,
		hazards: NewHazardField(
			cfg.Hazard.GoodWindow(),
			cfg.Hazard.BombWindow(),
			cfg.Hazard.GroupSize,
		),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier used for score records.
func (g *Game) ID() string {
	return "poopsnake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "The Fierce Pooping Snake"
}

// Grid returns the playfield geometry.
func (g *Game) Grid() Grid {
	return g.grid
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.level = 1
	g.idleTicks = 0
	g.idleThreshold = g.cfg.Idle.Threshold(1)
	g.gameOver = false
	g.paused = false
	g.pausedTotal = 0
	g.chomping = false
	g.chompLeft = 0
	g.pendingGrowth = 0
	g.dropRemaining = 0
	g.activeGroup = 0
	g.levelFlash = 0
	g.rewardFlash = 0
	g.texts = nil
	g.explosions = nil
	g.hazards.Reset()

	g.initSnake()
	g.placeFood()
}

// initSnake lays the snake out horizontally in the middle, heading right.
func (g *Game) initSnake() {
	n := max(1, min(g.cfg.Food.StartLength, g.grid.Cols))
	head := Point{Row: g.grid.Rows / 2, Col: g.grid.Cols / 2}
	g.snake = make([]Point, 0, n)
	for i := range n {
		g.snake = append(g.snake, g.grid.Wrap(Point{Row: head.Row, Col: head.Col - i}))
	}
	g.direction = DirRight
	g.nextDir = DirRight
}

// placeFood puts food on a random free cell. Cells holding hazards or seeds
// are avoided while any other free cell exists.
func (g *Game) placeFood() {
	onSnake := make(map[Point]bool, len(g.snake))
	for _, p := range g.snake {
		onSnake[p] = true
	}

	var free, fallback []Point
	for row := range g.grid.Rows {
		for col := range g.grid.Cols {
			p := Point{Row: row, Col: col}
			if onSnake[p] {
				continue
			}
			fallback = append(fallback, p)
			if !g.hazards.Occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		free = fallback
	}
	if len(free) == 0 {
		// Snake fills the grid
		g.hasFood = false
		return
	}
	g.food = free[g.rng.Intn(len(free))]
	g.hasFood = true
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	return slices.Contains(g.snake, p)
}

// now returns the game clock: wall time minus time spent paused.
// It stands still while the game is paused.
func (g *Game) now() time.Time {
	if g.paused {
		return g.pausedAt.Add(-g.pausedTotal)
	}
	return g.clock().Add(-g.pausedTotal)
}

// ChangeDirection buffers a direction for the next move.
// The exact reverse of the last committed move is ignored.
func (g *Game) ChangeDirection(d Direction) {
	if d == g.direction.Opposite() {
		return
	}
	g.nextDir = d
}

// Direction returns the direction of the last committed move.
func (g *Game) Direction() Direction {
	return g.direction
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) TickReport {
	g.cues = g.cues[:0]

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		rc := g.runtime
		rc.Seed = g.rng.Int63()
		g.Reset(rc)
		return TickReport{StepResult: g.result(), Restarted: true}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.togglePause()
	}

	if g.gameOver || g.paused {
		return TickReport{StepResult: g.result()}
	}

	if d, ok := DirectionFromAction(input.Direction); ok {
		g.ChangeDirection(d)
	}

	g.tick++
	var report TickReport
	g.housekeeping()

	if g.chomping {
		g.chompLeft--
		if g.chompLeft <= 0 {
			g.commitMeal(&report)
		}
	} else {
		g.move(&report)
	}

	report.StepResult = g.result()
	return report
}

func (g *Game) togglePause() {
	if g.paused {
		g.pausedTotal += g.clock().Sub(g.pausedAt)
		g.paused = false
		return
	}
	g.pausedAt = g.clock()
	g.paused = true
}

// housekeeping runs the timers that tick regardless of movement.
func (g *Game) housekeeping() {
	now := g.now()
	g.hazards.AdvancePhases(now)

	g.tickCosmetics()

	for _, p := range g.hazards.ExpireOverdue(now) {
		g.pendingGrowth += g.cfg.Hazard.ExpiryGrowth
		g.explosions = append(g.explosions, Explosion{Pos: p.Pos, Ticks: g.cfg.Effects.ExplosionTicks})
		g.say(g.taunt(), p.Pos)
		g.emit(core.CueHazardExpired)
	}

	g.hazards.ActivateSeeds(g.isSnakeAt, now)
	g.idleTicks++
}

func (g *Game) tickCosmetics() {
	if g.levelFlash > 0 {
		g.levelFlash--
	}
	if g.rewardFlash > 0 {
		g.rewardFlash--
	}
	texts := g.texts[:0]
	for _, t := range g.texts {
		if t.Ticks--; t.Ticks > 0 {
			texts = append(texts, t)
		}
	}
	g.texts = texts
	explosions := g.explosions[:0]
	for _, e := range g.explosions {
		if e.Ticks--; e.Ticks > 0 {
			explosions = append(explosions, e)
		}
	}
	g.explosions = explosions
}

// commitMeal finishes a chomp: the head moves into the food cell and grows.
func (g *Game) commitMeal(report *TickReport) {
	g.chomping = false
	g.snake = slices.Insert(g.snake, 0, g.food)

	g.score += g.cfg.Food.Score
	for g.score >= g.level*g.cfg.Food.LevelEvery {
		g.level++
		report.LevelUps++
		g.levelFlash = g.cfg.Effects.LevelFlash
		g.idleThreshold = g.cfg.Idle.Threshold(g.level)
		g.emit(core.CueLevelUp)
	}
	g.emit(core.CueBite)

	// A meal inside the previous drop window cuts that group short.
	if g.dropRemaining > 0 {
		g.hazards.Seal(g.activeGroup)
	}
	g.activeGroup = g.hazards.ScheduleGroup()
	g.dropRemaining = g.cfg.Hazard.GroupSize

	g.idleTicks = 0
	g.placeFood()
}

// move performs an ordinary move.
func (g *Game) move(report *TickReport) {
	if len(g.snake) == 0 {
		return
	}

	dir := g.nextDir
	head := g.grid.NextHead(g.snake[0], dir)

	// Food ahead: stop and chomp
	if g.hasFood && head == g.food {
		g.direction = dir
		g.chomping = true
		g.chompLeft = g.cfg.Food.ChompFrames
		g.emit(core.CueChomp)
		return
	}

	if g.isSnakeAt(head) {
		g.gameOver = true
		g.emit(core.CueGameOver)
		return
	}

	g.direction = dir
	tailBefore := g.snake[len(g.snake)-1]
	g.snake = slices.Insert(g.snake, 0, head)

	if out, ok := g.hazards.ConsumeAt(head); ok {
		g.popTail()
		g.idleTicks = 0
		switch out.Phase {
		case PhaseGood:
			g.shrink(g.cfg.Hazard.Shrink)
			report.GoodEaten = true
			g.rewardFlash = g.cfg.Effects.RewardFlash
			g.say("Yum!", head)
			g.emit(core.CueHazardEaten)
			if out.GroupComplete {
				g.say("Clean sweep!", head)
				g.emit(core.CueGroupComplete)
			}
		case PhaseBomb:
			g.say("Disarmed", head)
			g.emit(core.CueHazardDisarmed)
		}
	} else if g.pendingGrowth > 0 {
		g.pendingGrowth--
		report.GrowthUnits++
	} else if g.idleTicks >= g.idleThreshold {
		report.GrowthUnits++
		g.idleTicks = 0
		g.say("Lazy snake!", head)
	} else {
		g.popTail()
	}

	if g.dropRemaining > 0 {
		g.hazards.Drop(tailBefore, g.activeGroup)
		g.dropRemaining--
		g.emit(core.CueSeedDropped)
		if g.dropRemaining == 0 {
			g.activeGroup = 0
		}
	}
}

func (g *Game) popTail() {
	if len(g.snake) > 1 {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// shrink removes up to n tail segments without going below the minimum length.
func (g *Game) shrink(n int) {
	n = min(n, len(g.snake)-g.cfg.Hazard.MinLength)
	if n > 0 {
		g.snake = g.snake[:len(g.snake)-n]
	}
}

func (g *Game) taunt() string {
	taunts := g.cfg.Effects.Taunts
	if len(taunts) == 0 {
		return "Too slow!"
	}
	return taunts[g.rng.Intn(len(taunts))]
}

func (g *Game) say(text string, at Point) {
	if g.cfg.Effects.TextTicks <= 0 {
		return
	}
	g.texts = append(g.texts, FloatingText{Text: text, Pos: at, Ticks: g.cfg.Effects.TextTicks})
}

// emit records a cue once per tick.
func (g *Game) emit(c core.Cue) {
	if !slices.Contains(g.cues, c) {
		g.cues = append(g.cues, c)
	}
}

func (g *Game) result() core.StepResult {
	var cues []core.Cue
	if len(g.cues) > 0 {
		cues = slices.Clone(g.cues)
	}
	return core.StepResult{State: g.State(), Cues: cues}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Length:   len(g.snake),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
