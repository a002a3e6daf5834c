package snake

import (
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/poopsnake/internal/config"
	"github.com/vovakirdan/poopsnake/internal/core"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestGame(t *testing.T) (*Game, *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: t0}
	g := New(config.DefaultSnakeConfig(), WithClock(clk.Now))
	g.Reset(core.RuntimeConfig{Seed: 42, ScreenW: 84, ScreenH: 28})
	// Keep food out of the way unless a test places it.
	g.food = Point{0, 0}
	return g, clk
}

// layout replaces the snake with a horizontal body heading right, head at head.
func layout(g *Game, head Point, length int) {
	g.snake = g.snake[:0]
	for i := range length {
		g.snake = append(g.snake, g.grid.Wrap(Point{Row: head.Row, Col: head.Col - i}))
	}
	g.direction = DirRight
	g.nextDir = DirRight
}

// plant puts live Good hazards of one group at cells.
func plant(g *Game, clk *fakeClock, cells ...Point) GroupID {
	id := g.hazards.ScheduleGroup()
	for _, c := range cells {
		g.hazards.Drop(c, id)
	}
	g.hazards.Seal(id)
	g.hazards.ActivateSeeds(never, clk.Now())
	return id
}

// bombAge is a hazard age halfway through the Bomb window.
func bombAge(g *Game) time.Duration {
	return g.cfg.Hazard.GoodWindow() + g.cfg.Hazard.BombWindow()/2
}

// expiredAge is the first whole millisecond past the Bomb window.
func expiredAge(g *Game) time.Duration {
	return g.cfg.Hazard.GoodWindow() + g.cfg.Hazard.BombWindow() + time.Millisecond
}

func step(g *Game) TickReport {
	return g.Step(core.NewInputFrame())
}

func press(g *Game, a core.Action) TickReport {
	in := core.NewInputFrame()
	in.Set(a)
	return g.Step(in)
}

func countCue(r TickReport, c core.Cue) int {
	n := 0
	for _, got := range r.Cues {
		if got == c {
			n++
		}
	}
	return n
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should produce identical snapshots
	run := func() Snapshot {
		clk := &fakeClock{now: t0}
		g := New(config.DefaultSnakeConfig(), WithClock(clk.Now))
		g.Reset(core.RuntimeConfig{Seed: 12345, ScreenW: 84, ScreenH: 28})
		turns := map[int]core.Action{
			20: core.ActionDown, 40: core.ActionLeft, 90: core.ActionUp,
			150: core.ActionRight, 260: core.ActionDown,
		}
		for i := range 400 {
			clk.Advance(100 * time.Millisecond)
			in := core.NewInputFrame()
			if a, ok := turns[i]; ok {
				in.Set(a)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestInitialState(t *testing.T) {
	clk := &fakeClock{now: t0}
	g := New(config.DefaultSnakeConfig(), WithClock(clk.Now))
	g.Reset(core.RuntimeConfig{Seed: 7})

	s := g.Snapshot()
	if s.Length != 3 || s.Level != 1 || s.Score != 0 {
		t.Errorf("initial length/level/score = %d/%d/%d, expected 3/1/0", s.Length, s.Level, s.Score)
	}
	if s.Dir != DirRight {
		t.Errorf("initial direction = %v, expected right", s.Dir)
	}
	if !s.HasFood || slices.Contains(s.Snake, s.Food) {
		t.Errorf("food %v invalid (on snake or missing)", s.Food)
	}
	if s.IdleThreshold != 120 {
		t.Errorf("IdleThreshold = %d, expected 120", s.IdleThreshold)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g, _ := newTestGame(t)
	layout(g, Point{10, 40}, 3)

	// Try to go left (opposite) - should be ignored
	press(g, core.ActionLeft)
	if g.direction != DirRight {
		t.Errorf("direction = %v after reverse request, expected right", g.direction)
	}
	if head := g.snake[0]; head != (Point{10, 41}) {
		t.Errorf("head = %v, expected {10 41}", head)
	}

	// Buffered turn then reverse of the committed move: reverse is dropped
	g.ChangeDirection(DirUp)
	g.ChangeDirection(DirLeft)
	if g.nextDir != DirUp {
		t.Errorf("nextDir = %v, expected up", g.nextDir)
	}
	step(g)
	if head := g.snake[0]; head != (Point{9, 41}) {
		t.Errorf("head = %v, expected {9 41}", head)
	}

	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		g.direction, g.nextDir = d, d
		g.ChangeDirection(d.Opposite())
		if g.nextDir != d {
			t.Errorf("reverse of %v accepted", d)
		}
	}
}

func TestWrapAroundEdge(t *testing.T) {
	g, _ := newTestGame(t)
	layout(g, Point{10, 79}, 3)
	step(g)
	if head := g.snake[0]; head != (Point{10, 0}) {
		t.Errorf("head = %v, expected {10 0}", head)
	}
	if g.gameOver {
		t.Error("wrapping should not end the game")
	}
}

func TestSelfCollisionIsSticky(t *testing.T) {
	g, _ := newTestGame(t)
	g.snake = []Point{{5, 5}, {5, 4}, {6, 4}, {6, 5}, {6, 6}}
	g.direction, g.nextDir = DirRight, DirDown

	r := step(g)
	if !r.State.GameOver {
		t.Fatal("expected game over after running into the body")
	}
	if countCue(r, core.CueGameOver) != 1 {
		t.Errorf("cues = %v, expected game-over", r.Cues)
	}

	before := g.Snapshot()
	for range 5 {
		r = press(g, core.ActionUp)
		if len(r.Cues) != 0 {
			t.Errorf("cues after game over: %v", r.Cues)
		}
	}
	after := g.Snapshot()
	if !reflect.DeepEqual(before.Snake, after.Snake) || after.Tick != before.Tick {
		t.Error("snake moved after game over")
	}
	if after.State != StateGameOver {
		t.Errorf("state = %v, expected game_over", after.State)
	}
}

func TestFoodChompScenario(t *testing.T) {
	g, _ := newTestGame(t)
	layout(g, Point{5, 4}, 3)
	g.food = Point{5, 5}
	frames := g.cfg.Food.ChompFrames

	r := step(g)
	if g.Snapshot().State != StateChomping {
		t.Fatal("expected chomp to start")
	}
	if countCue(r, core.CueChomp) != 1 {
		t.Errorf("cues = %v, expected chomp", r.Cues)
	}
	if g.snake[0] != (Point{5, 4}) {
		t.Errorf("head moved during chomp start: %v", g.snake[0])
	}

	for i := 1; i < frames; i++ {
		step(g)
		if g.snake[0] != (Point{5, 4}) {
			t.Fatalf("head moved on chomp frame %d", i)
		}
	}

	r = step(g)
	if g.snake[0] != (Point{5, 5}) {
		t.Errorf("head = %v after %d frames, expected {5 5}", g.snake[0], frames)
	}
	if r.State.Score != 10 {
		t.Errorf("score = %d, expected 10", r.State.Score)
	}
	if r.State.Length != 4 {
		t.Errorf("length = %d, expected 4", r.State.Length)
	}
	if countCue(r, core.CueBite) != 1 {
		t.Errorf("cues = %v, expected bite", r.Cues)
	}
	if g.food == (Point{5, 5}) || g.isSnakeAt(g.food) {
		t.Errorf("new food %v is on the snake", g.food)
	}
	if g.dropRemaining != 3 || g.activeGroup == 0 {
		t.Errorf("dropRemaining=%d activeGroup=%d, expected 3 and a group", g.dropRemaining, g.activeGroup)
	}
}

func TestSeedsDropAtVacatedTail(t *testing.T) {
	g, _ := newTestGame(t)
	layout(g, Point{5, 4}, 3)
	g.food = Point{5, 5}
	for range g.cfg.Food.ChompFrames + 1 {
		step(g)
	}
	g.food = Point{0, 0}
	// Snake is now (5,5) (5,4) (5,3) (5,2)

	var dropped []Point
	for i := range 3 {
		tail := g.snake[len(g.snake)-1]
		r := step(g)
		if countCue(r, core.CueSeedDropped) != 1 {
			t.Errorf("move %d: cues = %v, expected seed-dropped", i, r.Cues)
		}
		dropped = append(dropped, tail)
	}
	expected := []Point{{5, 2}, {5, 3}, {5, 4}}
	if !reflect.DeepEqual(dropped, expected) {
		t.Errorf("dropped at %v, expected %v", dropped, expected)
	}
	if g.activeGroup != 0 || g.dropRemaining != 0 {
		t.Error("drop window still open after 3 seeds")
	}

	// One more tick uncovers the last seed.
	r := step(g)
	if countCue(r, core.CueSeedDropped) != 0 {
		t.Errorf("fourth move dropped a seed")
	}
	live := g.hazards.Live()
	if len(live) != 3 {
		t.Fatalf("live hazards = %d, expected 3", len(live))
	}
	for i, h := range live {
		if h.Pos != expected[i] || h.Phase != PhaseGood {
			t.Errorf("hazard %d = %+v, expected good at %v", i, h, expected[i])
		}
	}
}

func TestGoodHazardShrinkFloor(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		expected int
	}{
		{"at floor", 3, 3},
		{"one above floor", 4, 3},
		{"long", 6, 4},
		{"longer", 10, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, clk := newTestGame(t)
			layout(g, Point{5, 20}, tt.length)
			plant(g, clk, Point{5, 21})

			r := step(g)
			if !r.GoodEaten {
				t.Error("expected GoodEaten")
			}
			if r.State.Length != tt.expected {
				t.Errorf("length = %d, expected %d", r.State.Length, tt.expected)
			}
			if countCue(r, core.CueHazardEaten) != 1 {
				t.Errorf("cues = %v, expected hazard-eaten", r.Cues)
			}
			if g.rewardFlash == 0 {
				t.Error("reward flash not set")
			}
		})
	}
}

func TestBombIsDisarmed(t *testing.T) {
	g, clk := newTestGame(t)
	layout(g, Point{5, 20}, 6)
	plant(g, clk, Point{5, 21})
	clk.Advance(bombAge(g))

	r := step(g)
	if r.GoodEaten {
		t.Error("bomb counted as good")
	}
	if r.State.Length != 6 {
		t.Errorf("length = %d, expected 6", r.State.Length)
	}
	if countCue(r, core.CueHazardDisarmed) != 1 || countCue(r, core.CueHazardEaten) != 0 {
		t.Errorf("cues = %v, expected hazard-disarmed only", r.Cues)
	}
	if len(g.hazards.Live()) != 0 {
		t.Error("bomb still on the field")
	}
}

func TestGroupCompleteFiresOnce(t *testing.T) {
	g, clk := newTestGame(t)
	layout(g, Point{5, 20}, 8)
	plant(g, clk, Point{5, 21}, Point{5, 22}, Point{5, 23})

	completions := 0
	for i := range 4 {
		r := step(g)
		n := countCue(r, core.CueGroupComplete)
		if n > 0 && i != 2 {
			t.Errorf("group complete on move %d, expected move 2", i)
		}
		completions += n
	}
	if completions != 1 {
		t.Errorf("group complete fired %d times, expected 1", completions)
	}
	if g.hazards.GroupCount() != 0 {
		t.Errorf("GroupCount = %d, expected 0", g.hazards.GroupCount())
	}
	// 8 -> 6 -> 4 -> 3, then a plain move
	if len(g.snake) != 3 {
		t.Errorf("length = %d, expected 3", len(g.snake))
	}
}

func TestExpiryPenaltyAppliedOnce(t *testing.T) {
	g, clk := newTestGame(t)
	layout(g, Point{10, 40}, 3)
	plant(g, clk, Point{0, 70})
	clk.Advance(expiredAge(g))

	r := step(g)
	if countCue(r, core.CueHazardExpired) != 1 {
		t.Errorf("cues = %v, expected hazard-expired", r.Cues)
	}
	if r.GrowthUnits != 1 || r.State.Length != 4 {
		t.Errorf("tick 1: growth=%d length=%d, expected 1 and 4", r.GrowthUnits, r.State.Length)
	}
	s := g.Snapshot()
	if len(s.Explosions) != 1 || s.Explosions[0].Pos != (Point{0, 70}) {
		t.Errorf("explosions = %+v, expected one at {0 70}", s.Explosions)
	}
	if len(s.Texts) == 0 {
		t.Error("expected a taunt")
	}

	r = step(g)
	if r.GrowthUnits != 1 || r.State.Length != 5 {
		t.Errorf("tick 2: growth=%d length=%d, expected 1 and 5", r.GrowthUnits, r.State.Length)
	}
	for range 5 {
		r = step(g)
		if countCue(r, core.CueHazardExpired) != 0 || r.GrowthUnits != 0 {
			t.Errorf("penalty repeated: %+v", r)
		}
	}
	if r.State.Length != 5 {
		t.Errorf("length = %d, expected 5", r.State.Length)
	}
}

func TestCuesDeduplicated(t *testing.T) {
	g, clk := newTestGame(t)
	layout(g, Point{10, 40}, 3)
	plant(g, clk, Point{0, 70}, Point{0, 72})
	clk.Advance(expiredAge(g) + time.Second)

	r := step(g)
	if countCue(r, core.CueHazardExpired) != 1 {
		t.Errorf("cues = %v, expected a single hazard-expired", r.Cues)
	}
	if g.pendingGrowth != 3 {
		t.Errorf("pendingGrowth = %d, expected 3 (4 queued, 1 used)", g.pendingGrowth)
	}
}

func TestIdleGrowth(t *testing.T) {
	g, _ := newTestGame(t)
	layout(g, Point{10, 40}, 3)

	for i := 1; i < 120; i++ {
		r := step(g)
		if r.State.Length != 3 {
			t.Fatalf("tick %d: length = %d, expected 3", i, r.State.Length)
		}
	}
	if g.idleTicks != 119 {
		t.Errorf("idleTicks = %d, expected 119", g.idleTicks)
	}

	r := step(g)
	if r.State.Length != 4 {
		t.Errorf("tick 120: length = %d, expected 4", r.State.Length)
	}
	if r.GrowthUnits != 1 {
		t.Errorf("GrowthUnits = %d, expected 1", r.GrowthUnits)
	}
	if g.idleTicks != 0 {
		t.Errorf("idleTicks = %d, expected 0", g.idleTicks)
	}
}

func TestLevelUp(t *testing.T) {
	g, _ := newTestGame(t)
	layout(g, Point{5, 4}, 3)
	g.score = 90
	g.food = Point{5, 5}

	var r TickReport
	for range g.cfg.Food.ChompFrames + 1 {
		r = step(g)
	}
	if r.State.Score != 100 || r.State.Level != 2 {
		t.Errorf("score/level = %d/%d, expected 100/2", r.State.Score, r.State.Level)
	}
	if r.LevelUps != 1 {
		t.Errorf("LevelUps = %d, expected 1", r.LevelUps)
	}
	if countCue(r, core.CueLevelUp) != 1 || countCue(r, core.CueBite) != 1 {
		t.Errorf("cues = %v, expected level-up and bite", r.Cues)
	}
	if g.idleThreshold != 110 {
		t.Errorf("idleThreshold = %d, expected 110", g.idleThreshold)
	}
	if g.levelFlash != g.cfg.Effects.LevelFlash {
		t.Errorf("levelFlash = %d, expected %d", g.levelFlash, g.cfg.Effects.LevelFlash)
	}
}

func TestPauseFreezesHazardClock(t *testing.T) {
	g, clk := newTestGame(t)
	layout(g, Point{10, 40}, 3)
	plant(g, clk, Point{0, 70})

	r := press(g, core.ActionPause)
	if !r.State.Paused {
		t.Fatal("expected paused")
	}
	head := g.snake[0]
	clk.Advance(time.Minute)
	step(g)
	if g.snake[0] != head {
		t.Error("snake moved while paused")
	}

	r = press(g, core.ActionPause)
	if r.State.Paused {
		t.Fatal("expected unpaused")
	}
	if countCue(r, core.CueHazardExpired) != 0 {
		t.Error("hazard expired while the game was paused")
	}
	live := g.hazards.Live()
	if len(live) != 1 || live[0].Phase != PhaseGood {
		t.Errorf("hazards = %+v, expected one good hazard", live)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g, _ := newTestGame(t)
	g.snake = []Point{{5, 5}, {5, 4}, {6, 4}, {6, 5}, {6, 6}}
	g.direction, g.nextDir = DirRight, DirDown
	g.score = 50
	step(g)

	// Restart is ignored while playing.
	g2, _ := newTestGame(t)
	if r := press(g2, core.ActionRestart); r.Restarted {
		t.Error("restart accepted during play")
	}

	r := press(g, core.ActionRestart)
	if !r.Restarted {
		t.Fatal("expected restart")
	}
	if r.State.GameOver || r.State.Score != 0 || r.State.Length != 3 || r.State.Level != 1 {
		t.Errorf("state after restart = %+v", r.State)
	}
}

func TestPacerFollowsReports(t *testing.T) {
	g, clk := newTestGame(t)
	p := NewPacer(g.Config().Timing)
	layout(g, Point{10, 40}, 3)
	plant(g, clk, Point{0, 70})
	clk.Advance(expiredAge(g) + time.Second)

	if d := p.Apply(step(g)); d != 98*time.Millisecond {
		t.Errorf("after expiry growth: %v, expected 98ms", d)
	}
	if d := p.Apply(step(g)); d != 96*time.Millisecond {
		t.Errorf("after second growth: %v, expected 96ms", d)
	}

	plant(g, clk, g.grid.NextHead(g.snake[0], DirRight))
	if d := p.Apply(step(g)); d != 100*time.Millisecond {
		t.Errorf("after good hazard: %v, expected base 100ms", d)
	}
}

func TestMovePriority(t *testing.T) {
	tests := []struct {
		name          string
		hazardAhead   bool
		pendingGrowth int
		idleDue       bool
		growth        []int // GrowthUnits per tick
		lengths       []int
		pendingAfter  int
	}{
		{
			name:          "hazard beats queued growth",
			hazardAhead:   true,
			pendingGrowth: 2,
			growth:        []int{0},
			lengths:       []int{4},
			pendingAfter:  2,
		},
		{
			name:          "queued growth defers idle growth",
			pendingGrowth: 1,
			idleDue:       true,
			growth:        []int{1, 1, 0},
			lengths:       []int{7, 8, 8},
			pendingAfter:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, clk := newTestGame(t)
			layout(g, Point{5, 20}, 6)
			g.pendingGrowth = tt.pendingGrowth
			if tt.hazardAhead {
				plant(g, clk, Point{5, 21})
			}
			if tt.idleDue {
				g.idleTicks = g.idleThreshold
			}

			for i := range tt.growth {
				r := step(g)
				if r.GrowthUnits != tt.growth[i] {
					t.Errorf("tick %d: GrowthUnits = %d, expected %d", i, r.GrowthUnits, tt.growth[i])
				}
				if r.State.Length != tt.lengths[i] {
					t.Errorf("tick %d: length = %d, expected %d", i, r.State.Length, tt.lengths[i])
				}
				if tt.hazardAhead && !r.GoodEaten {
					t.Errorf("tick %d: expected GoodEaten", i)
				}
			}
			if g.pendingGrowth != tt.pendingAfter {
				t.Errorf("pendingGrowth = %d, expected %d", g.pendingGrowth, tt.pendingAfter)
			}
		})
	}
}
