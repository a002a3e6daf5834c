package snake

import (
	"time"

	"github.com/vovakirdan/poopsnake/internal/config"
)

// Pacer owns the tick duration. The scheduler applies every TickReport to it
// and waits for the returned duration before the next Step.
type Pacer struct {
	base       time.Duration
	floor      time.Duration
	levelStep  time.Duration
	growthStep time.Duration
	current    time.Duration
}

// NewPacer creates a pacer starting at the base tick.
func NewPacer(t config.TimingConfig) *Pacer {
	return &Pacer{
		base:       t.BaseTick(),
		floor:      t.MinTick(),
		levelStep:  t.LevelStep(),
		growthStep: t.GrowthStep(),
		current:    t.BaseTick(),
	}
}

// Current returns the tick duration in effect.
func (p *Pacer) Current() time.Duration {
	return p.current
}

// Reset returns to the base tick.
func (p *Pacer) Reset() {
	p.current = p.base
}

// Apply updates the tick duration from one tick's report.
// Eating a Good hazard resets to base and overrides any speed-up.
func (p *Pacer) Apply(r TickReport) time.Duration {
	if r.Restarted || r.GoodEaten {
		p.current = p.base
		return p.current
	}
	for range r.LevelUps {
		p.current = max(p.current-p.levelStep, p.floor)
	}
	for range r.GrowthUnits {
		p.current = max(p.current-p.growthStep, p.floor)
	}
	return p.current
}
