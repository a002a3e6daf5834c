// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownPreset is returned for a difficulty name that is not defined.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// SnakeConfig contains all tunables of the game.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Timing  TimingConfig  `yaml:"timing"`
	Food    FoodConfig    `yaml:"food"`
	Hazard  HazardConfig  `yaml:"hazard"`
	Idle    IdleConfig    `yaml:"idle"`
	Effects EffectsConfig `yaml:"effects"`
	Sound   SoundConfig   `yaml:"sound"`
}

// GridConfig defines the playfield size.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines the tick duration policy, in milliseconds.
type TimingConfig struct {
	BaseTickMs   int `yaml:"base_tick_ms"`
	MinTickMs    int `yaml:"min_tick_ms"`
	LevelStepMs  int `yaml:"level_step_ms"`  // Faster by this much per level-up
	GrowthStepMs int `yaml:"growth_step_ms"` // Faster by this much per unit of growth
}

// FoodConfig defines eating, scoring and leveling.
type FoodConfig struct {
	Score       int `yaml:"score"`
	ChompFrames int `yaml:"chomp_frames"`
	LevelEvery  int `yaml:"level_every"` // Points per level
	StartLength int `yaml:"start_length"`
}

// HazardConfig defines the dropped hazard lifecycle.
type HazardConfig struct {
	GroupSize    int `yaml:"group_size"`
	GoodMs       int `yaml:"good_ms"`
	BombMs       int `yaml:"bomb_ms"`
	ExpiryGrowth int `yaml:"expiry_growth"` // Growth units forced by an expired hazard
	Shrink       int `yaml:"shrink"`        // Segments removed by eating a good hazard
	MinLength    int `yaml:"min_length"`
}

// IdleConfig defines the idle penalty threshold, in ticks.
type IdleConfig struct {
	BaseTicks int `yaml:"base_ticks"`
	PerLevel  int `yaml:"per_level"` // Threshold drops by this much per level above 1
	MinTicks  int `yaml:"min_ticks"`
}

// EffectsConfig defines cosmetic countdown lengths, in ticks.
type EffectsConfig struct {
	LevelFlash     int      `yaml:"level_flash"`
	RewardFlash    int      `yaml:"reward_flash"`
	TextTicks      int      `yaml:"text_ticks"`
	ExplosionTicks int      `yaml:"explosion_ticks"`
	Taunts         []string `yaml:"taunts"`
}

// SoundConfig selects the sound backend.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Backend string  `yaml:"backend"` // auto, synth, system, off
	Volume  float64 `yaml:"volume"`  // 0.0 to 1.0
}

// BaseTick returns the starting tick duration.
func (t TimingConfig) BaseTick() time.Duration {
	return time.Duration(t.BaseTickMs) * time.Millisecond
}

// MinTick returns the tick duration floor.
func (t TimingConfig) MinTick() time.Duration {
	return time.Duration(t.MinTickMs) * time.Millisecond
}

// LevelStep returns the per-level speed-up.
func (t TimingConfig) LevelStep() time.Duration {
	return time.Duration(t.LevelStepMs) * time.Millisecond
}

// GrowthStep returns the per-growth-unit speed-up.
func (t TimingConfig) GrowthStep() time.Duration {
	return time.Duration(t.GrowthStepMs) * time.Millisecond
}

// GoodWindow returns how long a hazard stays beneficial.
func (h HazardConfig) GoodWindow() time.Duration {
	return time.Duration(h.GoodMs) * time.Millisecond
}

// BombWindow returns how long a hazard stays a bomb before expiring.
func (h HazardConfig) BombWindow() time.Duration {
	return time.Duration(h.BombMs) * time.Millisecond
}

// Threshold returns the idle threshold for the given level (1-based).
func (i IdleConfig) Threshold(level int) int {
	t := i.BaseTicks - (level-1)*i.PerLevel
	if t < i.MinTicks {
		t = i.MinTicks
	}
	return t
}

// Validate checks that the config can drive a game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Rows < 5 || c.Grid.Cols < 5:
		return fmt.Errorf("config: grid %dx%d is too small (minimum 5x5)", c.Grid.Rows, c.Grid.Cols)
	case c.Timing.BaseTickMs <= 0 || c.Timing.MinTickMs <= 0:
		return fmt.Errorf("config: tick durations must be positive")
	case c.Timing.MinTickMs > c.Timing.BaseTickMs:
		return fmt.Errorf("config: min_tick_ms %d exceeds base_tick_ms %d", c.Timing.MinTickMs, c.Timing.BaseTickMs)
	case c.Timing.LevelStepMs < 0 || c.Timing.GrowthStepMs < 0:
		return fmt.Errorf("config: speed steps must not be negative")
	case c.Food.ChompFrames < 1:
		return fmt.Errorf("config: chomp_frames must be at least 1")
	case c.Food.LevelEvery <= 0 || c.Food.Score <= 0:
		return fmt.Errorf("config: food score and level_every must be positive")
	case c.Food.StartLength < 1 || c.Food.StartLength >= c.Grid.Cols:
		return fmt.Errorf("config: start_length %d does not fit the grid", c.Food.StartLength)
	case c.Hazard.GroupSize < 1:
		return fmt.Errorf("config: hazard group_size must be at least 1")
	case c.Hazard.GoodMs < 0 || c.Hazard.BombMs < 0:
		return fmt.Errorf("config: hazard windows must not be negative")
	case c.Hazard.MinLength < 1 || c.Hazard.Shrink < 0 || c.Hazard.ExpiryGrowth < 0:
		return fmt.Errorf("config: hazard min_length, shrink and expiry_growth are out of range")
	case c.Idle.MinTicks < 1 || c.Idle.BaseTicks < c.Idle.MinTicks:
		return fmt.Errorf("config: idle thresholds are out of range")
	case c.Sound.Volume < 0 || c.Sound.Volume > 1:
		return fmt.Errorf("config: sound volume %.2f outside [0, 1]", c.Sound.Volume)
	}
	switch c.Sound.Backend {
	case "", "auto", "synth", "system", "off":
	default:
		return fmt.Errorf("config: unknown sound backend %q", c.Sound.Backend)
	}
	return nil
}
