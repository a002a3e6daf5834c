package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the available presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// ApplySnakePreset adjusts cfg in place for the given preset.
// Normal leaves the loaded values untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.BaseTickMs = cfg.Timing.BaseTickMs * 6 / 5
		cfg.Hazard.GoodMs = cfg.Hazard.GoodMs * 3 / 2
		cfg.Hazard.BombMs = cfg.Hazard.BombMs * 3 / 2
		cfg.Hazard.ExpiryGrowth = max(1, cfg.Hazard.ExpiryGrowth-1)
		cfg.Idle.BaseTicks = cfg.Idle.BaseTicks * 3 / 2
	case DifficultyHard:
		cfg.Timing.BaseTickMs = cfg.Timing.BaseTickMs * 4 / 5
		cfg.Hazard.GoodMs = cfg.Hazard.GoodMs * 2 / 3
		cfg.Hazard.BombMs = cfg.Hazard.BombMs * 2 / 3
		cfg.Hazard.ExpiryGrowth++
		cfg.Idle.BaseTicks = max(cfg.Idle.MinTicks, cfg.Idle.BaseTicks*3/4)
	case DifficultyFixed:
		// No speed progression: the tick stays at base all game.
		cfg.Timing.LevelStepMs = 0
		cfg.Timing.GrowthStepMs = 0
	}
	if cfg.Timing.BaseTickMs < cfg.Timing.MinTickMs {
		cfg.Timing.BaseTickMs = cfg.Timing.MinTickMs
	}
}
