package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
// It mirrors defaults/snake.yaml and backs the loader if the embed is unreadable.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{Rows: 20, Cols: 80},
		Timing: TimingConfig{
			BaseTickMs:   100,
			MinTickMs:    30,
			LevelStepMs:  15,
			GrowthStepMs: 2,
		},
		Food: FoodConfig{
			Score:       10,
			ChompFrames: 8,
			LevelEvery:  100,
			StartLength: 3,
		},
		Hazard: HazardConfig{
			GroupSize:    3,
			GoodMs:       8000,
			BombMs:       6000,
			ExpiryGrowth: 2,
			Shrink:       2,
			MinLength:    3,
		},
		Idle: IdleConfig{
			BaseTicks: 120,
			PerLevel:  10,
			MinTicks:  40,
		},
		Effects: EffectsConfig{
			LevelFlash:     12,
			RewardFlash:    10,
			TextTicks:      15,
			ExplosionTicks: 6,
			Taunts: []string{
				"Too slow!",
				"Stinky!",
				"Ka-boom!",
				"Should have eaten that",
				"Nature calls back",
			},
		},
		Sound: SoundConfig{
			Enabled: true,
			Backend: "auto",
			Volume:  0.6,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
