package main

import (
	"fmt"
	"os"

	"github.com/vovakirdan/poopsnake/internal/config"
)

// loadConfig reads the config file and applies the preset and flag overrides.
func loadConfig() (config.SnakeConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.SnakeConfig{}, "", err
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, "", err
	}

	config.ApplySnakePreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, "", fmt.Errorf("preset %s: %w", preset, err)
	}
	return cfg, preset, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
