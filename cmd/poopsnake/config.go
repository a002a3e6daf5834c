package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/poopsnake/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML, after the
config search path, --config and --preset have been applied.

The output is a valid config file:
  poopsnake config > ~/.poopsnake/configs/snake.yaml

Search order:
  1. --config <path>
  2. ~/.poopsnake/configs/snake.yaml
  3. ./configs/snake.yaml
  4. Built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows the difficulty presets and the tick speeds they start with.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, _, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(out)
}

func runPresets(_ *cobra.Command, _ []string) {
	base, err := config.LoadSnake(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %-10s  %-10s  %-8s  %s\n", "PRESET", "START TICK", "GOOD/BOMB", "IDLE", "SPEED-UP")
	fmt.Printf("  %-8s  %-10s  %-10s  %-8s  %s\n", "------", "----------", "---------", "----", "--------")

	for _, p := range config.Presets() {
		cfg := base
		config.ApplySnakePreset(&cfg, p)
		speedUp := "yes"
		if cfg.Timing.LevelStepMs == 0 && cfg.Timing.GrowthStepMs == 0 {
			speedUp = "no"
		}
		fmt.Printf("  %-8s  %-10s  %-10s  %-8d  %s\n",
			p, cfg.Timing.BaseTick(),
			fmt.Sprintf("%ds/%ds", cfg.Hazard.GoodMs/1000, cfg.Hazard.BombMs/1000),
			cfg.Idle.BaseTicks, speedUp)
	}
}
