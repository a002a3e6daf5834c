// poopsnake is a terminal snake game where everything you eat comes back
// around: the snake drops three hazards after every meal, and they turn into
// bombs if left lying around.
//
// Usage:
//
//	poopsnake                 - Play (same as "poopsnake play")
//	poopsnake play            - Play a game
//	poopsnake scores [mode]   - Show high scores
//	poopsnake serve           - Start SSH server for remote play
//	poopsnake credits         - Roll the credits
//	poopsnake config          - Print the effective configuration
//	poopsnake presets         - List difficulty presets
//
// Global flags:
//
//	--config <path>   - Custom config YAML
//	--preset <name>   - Difficulty preset (easy, normal, hard, fixed)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.poopsnake/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/poopsnake/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "poopsnake",
	Short: "The Fierce Pooping Snake - a terminal snake game",
	Long: `The Fierce Pooping Snake is snake with consequences.

Every meal is followed by three droppings. Eat them while they are fresh
to shrink and slow down. Leave them too long and they turn into bombs,
then go off and make you longer and faster.

Available commands:
  play     - Play a game (default)
  scores   - View high scores
  serve    - Start SSH server for remote play
  credits  - Roll the credits
  config   - Print the effective configuration
  presets  - List difficulty presets

Examples:
  poopsnake
  poopsnake play --preset hard
  poopsnake scores normal
  poopsnake serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)
	addPlayFlags(playCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(creditsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(presetsCmd)
}
