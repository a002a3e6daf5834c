package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/poopsnake/internal/core"
	"github.com/vovakirdan/poopsnake/internal/games/snake"
	"github.com/vovakirdan/poopsnake/internal/logging"
	"github.com/vovakirdan/poopsnake/internal/platform/tui"
	"github.com/vovakirdan/poopsnake/internal/sound"
	"github.com/vovakirdan/poopsnake/internal/storage"
)

var (
	flagPlayer   string
	flagSound    string
	flagMute     bool
	flagNoSplash bool
	flagCredits  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing.

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Space/Esc       - Pause
  R                 - Restart (after game over)
  M                 - Mute
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty presets:
  easy   - Slower ticks, longer hazard windows, gentler penalties
  normal - The configured values
  hard   - Faster ticks, shorter hazard windows, harsher penalties
  fixed  - Speed never changes

Examples:
  poopsnake play
  poopsnake play --preset easy
  poopsnake play --seed 42 --no-splash
  poopsnake play --sound system
  poopsnake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name recorded with your scores")
	cmd.Flags().StringVar(&flagSound, "sound", "", "Sound backend: auto, synth, system, off (overrides config)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Start muted (press M to unmute)")
	cmd.Flags().BoolVar(&flagNoSplash, "no-splash", false, "Skip the title screen")
	cmd.Flags().BoolVar(&flagCredits, "credits", true, "Roll the credits when you quit")
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fail("%v", err)
	}
	fmt.Println(tui.Farewell())
}

// play runs a session and closes its collaborators before returning.
func play() error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSound != "" {
		cfg.Sound.Backend = flagSound
		cfg.Sound.Enabled = flagSound != "off"
	}

	// The terminal belongs to Bubble Tea, so logs go to a file.
	logger, logCloser, err := logging.NewFile(logging.DefaultFile, logging.Options{Level: flagLogLevel, Prefix: "poopsnake"})
	if err != nil {
		return err
	}
	defer logCloser.Close()

	width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	if minW, minH := snake.MinScreen(cfg.Grid.Rows, cfg.Grid.Cols); width < minW || height < minH {
		logger.Warn("terminal smaller than the playfield", "size", fmt.Sprintf("%dx%d", width, height),
			"need", fmt.Sprintf("%dx%d", minW, minH))
	}

	player, err := sound.New(cfg.Sound, logger)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		player = sound.Nop{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	dispatcher := sound.NewDispatcher(ctx, player, logger, sound.DefaultQueueSize)
	dispatcher.SetMuted(flagMute)

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(tui.SessionOptions{
		Game: tui.GameOptions{
			Config: cfg,
			Mode:   string(preset),
			Runtime: core.RuntimeConfig{
				ScreenW: width,
				ScreenH: height,
				Seed:    flagSeed,
				Player:  flagPlayer,
			},
			Store:  store,
			Sound:  dispatcher,
			Logger: logger,
		},
		SkipSplash:  flagNoSplash,
		ShowCredits: flagCredits,
	})

	if store != nil {
		store.Close()
	}
	if err := dispatcher.Close(); err != nil {
		logger.Debug("closing sound", "error", err)
	}

	if runErr != nil {
		logger.Error("game exited with an error", "error", runErr)
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
