package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/poopsnake/internal/config"
	"github.com/vovakirdan/poopsnake/internal/platform/tui"
	"github.com/vovakirdan/poopsnake/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresTUI    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top high scores, for one difficulty mode or all of them.

Examples:
  poopsnake scores
  poopsnake scores hard
  poopsnake scores --player ada
  poopsnake scores --tui
  poopsnake scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show scores by this player")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of the mode (all modes if none given)")
}

func runScores(_ *cobra.Command, args []string) {
	mode := ""
	if len(args) == 1 {
		preset, err := config.ParsePreset(args[0])
		if err != nil {
			fail("%v", err)
		}
		mode = string(preset)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(mode); err != nil {
			fail("clearing scores: %v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", modeTitle(mode))
		return

	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, mode, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresPlayer != "" {
		scores, err = store.PlayerScores(flagScoresPlayer, flagScoresLimit)
	} else {
		scores, err = store.TopScores(mode, flagScoresLimit)
	}
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", modeTitle(mode))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'poopsnake' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-5s  %-6s  %-7s  %-6s  %s\n", "Rank", "Player", "Score", "Level", "Length", "Time", "Mode", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-5s  %-6s  %-7s  %-6s  %s\n", "----", "------", "-----", "-----", "------", "----", "----", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-12s  %-6d  %-5d  %-6d  %-7s  %-6s  %s\n",
			i+1, truncate(e.Player, 12), e.Score, e.Level, e.Length,
			e.Duration.Round(time.Second).String(), e.Mode, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if flagScoresPlayer == "" {
		if best, err := store.HighScore(mode); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d\n", best)
		}
	}
}

func modeTitle(mode string) string {
	if mode == "" {
		return "all modes"
	}
	return strings.ToUpper(mode[:1]) + mode[1:]
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}
