package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/poopsnake/internal/platform/tui"
)

var creditsCmd = &cobra.Command{
	Use:   "credits",
	Short: "Roll the credits",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunCredits(width, height); err != nil {
			fail("%v", err)
		}
		fmt.Println(tui.Farewell())
	},
}
