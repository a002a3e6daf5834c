package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/poopsnake/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello", core.ColorDefault, core.ColorDefault)
	s.DrawText(0, 1, "snake", core.ColorDefault, core.ColorDefault)

	got := RenderScreen(s)
	expected := "hello\nsnake"
	if got != expected {
		t.Errorf("RenderScreen() = %q, expected %q", got, expected)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawText(0, 0, "ab", core.ColorRed, core.ColorBlue)
	s.DrawText(2, 0, "cd", core.ColorBrown, core.ColorBlue)
	s.DrawText(4, 0, "ef", core.ColorDefault, core.ColorDefault)

	got := RenderScreen(s)
	if w := lipgloss.Width(got); w != 6 {
		t.Errorf("visible width = %d, expected 6", w)
	}
	for _, part := range []string{"ab", "cd", "ef"} {
		if !strings.Contains(got, part) {
			t.Errorf("RenderScreen() = %q, missing %q", got, part)
		}
	}
}

func TestRenderScreenLineCount(t *testing.T) {
	s := core.NewScreen(4, 3)
	got := RenderScreen(s)
	if n := strings.Count(got, "\n"); n != 2 {
		t.Errorf("newlines = %d, expected 2", n)
	}
}

func TestStyleForCaches(t *testing.T) {
	styleFor(core.ColorGreen, core.ColorBlue)
	styleFor(core.ColorGreen, core.ColorBlue)

	stylesMu.Lock()
	_, ok := styles[colorPair{core.ColorGreen, core.ColorBlue}]
	stylesMu.Unlock()
	if !ok {
		t.Error("style for green on blue should be cached")
	}
}

func TestEveryColorHasPaletteEntry(t *testing.T) {
	for c := core.ColorRed; c <= core.ColorBrown; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("palette is missing colour %d", c)
		}
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"toolong", 4, "toolong"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.expected)
		}
	}
}
