package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/poopsnake/internal/core"
)

const (
	splashTitle  = "THE FIERCE POOPING SNAKE"
	splashPrompt = "[ Press any key to continue ]"
	pulseEvery   = 400 * time.Millisecond
)

var splashArt = []string{
	`            ____`,
	`           / . .\`,
	`           \  ---<`,
	`            \  /`,
	`  __________/ /`,
	`-=:___________/`,
	`      ●  ●  ●`,
}

var (
	splashArtStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	splashTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	splashPromptOn   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	splashPromptOff  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type pulseMsg time.Time

func pulseCmd() tea.Cmd {
	return tea.Tick(pulseEvery, func(t time.Time) tea.Msg {
		return pulseMsg(t)
	})
}

// playCmd hands a cue to sink off the update loop.
func playCmd(sink core.SoundSink, cue core.Cue) tea.Cmd {
	if sink == nil {
		return nil
	}
	return func() tea.Msg {
		sink.Play(cue)
		return nil
	}
}

// SplashModel shows the title screen until a key is pressed.
type SplashModel struct {
	width    int
	height   int
	sink     core.SoundSink
	bright   bool
	done     bool
	quitting bool
}

// NewSplashModel creates a splash screen. sink may be nil.
func NewSplashModel(width, height int, sink core.SoundSink) SplashModel {
	return SplashModel{width: width, height: height, sink: sink, bright: true}
}

// Init plays the fanfare and starts the prompt pulse.
func (m SplashModel) Init() tea.Cmd {
	return tea.Batch(playCmd(m.sink, core.CueSplash), pulseCmd())
}

// Update handles messages for the splash screen.
func (m SplashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		m.done = true
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case pulseMsg:
		if m.done {
			return m, nil
		}
		m.bright = !m.bright
		return m, pulseCmd()
	}
	return m, nil
}

// View renders the splash screen.
func (m SplashModel) View() string {
	if m.quitting {
		return ""
	}

	lines := make([]string, 0, len(splashArt)+6)
	for _, l := range splashArt {
		lines = append(lines, splashArtStyle.Render(l))
	}
	lines = append(lines, "", splashTitleStyle.Render(splashTitle), "", "")

	prompt := splashPromptOff
	if m.bright {
		prompt = splashPromptOn
	}
	lines = append(lines, prompt.Render(splashPrompt))

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 || m.height <= 0 {
		return block
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}

// Done reports whether the player dismissed the splash.
func (m SplashModel) Done() bool {
	return m.done
}

// IsQuitting returns true if the player aborted on the splash.
func (m SplashModel) IsQuitting() bool {
	return m.quitting
}

// Bright reports whether the prompt is in its bright pulse phase.
func (m SplashModel) Bright() bool {
	return m.bright
}

// splashText returns the unstyled art and title.
func splashText() string {
	return strings.Join(append(append([]string{}, splashArt...), splashTitle), "\n")
}
