package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	scrollEvery  = 180 * time.Millisecond
	farewellLine = "Thanks for playing."
)

// creditLines is the text that scrolls up the screen.
var creditLines = []string{
	"CREDITS",
	"",
	"Game design ............ the snake",
	"Hazard engineering ..... the snake, again",
	"Bomb disposal .......... you",
	"Sound .................. a sine wave and a dream",
	"",
	"Built with Bubble Tea, Lip Gloss, Wish,",
	"Cobra, beep and SQLite.",
	"",
	"No snakes were harmed.",
	"Some were mildly embarrassed.",
	"",
	farewellLine,
}

var (
	creditsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	farewellStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	creditsHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

type scrollMsg time.Time

func scrollCmd() tea.Cmd {
	return tea.Tick(scrollEvery, func(t time.Time) tea.Msg {
		return scrollMsg(t)
	})
}

// CreditsModel scrolls the credits and stops with the farewell line centered.
type CreditsModel struct {
	lines  []string
	width  int
	height int
	offset int // Rows scrolled so far
	done   bool
}

// NewCreditsModel creates a credits scroller.
func NewCreditsModel(width, height int) CreditsModel {
	lines := append(strings.Split(splashText(), "\n"), "", "")
	lines = append(lines, creditLines...)
	return CreditsModel{lines: lines, width: width, height: height}
}

// Init starts scrolling.
func (m CreditsModel) Init() tea.Cmd {
	return scrollCmd()
}

// Update handles messages for the credits screen.
func (m CreditsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.done = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case scrollMsg:
		if m.offset >= m.maxOffset() {
			m.done = true
			return m, tea.Sequence(tea.Tick(time.Second, func(time.Time) tea.Msg { return nil }), tea.Quit)
		}
		m.offset++
		return m, scrollCmd()
	}
	return m, nil
}

// maxOffset is the scroll position where the last line sits mid-screen.
func (m CreditsModel) maxOffset() int {
	return len(m.lines) - 1 + m.height - 1 - m.height/2
}

// visible returns the lines on screen, top to bottom. Rows above or below
// the text are empty strings.
func (m CreditsModel) visible() []string {
	out := make([]string, m.height)
	// Line i starts at the bottom row and rises one row per scroll step.
	for i, l := range m.lines {
		row := m.height - 1 + i - m.offset
		if row >= 0 && row < m.height {
			out[row] = l
		}
	}
	return out
}

// View renders the scrolling credits.
func (m CreditsModel) View() string {
	if m.height <= 0 {
		return farewellLine
	}

	var b strings.Builder
	for i, l := range m.visible() {
		if i > 0 {
			b.WriteByte('\n')
		}
		style := creditsStyle
		switch l {
		case farewellLine:
			style = farewellStyle
		case "CREDITS":
			style = creditsHeading
		}
		b.WriteString(centerText(style.Render(l), m.width))
	}
	return b.String()
}

// Done reports whether the scroll finished or was skipped.
func (m CreditsModel) Done() bool {
	return m.done
}

// Farewell returns the line printed after the program exits.
func Farewell() string {
	return farewellLine
}
