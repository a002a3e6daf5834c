package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/poopsnake/internal/core"
)

type stage int

const (
	stageSplash stage = iota
	stageGame
	stageCredits
)

// SessionOptions configures the splash, game and credits flow.
type SessionOptions struct {
	Game        GameOptions
	SkipSplash  bool
	ShowCredits bool // Roll credits after the player quits
}

// SessionModel runs splash -> game -> credits. It is the top-level model for
// both local play and SSH sessions.
type SessionModel struct {
	opts     SessionOptions
	stage    stage
	splash   SplashModel
	game     GameModel
	credits  CreditsModel
	width    int
	height   int
	quitting bool
}

// NewSessionModel creates a session. The game starts immediately when the
// splash is skipped.
func NewSessionModel(opts SessionOptions) SessionModel {
	rc := opts.Game.Runtime
	var sink core.SoundSink
	if opts.Game.Sound != nil {
		sink = opts.Game.Sound
	}

	m := SessionModel{
		opts:   opts,
		splash: NewSplashModel(rc.ScreenW, rc.ScreenH, sink),
		width:  rc.ScreenW,
		height: rc.ScreenH,
	}
	if opts.SkipSplash {
		m.stage = stageGame
		m.game = NewGameModel(opts.Game)
	}
	return m
}

// Init starts the current stage.
func (m SessionModel) Init() tea.Cmd {
	if m.stage == stageGame {
		return m.game.Init()
	}
	return m.splash.Init()
}

// Update routes messages to the active stage.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.stage {
	case stageSplash:
		return m.updateSplash(msg)
	case stageGame:
		return m.updateGame(msg)
	default:
		return m.updateCredits(msg)
	}
}

func (m SessionModel) updateSplash(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.splash.Update(msg)
	if sm, ok := next.(SplashModel); ok {
		m.splash = sm
	}

	if m.splash.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.splash.Done() {
		gameOpts := m.opts.Game
		gameOpts.Runtime.ScreenW = m.width
		gameOpts.Runtime.ScreenH = m.height
		m.game = NewGameModel(gameOpts)
		m.stage = stageGame
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = gm
	}

	if !m.game.IsQuitting() {
		return m, cmd
	}
	if !m.opts.ShowCredits {
		m.quitting = true
		return m, tea.Quit
	}
	m.credits = NewCreditsModel(m.width, m.height)
	m.stage = stageCredits
	return m, m.credits.Init()
}

func (m SessionModel) updateCredits(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.credits.Update(msg)
	if cm, ok := next.(CreditsModel); ok {
		m.credits = cm
	}
	return m, cmd
}

// View renders the active stage.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.stage {
	case stageSplash:
		return m.splash.View()
	case stageGame:
		return m.game.View()
	default:
		return m.credits.View()
	}
}

// Game returns the game model once the splash is dismissed.
func (m SessionModel) Game() GameModel {
	return m.game
}

// Run starts a local session with the given options.
func Run(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// RunCredits shows only the credits scroll.
func RunCredits(width, height int) error {
	p := tea.NewProgram(
		NewCreditsModel(width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
