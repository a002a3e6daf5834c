package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/poopsnake/internal/config"
	"github.com/vovakirdan/poopsnake/internal/core"
	"github.com/vovakirdan/poopsnake/internal/games/snake"
	"github.com/vovakirdan/poopsnake/internal/logging"
	"github.com/vovakirdan/poopsnake/internal/sound"
	"github.com/vovakirdan/poopsnake/internal/storage"
)

// GameOptions wires the collaborators of a game session.
type GameOptions struct {
	Config  config.SnakeConfig
	Mode    string // Difficulty preset name, stored with scores
	Runtime core.RuntimeConfig
	Store   *storage.Store    // nil disables score persistence
	Sound   *sound.Dispatcher // nil disables sound
	Logger  *log.Logger       // nil discards logs
	Clock   snake.Clock       // Game clock, nil uses time.Now
	Now     func() time.Time  // Wall clock for play duration, nil uses time.Now
}

// GameModel runs one snake game inside Bubble Tea.
type GameModel struct {
	game       *snake.Game
	pacer      *snake.Pacer
	screen     *core.Screen
	store      *storage.Store
	sound      *sound.Dispatcher
	logger     *log.Logger
	now        func() time.Time
	mode       string
	config     core.RuntimeConfig
	keys       KeyMap
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
	lastRank   int
}

// NewGameModel creates a game model and resets the game.
func NewGameModel(opts GameOptions) GameModel {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Player == "" {
		cfg.Player = "player"
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	mode := opts.Mode
	if mode == "" {
		mode = string(config.DifficultyNormal)
	}

	var gameOpts []snake.Option
	if opts.Clock != nil {
		gameOpts = append(gameOpts, snake.WithClock(opts.Clock))
	}
	game := snake.New(opts.Config, gameOpts...)
	game.Reset(cfg)

	return GameModel{
		game:       game,
		pacer:      snake.NewPacer(opts.Config.Timing),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		sound:      opts.Sound,
		logger:     logger,
		now:        now,
		mode:       mode,
		config:     cfg,
		keys:       DefaultKeyMap(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		started:    now(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.logger.Info("game started", "player", m.config.Player, "mode", m.mode, "seed", m.config.Seed)
	return tickCmd(m.pacer.Current())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The grid is fixed; a small window only gets the resize overlay.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records input for the next tick. Several keys within one tick
// collapse to the latest direction.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Mute):
		if m.sound != nil {
			muted := m.sound.ToggleMute()
			m.logger.Debug("sound toggled", "muted", muted)
		}
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.ToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.saveScore()
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one simulation step and schedules the next one.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	report := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = report.State

	if m.sound != nil {
		m.sound.PlayAll(report.Cues)
	}

	if report.Restarted {
		m.scoreSaved = false
		m.lastRank = 0
		m.started = m.now()
		m.logger.Info("game restarted", "player", m.config.Player)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
	}

	return m, tickCmd(m.pacer.Apply(report))
}

// saveScore records the current result once per game. Zero scores are skipped.
func (m *GameModel) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	st := m.gameState
	m.logger.Info("game over", "player", m.config.Player, "score", st.Score, "level", st.Level, "length", st.Length)
	if m.store == nil || st.Score <= 0 {
		return
	}

	entry := storage.ScoreEntry{
		Mode:     m.mode,
		Player:   m.config.Player,
		Score:    st.Score,
		Level:    st.Level,
		Length:   st.Length,
		Duration: m.now().Sub(m.started),
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	rank, err := m.store.Rank(m.mode, st.Score)
	if err != nil {
		m.logger.Warn("could not rank score", "error", err)
		return
	}
	m.lastRank = rank
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	path, err := core.ExpandPath(filepath.Join("~", ".poopsnake", "screenshots"))
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(path, filename), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "file", filename)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.sound != nil && m.sound.Muted() {
		m.screen.DrawText(m.screen.Width()-7, 0, "[muted]", core.ColorGray, core.ColorDefault)
	}
	if m.gameState.GameOver && m.lastRank > 0 {
		m.screen.DrawTextCentered(m.screen.Height()-1, fmt.Sprintf("Rank #%d in %s", m.lastRank, m.mode), core.ColorBrightYellow, core.ColorDefault)
	}
	return RenderScreen(m.screen)
}

// State returns the last reported game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the player quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Game exposes the running game, for tests and tooling.
func (m GameModel) Game() *snake.Game {
	return m.game
}

// TickDuration returns the delay before the next tick.
func (m GameModel) TickDuration() time.Duration {
	return m.pacer.Current()
}
