package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/platform/audio"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// Sounds plays event effects. *audio.Player satisfies it.
type Sounds interface {
	Play(e audio.Effect)
	SetMusicPaused(paused bool)
}

// ResultStore persists finished runs. *storage.Store satisfies it.
type ResultStore interface {
	SaveScore(gameID string, score, level int) (int64, error)
	SaveMatch(result storage.MatchResult) (int64, error)
}

// Env bundles the collaborators shared by every screen of a session.
// Any field may be nil.
type Env struct {
	Store    *storage.Store
	Logger   *log.Logger
	Sounds   Sounds
	Renderer *lipgloss.Renderer
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

func (e Env) results() ResultStore {
	if e.Store == nil {
		return nil
	}
	return e.Store
}

// GameModel is the Bubble Tea model that drives one game instance.
type GameModel struct {
	game     registry.Game
	screen   *core.Screen
	renderer *ScreenRenderer
	results  ResultStore
	logger   *log.Logger
	sounds   Sounds
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	input    *InputTracker
	state    core.GameState
	now      func() time.Time
	tickID   uint64

	matchStart time.Time
	scoreSaved bool
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. A zero seed is replaced with
// the current time.
func NewGameModel(game registry.Game, env Env, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		renderer: NewScreenRenderer(env.Renderer),
		results:  env.results(),
		logger:   env.logger().With("game", game.ID()),
		sounds:   env.Sounds,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     h,
		input:    NewInputTracker(HoldWindow(cfg.TickRate)),
		now:      time.Now,
		tickID:   nextTickID(),
	}
}

// playRows leaves the last terminal row for the help line.
func playRows(h int) int {
	if h > 2 {
		return h - 1
	}
	return h
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game reset", "seed", m.config.Seed)
	return tickCmd(m.tickID, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.leave()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.leave()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil

	default:
		m.input.Press(action)
	}

	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	wasPaused := m.state.Paused
	result := m.game.Step(m.input.Frame())
	m.state = result.State

	for _, e := range result.Events {
		m.handleEvent(e)
	}

	if m.sounds != nil && wasPaused != m.state.Paused {
		m.sounds.SetMusicPaused(m.state.Paused)
	}

	return m, tickCmd(m.tickID, m.config.TickRate)
}

func (m *GameModel) handleEvent(e core.Event) {
	switch e.Kind {
	case core.EventPhaseChanged:
		m.logger.Debug("phase changed", "from", e.From, "to", e.To)
		switch {
		case e.From == core.PhaseIdle && e.To == core.PhasePlaying:
			m.matchStart = m.now()
			m.scoreSaved = false
		case e.To == core.PhaseGameOver:
			m.play(audio.EffectGameOver)
			m.saveMatch()
		}

	case core.EventLevelAdvanced:
		m.logger.Info("level advanced", "level", e.Level, "score", m.state.Score)
		m.play(audio.EffectLevel)

	case core.EventEnemyKilled:
		m.play(audio.EffectKill)

	case core.EventPointScored:
		m.logger.Debug("point scored", "by", e.By, "scores", m.state.Scores)
		m.play(audio.EffectPoint)
	}
}

func (m *GameModel) play(e audio.Effect) {
	if m.sounds != nil {
		m.sounds.Play(e)
	}
}

// saveMatch records a finished head-to-head match.
func (m *GameModel) saveMatch() {
	if m.results == nil || !registry.IsVersus(m.game) {
		return
	}

	result := storage.MatchResult{
		GameID: m.game.ID(),
		Score1: m.state.Scores[0],
		Score2: m.state.Scores[1],
		Winner: int(m.state.Winner),
	}
	if !m.matchStart.IsZero() {
		result.Duration = int(m.now().Sub(m.matchStart).Seconds())
	}

	if _, err := m.results.SaveMatch(result); err != nil {
		m.logger.Warn("could not save match", "error", err)
		return
	}
	m.logger.Info("match saved", "winner", result.Winner, "score1", result.Score1, "score2", result.Score2)
}

// leave records a single-player run when the player exits it.
func (m *GameModel) leave() {
	if m.scoreSaved || m.state.Score <= 0 || registry.IsVersus(m.game) {
		return
	}
	m.scoreSaved = true

	if m.results == nil {
		return
	}
	if _, err := m.results.SaveScore(m.game.ID(), m.state.Score, m.state.Level); err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Info("score saved", "score", m.state.Score, "level", m.state.Level)
}

// saveScreenshot writes the current screen as text under ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	view := m.renderer.Render(m.screen)

	if m.screen.Height() < m.config.ScreenH {
		view += "\n" + m.help.View(m.keys)
	}
	return view
}

// State returns the last game state seen by the model.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the local terminal until the user quits or goes back.
func Run(game registry.Game, env Env, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, env, cfg)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
