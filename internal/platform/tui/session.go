package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// SessionConfig configures one interactive session.
type SessionConfig struct {
	Store      *storage.Store // May be nil; history is then unavailable
	Runtime    core.RuntimeConfig
	ConfigPath string // Passed to game factories
	Session    string // Tags recorded matches
	Logger     *log.Logger
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenHistory
)

// SessionModel manages the full session flow: menu -> game -> menu, with the
// match history one Tab away. Every game started gets its own engine.
// Used for local `menu` runs and for each SSH session.
type SessionModel struct {
	cfg       SessionConfig
	config    core.RuntimeConfig
	logger    *log.Logger
	screen    sessionScreen
	menu      MenuModel
	history   HistoryModel
	gameModel *GameModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg SessionConfig) SessionModel {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return SessionModel{
		cfg:    cfg,
		config: cfg.Runtime,
		logger: logger,
		menu:   NewMenuModel(cfg.Runtime),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		if m.gameModel != nil {
			return m.updateGame(msg)
		}
	case screenHistory:
		return m.updateHistory(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	// Check if user quit
	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		m.history = NewHistoryModel(m.cfg.Store, m.config.ScreenW, m.config.ScreenH, m.config.TickRate)
		m.screen = screenHistory
		return m, m.history.Init()
	}

	// Check if game was selected
	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.GameID, registry.Options{
			ConfigPath: m.cfg.ConfigPath,
			Logger:     m.logger,
		})
		if err != nil {
			m.logger.Warn("cannot start game", "game", selected.GameID, "error", err)
			m.menu = m.menu.WithError(err)
			return m, nil
		}

		m.logger.Info("game started", "game", game.ID())
		gameModel := NewGameModel(game, m.cfg.Store, m.config, GameOptions{
			Session: m.cfg.Session,
			Logger:  m.logger,
		})
		m.gameModel = &gameModel
		m.screen = screenGame

		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	// Check if user quit entirely
	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Check if user left the game (back to menu)
	if m.gameModel.BackToMenu() {
		m.logger.Info("game left", "game", m.gameModel.game.ID())
		return m.toMenu()
	}

	return m, cmd
}

// updateHistory handles updates when showing the match history.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = historyModel
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.IsGoingBack() {
		return m.toMenu()
	}

	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.gameModel = nil
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case screenHistory:
		return m.history.View()
	}

	return m.menu.View()
}

// RunSession runs a local session in the alternate screen.
func RunSession(cfg SessionConfig) error {
	p := tea.NewProgram(
		NewSessionModel(cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
