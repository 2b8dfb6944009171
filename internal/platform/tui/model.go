package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	// Session tags recorded matches (e.g. "local-1a2b3c4d" or an SSH user session).
	Session string

	// ExitOnBack quits the program on esc/b instead of returning to a menu.
	ExitOnBack bool

	// Logger receives match events; nil discards them.
	Logger *log.Logger
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       GameOptions
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	quitting   bool
	backToMenu bool
	recorded   bool // Whether the current match over has been saved
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:       game,
		store:      store,
		config:     cfg,
		opts:       opts,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.playfieldHeight())
	return m
}

// footer renders the key help shown below the playfield.
func (m GameModel) footer() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(m.help.View(m.keyMapper.Keys()))
}

// playfieldHeight is the number of rows left for the game above the footer.
func (m GameModel) playfieldHeight() int {
	return max(0, m.config.ScreenH-lipgloss.Height(m.footer()))
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield is scaled to the screen, so a resize keeps the match.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, m.playfieldHeight())
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.playfieldHeight())
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.recordAbandoned()
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.recordAbandoned()
		m.backToMenu = true
		if m.opts.ExitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save the match on game over (once)
	if m.gameState.GameOver && !m.recorded {
		m.record(m.gameState)
		m.recorded = true
	}
	if !m.gameState.GameOver {
		m.recorded = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordAbandoned saves a match the players left before it was decided,
// as long as somebody scored.
func (m *GameModel) recordAbandoned() {
	st := m.gameState
	if st.GameOver || st.LeftScore+st.RightScore == 0 {
		return
	}
	st.Winner = ""
	m.record(st)
}

func (m *GameModel) record(st core.GameState) {
	if m.store == nil {
		return
	}

	id, err := m.store.SaveMatch(storage.MatchRecord{
		Variant:    m.game.ID(),
		Session:    m.opts.Session,
		LeftScore:  st.LeftScore,
		RightScore: st.RightScore,
		Winner:     st.Winner,
		Ticks:      st.Tick,
	})
	if err != nil {
		m.logger.Warn("could not record match", "error", err)
		return
	}
	m.logger.Debug("match recorded", "id", id, "left", st.LeftScore, "right", st.RightScore)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}

	// Create screenshots directory
	dir := filepath.Join(home, ".pong", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: cannot write", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
// Back and quit both end the program.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) error {
	opts.ExitOnBack = true
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
