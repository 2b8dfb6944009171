package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show variant list sidebar
	sidebarWidth       = 20  // Width of variant list sidebar
	maxMatches         = 100 // Max matches to load
)

// allVariants is the history tab listing the matches of every variant.
var allVariants = registry.GameInfo{ID: "", Title: "All variants"}

// HistoryKeyMap defines the key bindings for the match history.
type HistoryKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextVariant, k.PrevVariant, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextVariant, k.PrevVariant},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextVariant: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		PrevVariant: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the match history screen.
// It lists the matches finished since the process started.
type HistoryModel struct {
	games       []registry.GameInfo // Variants to browse
	gameCursor  int                 // Currently selected variant index
	store       *storage.Store      // Match history
	matches     []storage.MatchRecord
	stats       storage.VariantStats
	loadErr     error
	tickRate    int
	withSession bool // Whether the table has a session column
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show variant list sidebar
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height, tickRate int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		games:       append(registry.List(), allVariants),
		store:       store,
		tickRate:    tickRate,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	// Load matches for first variant
	m.loadMatches(m.games[0].ID)

	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 9},
		{Title: "Winner", Width: 8},
		{Title: "Length", Width: 8},
		{Title: "Finished", Width: 14},
	}
	if m.showingAll() {
		columns = append(columns, table.Column{Title: "Variant", Width: 14})
	}

	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	if m.showingAll() {
		tableWidth -= 16
	}

	// Show the session column if we have space
	m.withSession = tableWidth > 70
	if m.withSession {
		columns = append(columns, table.Column{Title: "Session", Width: min(tableWidth-55, 24)})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)), // Leave room for header, stats, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadMatches loads matches for the given variant.
func (m *HistoryModel) loadMatches(variant string) {
	m.matches = nil
	m.stats = storage.VariantStats{Variant: variant}
	m.loadErr = nil

	m.table = m.createTable()
	if m.store == nil {
		m.updateTableRows()
		return
	}

	var (
		matches []storage.MatchRecord
		err     error
	)
	if variant == allVariants.ID {
		matches, err = m.store.RecentMatches(maxMatches)
	} else {
		matches, err = m.store.MatchesByVariant(variant, maxMatches)
	}
	if err != nil {
		m.loadErr = err
	} else {
		m.matches = matches
	}

	stats, err := m.store.Stats(variant)
	if err == nil {
		m.stats = stats
	}

	m.updateTableRows()
}

// updateTableRows updates the table with current matches.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.matches))
	for i, rec := range m.matches {
		winner := rec.Winner
		if winner == "" {
			winner = "-"
		}
		row := table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d - %d", rec.LeftScore, rec.RightScore),
			winner,
			formatTicks(rec.Ticks, m.tickRate),
			rec.FinishedAt.Format("Jan 02 15:04"),
		}
		if m.showingAll() {
			row = append(row, rec.Variant)
		}
		if m.withSession {
			row = append(row, rec.Session)
		}
		rows[i] = row
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// showingAll reports whether the selected tab lists every variant.
func (m *HistoryModel) showingAll() bool {
	return m.games[m.gameCursor].ID == allVariants.ID
}

// formatTicks converts a tick count to a wall-clock length at the given rate.
func formatTicks(ticks uint64, tickRate int) string {
	if tickRate <= 0 {
		return fmt.Sprintf("%dt", ticks)
	}
	d := time.Duration(ticks) * time.Second / time.Duration(tickRate) //nolint:gosec // match lengths are far below overflow
	return d.Round(time.Second).String()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextVariant):
			m.gameCursor = (m.gameCursor + 1) % len(m.games)
			m.loadMatches(m.games[m.gameCursor].ID)
			return m, nil

		case key.Matches(msg, m.keys.PrevVariant):
			m.gameCursor--
			if m.gameCursor < 0 {
				m.gameCursor = len(m.games) - 1
			}
			m.loadMatches(m.games[m.gameCursor].ID)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("MATCH HISTORY - %s", m.games[m.gameCursor].Title)

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		// Wide layout: sidebar + table
		b.WriteString(m.renderWideLayout())
	} else {
		// Narrow layout: variant tabs + table
		b.WriteString(m.renderNarrowLayout())
	}

	// Stats line
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n")

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the selected variant.
func (m HistoryModel) statsLine() string {
	s := m.stats
	if s.Played == 0 {
		return ""
	}
	return fmt.Sprintf("Played %d  |  Left wins %d  |  Right wins %d  |  Longest %s",
		s.Played, s.LeftWins, s.RightWins, formatTicks(s.LongestTicks, m.tickRate))
}

// renderWideLayout renders the history with sidebar for variant selection.
func (m HistoryModel) renderWideLayout() string {
	// Sidebar (variant list)
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Variants\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.games {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.gameCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := g.Title
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	sidebarRendered := sidebarStyle.Render(sidebar.String())

	// Table
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := tableStyle.Render(m.renderTableContent())

	// Join horizontally
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders the history with variant tabs above the table.
func (m HistoryModel) renderNarrowLayout() string {
	var b strings.Builder

	// Variant tabs (horizontal)
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(" " + g.Title + " ")
		}
	}

	// Fall back to arrows when tabs do not fit
	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 {
		tabLine = fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	// Table
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.store == nil || m.loadErr != nil {
		return emptyStyle.Render("Match history is unavailable.")
	}
	if len(m.matches) == 0 {
		return emptyStyle.Render("No matches finished yet.\nPlay one to see it here!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}
