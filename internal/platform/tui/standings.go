package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/storage"
)

// allVariants is the tab label for standings across every variant.
const allVariants = "all"

// StandingsSource provides tallies for the standings screen.
// *storage.Store satisfies it.
type StandingsSource interface {
	Standings(variant string) ([]storage.Standing, error)
	Variants() ([]string, error)
}

// StandingsKeyMap defines the key bindings for the standings screen.
type StandingsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StandingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StandingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Back, k.Quit},
	}
}

// DefaultStandingsKeyMap returns default key bindings.
func DefaultStandingsKeyMap() StandingsKeyMap {
	return StandingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next board"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev board"),
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

// StandingsModel shows win/loss/tie tallies per player.
type StandingsModel struct {
	source     StandingsSource
	logger     *log.Logger
	renderer   *lipgloss.Renderer
	tabs       []string // allVariants followed by each recorded variant
	tab        int
	standings  []storage.Standing
	table      table.Model
	help       help.Model
	keys       StandingsKeyMap
	width      int
	height     int
	standalone bool
	quitting   bool
	goingBack  bool
}

// NewStandingsModel creates a standings screen.
// A nil source shows an empty table. When variant names a recorded
// variant, that tab is opened first.
func NewStandingsModel(source StandingsSource, variant string, logger *log.Logger, r *lipgloss.Renderer) StandingsModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	if logger == nil {
		logger = log.Default()
	}

	m := StandingsModel{
		source:   source,
		logger:   logger,
		renderer: r,
		tabs:     []string{allVariants},
		keys:     DefaultStandingsKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
	}

	if source != nil {
		variants, err := source.Variants()
		if err != nil {
			logger.Warn("could not list variants", "error", err)
		}
		m.tabs = append(m.tabs, variants...)
	}
	for i, t := range m.tabs {
		if t == variant {
			m.tab = i
		}
	}

	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *StandingsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 18},
		{Title: "W", Width: 5},
		{Title: "L", Width: 5},
		{Title: "T", Width: 5},
		{Title: "Played", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-10, 3)), // Leave room for title, tabs and help
	)

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

// load queries standings for the selected tab.
func (m *StandingsModel) load() {
	m.standings = nil
	if m.source != nil {
		variant := m.tabs[m.tab]
		if variant == allVariants {
			variant = ""
		}
		standings, err := m.source.Standings(variant)
		if err != nil {
			m.logger.Warn("could not load standings", "variant", variant, "error", err)
		}
		m.standings = standings
	}

	rows := make([]table.Row, len(m.standings))
	for i, s := range m.standings {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			fmt.Sprintf("%d", s.Wins),
			fmt.Sprintf("%d", s.Losses),
			fmt.Sprintf("%d", s.Ties),
			fmt.Sprintf("%d", s.Played()),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the standings model.
func (m StandingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the standings screen.
func (m StandingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Next):
			m.tab = (m.tab + 1) % len(m.tabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.tab = (m.tab - 1 + len(m.tabs)) % len(m.tabs)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the standings.
func (m StandingsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	r := m.renderer
	titleStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	tabStyle := r.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	boxStyle := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	helpStyle := r.NewStyle().Foreground(lipgloss.Color("241"))

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(t)
		} else {
			tabs[i] = tabStyle.Render(t)
		}
	}
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(tabLine) > m.width-4 {
		// Just show the current tab with arrows
		tabLine = fmt.Sprintf("< %s >", m.tabs[m.tab])
	}

	var content string
	if len(m.standings) == 0 {
		content = r.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No games recorded yet.\nFinish a game to appear here!")
	} else {
		content = m.table.View()
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("S T A N D I N G S"),
		tabLine,
		"",
		boxStyle.Render(content),
		"",
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// Standings returns the rows currently shown.
func (m StandingsModel) Standings() []storage.Standing {
	return m.standings
}

// Variant returns the selected tab.
func (m StandingsModel) Variant() string {
	return m.tabs[m.tab]
}

// IsGoingBack returns true if user wants to go back to menu.
func (m StandingsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StandingsModel) IsQuitting() bool {
	return m.quitting
}

// RunStandings runs the standings screen on its own.
func RunStandings(source StandingsSource, variant string, logger *log.Logger) error {
	model := NewStandingsModel(source, variant, logger, nil)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
