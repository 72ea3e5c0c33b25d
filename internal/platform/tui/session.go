package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connect4/internal/config"
	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4"
	"github.com/vovakirdan/connect4/internal/registry"
	"github.com/vovakirdan/connect4/internal/storage"
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Config   config.Config
	Store    *storage.Store     // Optional; nil disables recording and standings
	Logger   *log.Logger        // Optional; nil uses the default logger
	Renderer *lipgloss.Renderer // Optional; nil uses the default renderer
	Screen   core.RuntimeConfig // Initial terminal size
}

// SessionModel manages the full session flow: menu -> game or standings -> menu.
// It is the top-level model for the menu command and for SSH sessions.
type SessionModel struct {
	opts      SessionOptions
	menu      MenuModel
	game      *GameModel
	standings *StandingsModel
	width     int
	height    int
	lastErr   string
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	m := SessionModel{
		opts:   opts,
		width:  opts.Screen.ScreenW,
		height: opts.Screen.ScreenH,
	}
	m.menu = NewMenuModel(opts.Config.Variant, opts.Renderer)
	m.menu.width, m.menu.height = m.width, m.height
	return m
}

// PlayersFromConfig builds both seats from the configured names and colors.
func PlayersFromConfig(cfg config.Config) [2]connect4.Player {
	return [2]connect4.Player{
		{ID: connect4.Player1, Name: cfg.Players.Player1.Name, Color: cfg.Players.Player1.Color},
		{ID: connect4.Player2, Name: cfg.Players.Player2.Name, Color: cfg.Players.Player2.Color},
	}
}

// recorder hides a nil store behind a nil interface.
func (m SessionModel) recorder() ResultRecorder {
	if m.opts.Store == nil {
		return nil
	}
	return m.opts.Store
}

func (m SessionModel) standingsSource() StandingsSource {
	if m.opts.Store == nil {
		return nil
	}
	return m.opts.Store
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch {
	case m.game != nil:
		return m.updateGame(msg)
	case m.standings != nil:
		return m.updateStandings(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsStandings() {
		standings := NewStandingsModel(m.standingsSource(), "", m.opts.Logger, m.opts.Renderer)
		if m.width > 0 && m.height > 0 {
			next, _ := standings.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
			standings = next.(StandingsModel)
		}
		m.standings = &standings
		m.resetMenu()
		return m, nil
	}

	if selected := m.menu.Selected(); selected != nil {
		m.startGame(*selected)
		m.resetMenu()
		return m, nil
	}

	return m, cmd
}

// startGame opens a board for the chosen variant. The configured board
// size applies only to the configured variant.
func (m *SessionModel) startGame(v registry.Variant) {
	if v.ID == m.opts.Config.Variant && m.opts.Config.HasCustomBoard() {
		v = registry.Custom(m.opts.Config.Board.Height, m.opts.Config.Board.Width)
	}

	game, err := NewGameModel(GameOptions{
		Variant:  v,
		Players:  PlayersFromConfig(m.opts.Config),
		UI:       m.opts.Config.UI,
		Recorder: m.recorder(),
		Logger:   m.opts.Logger,
		Renderer: m.opts.Renderer,
		Screen:   core.RuntimeConfig{ScreenW: m.width, ScreenH: m.height},
	})
	if err != nil {
		m.opts.Logger.Error("could not start game", "variant", v.ID, "error", err)
		m.lastErr = err.Error()
		return
	}
	m.game = &game
	m.lastErr = ""
}

// resetMenu replaces the menu so its selection flags start clear.
func (m *SessionModel) resetMenu() {
	cursor := m.menu.cursor
	m.menu = NewMenuModel(m.opts.Config.Variant, m.opts.Renderer)
	m.menu.cursor = cursor
	m.syncMenuSize()
}

// syncMenuSize applies the session size to the menu, which misses
// resizes while another screen is shown.
func (m *SessionModel) syncMenuSize() {
	m.menu.width, m.menu.height = m.width, m.height
	m.menu.help.Width = m.width
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.syncMenuSize()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateStandings handles updates when showing standings.
func (m SessionModel) updateStandings(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.standings.Update(msg)
	if standings, ok := newModel.(StandingsModel); ok {
		m.standings = &standings
	}

	if m.standings.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.standings.IsGoingBack() {
		m.standings = nil
		m.syncMenuSize()
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.game != nil:
		return m.game.View()
	case m.standings != nil:
		return m.standings.View()
	}

	view := m.menu.View()
	if m.lastErr != "" {
		errStyle := m.opts.Renderer.NewStyle().Foreground(lipgloss.Color("9"))
		view = lipgloss.JoinVertical(lipgloss.Center, view, errStyle.Render(m.lastErr))
	}
	return view
}

// InGame reports whether a board is currently shown.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// InStandings reports whether the standings screen is shown.
func (m SessionModel) InStandings() bool {
	return m.standings != nil
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
