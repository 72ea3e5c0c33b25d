package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/connect4/internal/config"
	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4"
	"github.com/vovakirdan/connect4/internal/registry"
	"github.com/vovakirdan/connect4/internal/storage"
)

// ResultRecorder stores finished games. *storage.Store satisfies it.
type ResultRecorder interface {
	SaveResult(r storage.MatchResult) (int64, error)
}

// GameOptions configures a GameModel.
type GameOptions struct {
	Variant  registry.Variant
	Players  [2]connect4.Player
	UI       config.UIConfig
	Recorder ResultRecorder     // Optional; nil disables recording
	Logger   *log.Logger        // Optional; nil discards logs
	Renderer *lipgloss.Renderer // Optional; nil uses the default renderer
	Screen   core.RuntimeConfig // Initial terminal size; zero until the first resize

	// Standalone makes Back quit the program instead of returning to a menu.
	Standalone bool
}

// GameModel is the Bubble Tea model for one hot-seat board.
type GameModel struct {
	opts     GameOptions
	game     *connect4.Game
	matchID  string
	screen   *core.Screen
	style    boardStyle
	keys     GameKeyMap
	help     help.Model
	cursor   int
	message  string
	recorded bool // Whether the current game's result has been handed to the recorder
	width    int
	height   int

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model with a fresh game on the given variant.
func NewGameModel(opts GameOptions) (GameModel, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}

	h := help.New()
	h.ShowAll = false

	m := GameModel{
		opts:   opts,
		screen: core.NewScreen(0, 0),
		style:  newBoardStyle(opts.UI, opts.Players),
		keys:   DefaultGameKeyMap(),
		help:   h,
		width:  opts.Screen.ScreenW,
		height: opts.Screen.ScreenH,
	}
	m.help.Width = m.width
	if err := m.newGame(); err != nil {
		return GameModel{}, err
	}
	return m, nil
}

// newGame replaces the board and starts a new match.
func (m *GameModel) newGame() error {
	game, err := connect4.NewVariant(m.opts.Variant, m.opts.Players[0], m.opts.Players[1])
	if err != nil {
		return err
	}
	m.game = game
	m.matchID = uuid.NewString()
	m.cursor = game.Width() / 2
	m.message = ""
	m.recorded = false
	m.keys.Restart.SetEnabled(false)

	m.opts.Logger.Debug("game started",
		"match", m.matchID,
		"variant", m.opts.Variant.ID,
		"size", fmt.Sprintf("%dx%d", game.Height(), game.Width()),
	)
	return nil
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, col := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.opts.Standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionLeft:
		m.cursor = core.Clamp(m.cursor-1, 0, m.game.Width()-1)

	case core.ActionRight:
		m.cursor = core.Clamp(m.cursor+1, 0, m.game.Width()-1)

	case core.ActionDrop:
		m.drop(m.cursor)

	case core.ActionColumn:
		if col < m.game.Width() {
			m.cursor = col
		}
		m.drop(col)

	case core.ActionRestart:
		if m.game.Over() {
			if err := m.newGame(); err != nil {
				m.message = err.Error()
			}
		}
	}

	return m, nil
}

// drop places the current player's piece and updates the status line.
func (m *GameModel) drop(col int) {
	mover := m.game.CurrentPlayer()
	res, err := m.game.AttemptPlacement(col)

	switch {
	case errors.Is(err, connect4.ErrGameAlreadyOver):
		// The board stays on screen until restart; extra drops are ignored.
		return
	case errors.Is(err, connect4.ErrInvalidColumn):
		m.message = fmt.Sprintf("There is no column %d.", col+1)
		return
	case err != nil:
		m.opts.Logger.Error("placement failed", "match", m.matchID, "column", col, "error", err)
		m.message = err.Error()
		return
	}

	switch res.Outcome {
	case connect4.OutcomeColumnFull:
		m.message = fmt.Sprintf("Column %d is full, pick another.", col+1)
	case connect4.OutcomeContinued:
		m.message = ""
	case connect4.OutcomeWon:
		m.message = fmt.Sprintf("%s wins!", mover.Name)
		m.finish(res)
	case connect4.OutcomeTied:
		m.message = "The board is full. It's a tie!"
		m.finish(res)
	}
}

// finish records the result of a completed game, once.
func (m *GameModel) finish(res connect4.Result) {
	m.keys.Restart.SetEnabled(true)
	if m.recorded {
		return
	}
	m.recorded = true

	players := m.game.Players()
	r := storage.MatchResult{
		MatchID: m.matchID,
		Variant: m.opts.Variant.ID,
		Height:  m.game.Height(),
		Width:   m.game.Width(),
		Player1: players[0].Name,
		Player2: players[1].Name,
		Winner:  storage.WinnerNone,
		Moves:   m.game.Moves(),
	}
	if res.Outcome == connect4.OutcomeWon {
		r.Winner = int(res.Winner)
	}

	m.opts.Logger.Info("game finished",
		"match", m.matchID,
		"variant", r.Variant,
		"outcome", res.Outcome,
		"winner", r.WinnerName(),
		"moves", r.Moves,
	)

	if m.opts.Recorder == nil {
		return
	}
	if _, err := m.opts.Recorder.SaveResult(r); err != nil {
		// Recording is best-effort; the finished board stays playable.
		m.opts.Logger.Warn("could not record result", "match", m.matchID, "error", err)
	}
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	r := m.opts.Renderer
	titleStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := r.NewStyle().Foreground(lipgloss.Color("241"))

	drawBoard(m.screen, m.game.Snapshot(), m.cursor, m.style)

	sections := []string{
		titleStyle.Render("C O N N E C T   F O U R"),
		dimStyle.Render(m.opts.Variant.Title),
		"",
		RenderScreen(m.screen, r),
		"",
		m.statusLine(),
	}
	if m.opts.UI.ShowHelp {
		sections = append(sections, "", dimStyle.Render(m.help.View(m.keys)))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return r.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// statusLine shows whose turn it is, or the latest message.
func (m GameModel) statusLine() string {
	r := m.opts.Renderer
	if m.message != "" {
		style := r.NewStyle().Bold(true)
		if winner, ok := m.game.Winner(); ok {
			style = style.Foreground(lipgloss.Color(string(m.style.colorOf(winner.ID))))
		}
		return style.Render(m.message)
	}

	p := m.game.CurrentPlayer()
	name := r.NewStyle().Bold(true).
		Foreground(lipgloss.Color(string(m.style.colorOf(p.ID)))).
		Render(p.Name)
	return fmt.Sprintf("%s to move (%s)", name, string(m.style.disc))
}

// Game returns the game being played.
func (m GameModel) Game() *connect4.Game {
	return m.game
}

// MatchID returns the identifier of the current match.
func (m GameModel) MatchID() string {
	return m.matchID
}

// Cursor returns the selected column.
func (m GameModel) Cursor() int {
	return m.cursor
}

// Message returns the current status message, if any.
func (m GameModel) Message() string {
	return m.message
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunGame runs a single game in the terminal until the user quits.
func RunGame(opts GameOptions) error {
	opts.Standalone = true
	model, err := NewGameModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
