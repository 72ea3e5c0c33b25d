package tui

import (
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/connect4/internal/config"
	"github.com/vovakirdan/connect4/internal/storage"
)

func newTestSession(t *testing.T, cfg config.Config) SessionModel {
	t.Helper()
	return NewSessionModel(SessionOptions{
		Config: cfg,
		Logger: log.New(io.Discard),
	})
}

func step(t *testing.T, m SessionModel, msgs ...tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update() returned %T, expected SessionModel", next)
		}
		m = sm
	}
	return m, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t, config.DefaultConfig())
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	// Variants are listed by ID: classic, small, ...
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40}, down, enter)
	if !m.InGame() {
		t.Fatal("Enter on the menu should start a game")
	}
	if got := m.game.opts.Variant.ID; got != "small" {
		t.Errorf("started variant %q, expected small", got)
	}
	if m.game.width != 100 {
		t.Errorf("game width = %d, expected the session size", m.game.width)
	}

	m, _ = step(t, m, runeKey('1'))
	if m.game.Game().Moves() != 1 {
		t.Errorf("keys should reach the game, Moves() = %d", m.game.Game().Moves())
	}

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.InGame() || cmd != nil {
		t.Fatalf("Esc should return to the menu without quitting, InGame=%v", m.InGame())
	}
	if m.menu.cursor != 1 {
		t.Errorf("menu cursor = %d, expected it kept on small", m.menu.cursor)
	}

	// The menu must be usable again after coming back.
	m, _ = step(t, m, enter)
	if !m.InGame() {
		t.Error("selecting again should start another game")
	}
}

func TestSessionMenuFollowsResizeDuringGame(t *testing.T) {
	m := newTestSession(t, config.DefaultConfig())
	m, _ = step(t, m,
		tea.WindowSizeMsg{Width: 80, Height: 24},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.WindowSizeMsg{Width: 120, Height: 50},
		tea.KeyMsg{Type: tea.KeyEsc},
	)

	if m.InGame() {
		t.Fatal("Esc should return to the menu")
	}
	if m.menu.width != 120 || m.menu.height != 50 {
		t.Errorf("menu size = %dx%d, expected 120x50", m.menu.width, m.menu.height)
	}
	if m.menu.help.Width != 120 {
		t.Errorf("menu help width = %d, expected 120", m.menu.help.Width)
	}

	m, _ = step(t, m,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.WindowSizeMsg{Width: 90, Height: 30},
		runeKey('b'),
	)
	if m.menu.width != 90 || m.menu.height != 30 {
		t.Errorf("menu size after standings = %dx%d, expected 90x30", m.menu.width, m.menu.height)
	}
}

func TestSessionCustomBoardAppliesToConfiguredVariant(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Board = config.BoardConfig{Height: 5, Width: 5}

	m := newTestSession(t, cfg)
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.InGame() {
		t.Fatal("expected a game")
	}
	g := m.game.Game()
	if g.Height() != 5 || g.Width() != 5 {
		t.Errorf("board = %dx%d, expected configured 5x5", g.Height(), g.Width())
	}
}

func TestSessionStandingsWithoutStore(t *testing.T) {
	m := newTestSession(t, config.DefaultConfig())
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyTab})

	if !m.InStandings() {
		t.Fatal("Tab should open standings")
	}
	if len(m.standings.Standings()) != 0 {
		t.Errorf("standings without a store = %v, expected none", m.standings.Standings())
	}

	m, _ = step(t, m, runeKey('b'))
	if m.InStandings() {
		t.Error("b should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t, config.DefaultConfig())
	m, cmd := step(t, m, runeKey('q'))
	if cmd == nil || m.View() != "" {
		t.Error("q on the menu should quit")
	}

	m = newTestSession(t, config.DefaultConfig())
	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.quitting {
		t.Error("ctrl+c in a game should quit the session")
	}
}

func TestSessionConfigUsesSSHUser(t *testing.T) {
	cfg := sessionConfig(config.DefaultConfig(), "alice")
	if cfg.Players.Player1.Name != "alice" {
		t.Errorf("Player1.Name = %q, expected alice", cfg.Players.Player1.Name)
	}

	custom := config.DefaultConfig()
	custom.Players.Player1.Name = "Zed"
	if got := sessionConfig(custom, "alice").Players.Player1.Name; got != "Zed" {
		t.Errorf("configured name replaced: got %q", got)
	}

	if got := sessionConfig(config.DefaultConfig(), "").Players.Player1.Name; got != "Red" {
		t.Errorf("anonymous session name = %q, expected Red", got)
	}
}

// fakeStandings serves canned tallies.
type fakeStandings struct {
	byVariant map[string][]storage.Standing
	err       error
}

func (f fakeStandings) Standings(variant string) ([]storage.Standing, error) {
	return f.byVariant[variant], f.err
}

func (f fakeStandings) Variants() ([]string, error) {
	return []string{"classic", "wide"}, f.err
}

func TestStandingsModelTabs(t *testing.T) {
	src := fakeStandings{byVariant: map[string][]storage.Standing{
		"":        {{Player: "Ann", Wins: 3}, {Player: "Bob", Losses: 3}},
		"classic": {{Player: "Ann", Wins: 2}},
		"wide":    {{Player: "Bob", Ties: 1}},
	}}

	m := NewStandingsModel(src, "", log.New(io.Discard), nil)
	if m.Variant() != allVariants || len(m.Standings()) != 2 {
		t.Fatalf("initial tab %q with %d rows, expected all with 2", m.Variant(), len(m.Standings()))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(StandingsModel)
	if diff := cmp.Diff([]storage.Standing{{Player: "Ann", Wins: 2}}, m.Standings()); diff != "" {
		t.Errorf("classic standings mismatch (-want +got):\n%s", diff)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(StandingsModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(StandingsModel)
	if m.Variant() != "wide" {
		t.Errorf("tab after wrapping back = %q, expected wide", m.Variant())
	}

	opened := NewStandingsModel(src, "wide", log.New(io.Discard), nil)
	if opened.Variant() != "wide" {
		t.Errorf("requested tab = %q, expected wide", opened.Variant())
	}
}

func TestStandingsModelSourceError(t *testing.T) {
	src := fakeStandings{err: errors.New("locked")}
	m := NewStandingsModel(src, "", log.New(io.Discard), nil)

	if len(m.Standings()) != 0 {
		t.Errorf("rows on error = %v, expected none", m.Standings())
	}
	if m.View() == "" {
		t.Error("View() should still render on a source error")
	}
}
