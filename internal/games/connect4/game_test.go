package connect4

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/connect4/internal/registry"
)

var (
	red    = Player{Name: "Red", Color: "red"}
	yellow = Player{Name: "Yellow", Color: "yellow"}
)

func newTestGame(t *testing.T, height, width int) *Game {
	t.Helper()
	g, err := New(red, yellow, height, width)
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", height, width, err)
	}
	return g
}

// play drops pieces into the given columns, failing on any error or non-placement.
func play(t *testing.T, g *Game, cols ...int) Result {
	t.Helper()
	var res Result
	for i, col := range cols {
		var err error
		res, err = g.AttemptPlacement(col)
		if err != nil {
			t.Fatalf("move %d (col %d): unexpected error: %v", i+1, col, err)
		}
		if !res.Placed {
			t.Fatalf("move %d (col %d): piece was not placed (outcome %v)", i+1, col, res.Outcome)
		}
	}
	return res
}

// setGrid loads a board from rows of '.', '1' and '2', top row first.
func setGrid(t *testing.T, g *Game, rows ...string) {
	t.Helper()
	if len(rows) != g.height {
		t.Fatalf("setGrid: got %d rows, board has %d", len(rows), g.height)
	}
	g.moves = 0
	for y, row := range rows {
		if len(row) != g.width {
			t.Fatalf("setGrid: row %d has %d cells, board has %d", y, len(row), g.width)
		}
		for x, ch := range row {
			switch ch {
			case '.':
				g.grid[y][x] = Cell{}
			case '1':
				g.grid[y][x] = occupiedBy(Player1)
				g.moves++
			case '2':
				g.grid[y][x] = occupiedBy(Player2)
				g.moves++
			default:
				t.Fatalf("setGrid: bad cell %q", ch)
			}
		}
	}
}

var cmpCells = cmp.AllowUnexported(Cell{})

func TestNewInvalidDimension(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
	}{
		{"zero height", 0, 7},
		{"zero width", 6, 0},
		{"negative height", -1, 7},
		{"negative width", 6, -3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(red, yellow, tc.height, tc.width)
			if !errors.Is(err, ErrInvalidDimension) {
				t.Errorf("New(%d, %d) error = %v, expected ErrInvalidDimension", tc.height, tc.width, err)
			}
			if g != nil {
				t.Error("New should not return a game on error")
			}
		})
	}
}

func TestNewInitialState(t *testing.T) {
	g := NewClassic(red, yellow)

	if g.Height() != 6 || g.Width() != 7 {
		t.Errorf("board = %dx%d, expected 6x7", g.Height(), g.Width())
	}
	if g.Status() != StatusInProgress {
		t.Errorf("Status() = %v, expected in progress", g.Status())
	}
	if cur := g.CurrentPlayer(); cur.ID != Player1 || cur.Name != "Red" {
		t.Errorf("CurrentPlayer() = %+v, expected Red as Player1", cur)
	}
	players := g.Players()
	if players[0].ID != Player1 || players[1].ID != Player2 {
		t.Errorf("player IDs = %v, %v; expected Player1, Player2", players[0].ID, players[1].ID)
	}
	if players[1].Color != "yellow" {
		t.Errorf("player 2 color = %q, expected pass-through \"yellow\"", players[1].Color)
	}
	if _, ok := g.Winner(); ok {
		t.Error("new game should have no winner")
	}
	if _, ok := g.LastMove(); ok {
		t.Error("new game should have no last move")
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, err := g.CellAt(y, x)
			if err != nil {
				t.Fatalf("CellAt(%d, %d) failed: %v", y, x, err)
			}
			if !c.Empty() {
				t.Errorf("cell (%d, %d) should be empty", y, x)
			}
		}
	}
}

func TestNewVariant(t *testing.T) {
	v, err := registry.Lookup("wide")
	if err != nil {
		t.Fatalf("Lookup(wide) failed: %v", err)
	}
	g, err := NewVariant(v, red, yellow)
	if err != nil {
		t.Fatalf("NewVariant failed: %v", err)
	}
	if g.Height() != 6 || g.Width() != 9 {
		t.Errorf("wide board = %dx%d, expected 6x9", g.Height(), g.Width())
	}

	if _, err := NewVariant(registry.Variant{ID: "broken"}, red, yellow); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("NewVariant(0x0) error = %v, expected ErrInvalidDimension", err)
	}
}

func TestGravityFillsBottomFirst(t *testing.T) {
	g := NewClassic(red, yellow)

	for i := 0; i < g.Height(); i++ {
		res := play(t, g, 3)
		want := Position{Row: g.Height() - 1 - i, Col: 3}
		if res.PlacedAt != want {
			t.Errorf("placement %d landed at %+v, expected %+v", i+1, res.PlacedAt, want)
		}
	}
}

func TestColumnFullLeavesStateUnchanged(t *testing.T) {
	g := NewClassic(red, yellow)
	play(t, g, 0, 0, 0, 0, 0, 0)

	before := g.Snapshot()
	res, err := g.AttemptPlacement(0)
	if err != nil {
		t.Fatalf("AttemptPlacement on full column returned error: %v", err)
	}
	if res.Outcome != OutcomeColumnFull {
		t.Errorf("Outcome = %v, expected column full", res.Outcome)
	}
	if res.Placed {
		t.Error("Placed should be false for a full column")
	}

	if diff := cmp.Diff(before, g.Snapshot(), cmpCells); diff != "" {
		t.Errorf("state changed after full-column attempt (-before +after):\n%s", diff)
	}
}

func TestCurrentPlayerAlternates(t *testing.T) {
	g := NewClassic(red, yellow)
	want := []PlayerID{Player2, Player1, Player2, Player1}

	for i, col := range []int{0, 1, 2, 3} {
		res := play(t, g, col)
		if res.Outcome != OutcomeContinued {
			t.Fatalf("move %d outcome = %v, expected continued", i+1, res.Outcome)
		}
		if got := g.CurrentPlayer().ID; got != want[i] {
			t.Errorf("after move %d current = %v, expected %v", i+1, got, want[i])
		}
	}
}

func TestWins(t *testing.T) {
	tests := []struct {
		name  string
		moves []int
		last  Position
		run   []Position
	}{
		{
			name:  "horizontal",
			moves: []int{0, 0, 1, 1, 2, 2, 3},
			last:  Position{5, 3},
			run:   []Position{{5, 0}, {5, 1}, {5, 2}, {5, 3}},
		},
		{
			name:  "vertical",
			moves: []int{0, 1, 0, 1, 0, 1, 0},
			last:  Position{2, 0},
			run:   []Position{{2, 0}, {3, 0}, {4, 0}, {5, 0}},
		},
		{
			name:  "diagonal down-right",
			moves: []int{0, 1, 1, 2, 3, 2, 2, 3, 6, 3, 3},
			last:  Position{2, 3},
			run:   []Position{{2, 3}, {3, 2}, {4, 1}, {5, 0}},
		},
		{
			name:  "diagonal down-left",
			moves: []int{6, 5, 5, 4, 3, 4, 4, 3, 0, 3, 3},
			last:  Position{2, 3},
			run:   []Position{{2, 3}, {3, 4}, {4, 5}, {5, 6}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewClassic(red, yellow)
			res := play(t, g, tc.moves...)

			if res.Outcome != OutcomeWon || res.Winner != Player1 {
				t.Fatalf("final result = %+v, expected Player1 win", res)
			}
			if res.PlacedAt != tc.last {
				t.Errorf("PlacedAt = %+v, expected %+v", res.PlacedAt, tc.last)
			}
			if g.Status() != StatusWon {
				t.Errorf("Status() = %v, expected won", g.Status())
			}
			if w, ok := g.Winner(); !ok || w.Name != "Red" {
				t.Errorf("Winner() = %+v, %v; expected Red", w, ok)
			}
			if g.CurrentPlayer().ID != Player1 {
				t.Error("current player must not change after a winning move")
			}
			if diff := cmp.Diff(tc.run, g.WinningRun()); diff != "" {
				t.Errorf("WinningRun() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNoPlacementAfterWin(t *testing.T) {
	g := NewClassic(red, yellow)
	play(t, g, 0, 1, 0, 1, 0, 1, 0)
	before := g.Snapshot()

	for _, col := range []int{2, -1, 99} {
		if _, err := g.AttemptPlacement(col); !errors.Is(err, ErrGameAlreadyOver) {
			t.Errorf("AttemptPlacement(%d) after win error = %v, expected ErrGameAlreadyOver", col, err)
		}
	}
	if diff := cmp.Diff(before, g.Snapshot(), cmpCells); diff != "" {
		t.Errorf("state changed after game over (-before +after):\n%s", diff)
	}
	if cols := g.PlayableColumns(); cols != nil {
		t.Errorf("PlayableColumns() = %v after win, expected nil", cols)
	}
}

func TestTieOnSmallBoard(t *testing.T) {
	// A 3x3 board cannot hold a run of four.
	g := newTestGame(t, 3, 3)
	play(t, g, 0, 1, 2, 0, 1, 2, 0, 1)

	res := play(t, g, 2)
	if res.Outcome != OutcomeTied {
		t.Fatalf("final outcome = %v, expected tied", res.Outcome)
	}
	if g.Status() != StatusTied {
		t.Errorf("Status() = %v, expected tied", g.Status())
	}
	if g.CurrentPlayer().ID != Player1 {
		t.Errorf("current player changed after the tying move")
	}
	if _, err := g.AttemptPlacement(0); !errors.Is(err, ErrGameAlreadyOver) {
		t.Errorf("AttemptPlacement after tie error = %v, expected ErrGameAlreadyOver", err)
	}
}

func TestTieOnClassicBoard(t *testing.T) {
	g := NewClassic(red, yellow)
	// Pairs of columns alternate owners row by row; no run exceeds two.
	setGrid(t, g,
		"112211.",
		"2211221",
		"1122112",
		"2211221",
		"1122112",
		"2211221",
	)
	g.current = 1

	res := play(t, g, 6)
	if res.Outcome != OutcomeTied {
		t.Fatalf("outcome = %v, expected tied", res.Outcome)
	}
	if res.PlacedAt != (Position{0, 6}) {
		t.Errorf("PlacedAt = %+v, expected top-right corner", res.PlacedAt)
	}
	if g.Moves() != 42 {
		t.Errorf("Moves() = %d, expected 42", g.Moves())
	}
}

func TestTieCheckedBeforeWin(t *testing.T) {
	g := newTestGame(t, 4, 4)
	setGrid(t, g,
		".121",
		"2112",
		"2211",
		"2121",
	)
	g.current = 1

	res := play(t, g, 0)
	if res.Outcome != OutcomeTied {
		t.Errorf("outcome = %v, expected tied when the last cell also completes a run", res.Outcome)
	}
	if g.Status() != StatusTied {
		t.Errorf("Status() = %v, expected tied", g.Status())
	}
	if !g.checkForWin(Player2) {
		t.Error("board should contain a Player2 run; tie must take precedence")
	}
	if run := g.WinningRun(); run != nil {
		t.Errorf("WinningRun() = %v for a tied game, expected nil", run)
	}
}

func TestInvalidColumn(t *testing.T) {
	sizes := []struct{ h, w int }{{1, 1}, {6, 7}, {3, 10}}

	for _, sz := range sizes {
		g := newTestGame(t, sz.h, sz.w)
		for _, col := range []int{-1, -100, sz.w, sz.w + 5} {
			_, err := g.AttemptPlacement(col)
			if !errors.Is(err, ErrInvalidColumn) {
				t.Errorf("%dx%d: AttemptPlacement(%d) error = %v, expected ErrInvalidColumn", sz.h, sz.w, col, err)
			}
		}
		if g.Moves() != 0 || g.CurrentPlayer().ID != Player1 {
			t.Errorf("%dx%d: invalid columns must not change state", sz.h, sz.w)
		}
	}
}

func TestCellAtOutOfRange(t *testing.T) {
	g := NewClassic(red, yellow)
	for _, p := range []Position{{-1, 0}, {0, -1}, {6, 0}, {0, 7}} {
		if _, err := g.CellAt(p.Row, p.Col); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("CellAt(%d, %d) error = %v, expected ErrInvalidPosition", p.Row, p.Col, err)
		}
	}

	play(t, g, 4)
	c, err := g.CellAt(5, 4)
	if err != nil {
		t.Fatalf("CellAt(5, 4) failed: %v", err)
	}
	if owner, ok := c.Owner(); !ok || owner != Player1 {
		t.Errorf("CellAt(5, 4).Owner() = %v, %v; expected Player1", owner, ok)
	}
	if last, ok := g.LastMove(); !ok || last != (Position{5, 4}) {
		t.Errorf("LastMove() = %+v, %v; expected (5, 4)", last, ok)
	}
}

func TestPlayableColumns(t *testing.T) {
	g := newTestGame(t, 2, 3)
	play(t, g, 1, 1)

	if diff := cmp.Diff([]int{0, 2}, g.PlayableColumns()); diff != "" {
		t.Errorf("PlayableColumns() mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	g := NewClassic(red, yellow)
	play(t, g, 0)

	snap := g.Snapshot()
	snap.Grid[5][0] = Cell{}
	snap.Grid[0][0] = occupiedBy(Player2)

	if c, _ := g.CellAt(5, 0); c.Empty() {
		t.Error("mutating a snapshot cleared a game cell")
	}
	if c, _ := g.CellAt(0, 0); !c.Empty() {
		t.Error("mutating a snapshot filled a game cell")
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := NewClassic(red, yellow)
		prev := g.Snapshot()

		for !g.Over() {
			col := rng.Intn(g.Width())
			res, err := g.AttemptPlacement(col)
			if err != nil {
				t.Fatalf("seed %d: unexpected error: %v", seed, err)
			}
			cur := g.Snapshot()

			// Occupied cells never change.
			for y := range prev.Grid {
				for x := range prev.Grid[y] {
					if !prev.Grid[y][x].Empty() && prev.Grid[y][x] != cur.Grid[y][x] {
						t.Fatalf("seed %d: cell (%d, %d) changed after occupation", seed, y, x)
					}
				}
			}

			switch res.Outcome {
			case OutcomeColumnFull:
				if cur.Moves != prev.Moves || cur.Current != prev.Current {
					t.Fatalf("seed %d: full column changed state", seed)
				}
			case OutcomeContinued:
				if cur.Current == prev.Current {
					t.Fatalf("seed %d: current player did not alternate", seed)
				}
			case OutcomeWon, OutcomeTied:
				if cur.Current != prev.Current {
					t.Fatalf("seed %d: current player changed on terminal move", seed)
				}
			}
			prev = cur
		}
	}
}
