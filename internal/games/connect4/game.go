// Package connect4 implements the Connect Four rules engine: gravity placement,
// turn sequencing, and four-in-a-row / full-board detection.
// It has no rendering or input code; the platform layer drives it.
package connect4

import (
	"fmt"

	"github.com/vovakirdan/connect4/internal/registry"
)

// Default board size for the classic game.
const (
	DefaultHeight = 6
	DefaultWidth  = 7
)

// RunLength is the number of aligned pieces needed to win.
const RunLength = 4

// Game owns the grid, both players, the turn, and the game status.
// A Game is not safe for concurrent use; each session owns its own.
type Game struct {
	height  int
	width   int
	grid    [][]Cell
	players [2]Player
	current int // index into players
	status  Status
	winner  PlayerID
	moves   int
	last    Position
}

// New creates a game between p1 and p2 on a height x width board.
// Player IDs are assigned by seat: p1 becomes Player1 and moves first.
func New(p1, p2 Player, height, width int) (*Game, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, height, width)
	}

	p1.ID = Player1
	p2.ID = Player2

	g := &Game{
		height:  height,
		width:   width,
		players: [2]Player{p1, p2},
		last:    Position{Row: -1, Col: -1},
	}
	g.grid = make([][]Cell, height)
	for y := range g.grid {
		g.grid[y] = make([]Cell, width)
	}
	return g, nil
}

// NewClassic creates a game on the standard 6x7 board.
func NewClassic(p1, p2 Player) *Game {
	g, err := New(p1, p2, DefaultHeight, DefaultWidth)
	if err != nil {
		// Unreachable with the constant dimensions above.
		panic(err)
	}
	return g
}

// NewVariant creates a game sized by a registered variant.
func NewVariant(v registry.Variant, p1, p2 Player) (*Game, error) {
	g, err := New(p1, p2, v.Height, v.Width)
	if err != nil {
		return nil, fmt.Errorf("variant %q: %w", v.ID, err)
	}
	return g, nil
}

// AttemptPlacement drops the current player's piece into col.
//
// A finished game rejects every call with ErrGameAlreadyOver, before the
// column is validated. A full column is not an error: the result reports
// OutcomeColumnFull and the game is left untouched.
func (g *Game) AttemptPlacement(col int) (Result, error) {
	if g.status != StatusInProgress {
		return Result{}, ErrGameAlreadyOver
	}
	if col < 0 || col >= g.width {
		return Result{}, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidColumn, col, g.width)
	}

	row, ok := g.dropRow(col)
	if !ok {
		return Result{Outcome: OutcomeColumnFull}, nil
	}
	if !g.grid[row][col].Empty() {
		return Result{}, fmt.Errorf("%w: cell (%d, %d) already occupied", ErrInvariantViolated, row, col)
	}

	mover := g.players[g.current].ID
	g.grid[row][col] = occupiedBy(mover)
	g.moves++
	g.last = Position{Row: row, Col: col}

	res := Result{PlacedAt: g.last, Placed: true}

	// Tie is evaluated before win, so a last-cell placement that also
	// completes a run reports a tie.
	if g.full() {
		g.status = StatusTied
		res.Outcome = OutcomeTied
		return res, nil
	}

	if g.checkForWin(mover) {
		g.status = StatusWon
		g.winner = mover
		res.Outcome = OutcomeWon
		res.Winner = mover
		return res, nil
	}

	g.current = 1 - g.current
	res.Outcome = OutcomeContinued
	return res, nil
}

// dropRow returns the lowest free row in col.
func (g *Game) dropRow(col int) (int, bool) {
	for y := g.height - 1; y >= 0; y-- {
		if g.grid[y][col].Empty() {
			return y, true
		}
	}
	return 0, false
}

// full reports whether every cell is occupied.
func (g *Game) full() bool {
	return g.moves >= g.height*g.width
}

// CurrentPlayer returns the player to move, or the player who made the
// final move once the game is over.
func (g *Game) CurrentPlayer() Player {
	return g.players[g.current]
}

// Players returns both players in seat order.
func (g *Game) Players() [2]Player {
	return g.players
}

// Player returns the player seated as id.
func (g *Game) Player(id PlayerID) (Player, bool) {
	for _, p := range g.players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// Status returns the game status.
func (g *Game) Status() Status {
	return g.status
}

// Over reports whether the game has reached a terminal status.
func (g *Game) Over() bool {
	return g.status != StatusInProgress
}

// Winner returns the winning player when the status is StatusWon.
func (g *Game) Winner() (Player, bool) {
	if g.status != StatusWon {
		return Player{}, false
	}
	return g.Player(g.winner)
}

// CellAt returns the cell at (row, col).
func (g *Game) CellAt(row, col int) (Cell, error) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return Cell{}, fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrInvalidPosition, row, col, g.height, g.width)
	}
	return g.grid[row][col], nil
}

// Height returns the number of rows.
func (g *Game) Height() int { return g.height }

// Width returns the number of columns.
func (g *Game) Width() int { return g.width }

// Moves returns the number of pieces placed so far.
func (g *Game) Moves() int { return g.moves }

// LastMove returns where the most recent piece landed.
func (g *Game) LastMove() (Position, bool) {
	return g.last, g.moves > 0
}

// PlayableColumns returns the columns that still have a free cell,
// or nil once the game is over.
func (g *Game) PlayableColumns() []int {
	if g.Over() {
		return nil
	}
	cols := make([]int, 0, g.width)
	for x := 0; x < g.width; x++ {
		if g.grid[0][x].Empty() {
			cols = append(cols, x)
		}
	}
	return cols
}
