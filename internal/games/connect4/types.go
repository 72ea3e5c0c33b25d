package connect4

import "fmt"

// PlayerID identifies one of the two seats at the board.
type PlayerID uint8

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// String returns a human-readable name for the seat.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return fmt.Sprintf("PlayerID(%d)", uint8(p))
	}
}

// Player is a seat plus its display attributes.
// Name and Color are opaque to the engine and passed through for rendering.
type Player struct {
	ID    PlayerID
	Name  string
	Color string
}

// Cell is one grid square. The zero value is an empty cell.
type Cell struct {
	occupied bool
	owner    PlayerID
}

// Empty reports whether no piece occupies the cell.
func (c Cell) Empty() bool {
	return !c.occupied
}

// Owner returns the occupying player, or false if the cell is empty.
func (c Cell) Owner() (PlayerID, bool) {
	return c.owner, c.occupied
}

// OwnedBy reports whether the cell holds a piece of the given player.
func (c Cell) OwnedBy(id PlayerID) bool {
	return c.occupied && c.owner == id
}

func occupiedBy(id PlayerID) Cell {
	return Cell{occupied: true, owner: id}
}

// Position is a (row, column) grid coordinate. Row 0 is the top of the board.
type Position struct {
	Row int
	Col int
}

// Status is the lifecycle state of a game.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusTied
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusWon:
		return "won"
	case StatusTied:
		return "tied"
	default:
		return "unknown"
	}
}

// Outcome classifies the result of a placement attempt.
type Outcome int

const (
	OutcomeContinued Outcome = iota
	OutcomeWon
	OutcomeTied
	OutcomeColumnFull
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinued:
		return "continued"
	case OutcomeWon:
		return "won"
	case OutcomeTied:
		return "tied"
	case OutcomeColumnFull:
		return "column full"
	default:
		return "unknown"
	}
}

// Result is returned by AttemptPlacement.
type Result struct {
	Outcome Outcome
	// Winner is set only when Outcome is OutcomeWon.
	Winner PlayerID
	// PlacedAt is valid only when Placed is true.
	PlacedAt Position
	Placed   bool
}
