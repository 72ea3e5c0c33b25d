package connect4

import "errors"

var (
	// ErrInvalidDimension is returned by New when a board dimension is not positive.
	ErrInvalidDimension = errors.New("connect4: board dimensions must be positive")

	// ErrInvalidColumn is returned by AttemptPlacement for a column outside the board.
	ErrInvalidColumn = errors.New("connect4: column out of range")

	// ErrInvalidPosition is returned by CellAt for a cell outside the board.
	ErrInvalidPosition = errors.New("connect4: position out of range")

	// ErrGameAlreadyOver is returned by AttemptPlacement once the game is won or tied.
	ErrGameAlreadyOver = errors.New("connect4: game already over")

	// ErrInvariantViolated means the grid no longer matches the game's bookkeeping.
	ErrInvariantViolated = errors.New("connect4: invariant violated")
)
