package connect4

// Snapshot is a detached copy of the game state for renderers and tests.
type Snapshot struct {
	Height  int
	Width   int
	Grid    [][]Cell
	Players [2]Player
	Current PlayerID
	Status  Status
	Winner  PlayerID
	Moves   int
	Last    Position
	Run     []Position
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	grid := make([][]Cell, g.height)
	for y := range grid {
		grid[y] = make([]Cell, g.width)
		copy(grid[y], g.grid[y])
	}

	return Snapshot{
		Height:  g.height,
		Width:   g.width,
		Grid:    grid,
		Players: g.players,
		Current: g.players[g.current].ID,
		Status:  g.status,
		Winner:  g.winner,
		Moves:   g.moves,
		Last:    g.last,
		Run:     g.WinningRun(),
	}
}

// Highlighted reports whether (row, col) is part of the winning run.
func (s Snapshot) Highlighted(row, col int) bool {
	for _, p := range s.Run {
		if p.Row == row && p.Col == col {
			return true
		}
	}
	return false
}
