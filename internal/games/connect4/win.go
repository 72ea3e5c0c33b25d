package connect4

// direction is a (dRow, dCol) step along a run.
type direction struct {
	dy, dx int
}

// Run directions checked from every starting cell.
var directions = [4]direction{
	{0, 1},  // horizontal, rightward
	{1, 0},  // vertical, downward
	{1, 1},  // diagonal, down-right
	{1, -1}, // diagonal, down-left
}

// checkForWin scans every cell for a run of RunLength pieces owned by id.
func (g *Game) checkForWin(id PlayerID) bool {
	_, ok := g.findRun(id)
	return ok
}

// findRun returns the first run owned by id in row-major scan order.
func (g *Game) findRun(id PlayerID) ([]Position, bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			for _, d := range directions {
				if g.runOwnedBy(y, x, d, id) {
					run := make([]Position, RunLength)
					for i := range run {
						run[i] = Position{Row: y + i*d.dy, Col: x + i*d.dx}
					}
					return run, true
				}
			}
		}
	}
	return nil, false
}

// runOwnedBy reports whether the run starting at (y, x) in direction d lies
// fully inside the grid and every cell in it belongs to id.
func (g *Game) runOwnedBy(y, x int, d direction, id PlayerID) bool {
	for i := 0; i < RunLength; i++ {
		ry, rx := y+i*d.dy, x+i*d.dx
		if ry < 0 || ry >= g.height || rx < 0 || rx >= g.width {
			return false
		}
		if !g.grid[ry][rx].OwnedBy(id) {
			return false
		}
	}
	return true
}

// WinningRun returns the cells of the winning run, or nil if nobody has won.
func (g *Game) WinningRun() []Position {
	if g.status != StatusWon {
		return nil
	}
	run, _ := g.findRun(g.winner)
	return run
}
