package tui

import (
	"github.com/vovakirdan/connect4/internal/config"
	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4"
)

// Board drawing constants
const (
	cellWidth   = 2   // Columns per board cell: spacer + disc
	cursorRune  = '▼' // Marker above the selected column
	winningRune = '◆' // Disc drawn for the winning run
)

// columnLabels names columns on the board footer.
// Columns past nine keep going with letters.
const columnLabels = "123456789abcdefghijklmnopqrstuvwxyz"

// boardSize returns the screen size needed to draw a height x width board.
// Layout, top to bottom: cursor line, frame top, rows, frame bottom, labels.
func boardSize(height, width int) (w, h int) {
	return width*cellWidth + 3, height + 4
}

// cellX returns the screen column of a board column's disc.
func cellX(col int) int {
	return 2 + col*cellWidth
}

// boardStyle carries the display options used to draw the board.
type boardStyle struct {
	disc         rune
	empty        rune
	highlightWin bool
	colors       [2]core.Color // Indexed by seat
}

// newBoardStyle derives drawing options from the UI config and the players.
// Colors that fail to parse fall back to the terminal default.
func newBoardStyle(ui config.UIConfig, players [2]connect4.Player) boardStyle {
	st := boardStyle{
		disc:         firstRune(ui.Disc, '●'),
		empty:        firstRune(ui.Empty, '·'),
		highlightWin: ui.HighlightWin,
	}
	for i, p := range players {
		if c, err := core.ParseColor(p.Color); err == nil {
			st.colors[i] = c
		}
	}
	return st
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// colorOf returns the color for a player ID.
func (st boardStyle) colorOf(id connect4.PlayerID) core.Color {
	switch id {
	case connect4.Player1:
		return st.colors[0]
	case connect4.Player2:
		return st.colors[1]
	}
	return core.ColorDefault
}

// drawBoard renders a snapshot onto the screen, resizing it to fit.
// A negative cursor hides the column marker.
func drawBoard(s *core.Screen, snap connect4.Snapshot, cursor int, st boardStyle) {
	w, h := boardSize(snap.Height, snap.Width)
	s.Resize(w, h)
	s.Clear()

	if cursor >= 0 && cursor < snap.Width && snap.Status == connect4.StatusInProgress {
		s.SetColored(cellX(cursor), 0, cursorRune, st.colorOf(snap.Current))
	}

	s.DrawBox(core.NewRect(0, 1, w, snap.Height+2), core.ColorFrame)

	for row := range snap.Height {
		for col := range snap.Width {
			x, y := cellX(col), row+2
			owner, ok := snap.Grid[row][col].Owner()
			if !ok {
				s.SetColored(x, y, st.empty, core.ColorDim)
				continue
			}
			r := st.disc
			if st.highlightWin && snap.Highlighted(row, col) {
				r = winningRune
			}
			s.SetColored(x, y, r, st.colorOf(owner))
		}
	}

	for col := range snap.Width {
		label := '?'
		if col < len(columnLabels) {
			label = rune(columnLabels[col])
		}
		c := core.ColorDim
		if col == cursor {
			c = core.ColorHighlight
		}
		s.SetColored(cellX(col), h-1, label, c)
	}
}
