package game

import (
	"strconv"
	"strings"
)

// Snapshot renders the board as text, one line per row:
//
//	#  concealed
//	f  flagged
//	.  revealed, no adjacent mines
//	1-8  revealed, adjacent mine count
//
// Once the game is over, mines are shown as * (or F when flagged).
func (engine *Engine) Snapshot() string {
	if engine.board == nil {
		return ""
	}

	board := engine.board
	showMines := engine.phase.IsOver()

	var builder strings.Builder
	for row := 0; row < board.rows; row++ {
		if row > 0 {
			builder.WriteByte('\n')
		}
		for col := 0; col < board.cols; col++ {
			pos := Position{Row: row, Col: col}
			builder.WriteString(board.serializeCell(pos, showMines))
		}
	}
	return builder.String()
}

func (board *board) serializeCell(pos Position, showMines bool) string {
	cell := board.cellAt(pos)
	switch {
	case cell.IsRevealed():
		if numMines := board.adjacentMines(pos); numMines > 0 {
			return strconv.Itoa(numMines)
		}
		return "."
	case showMines && cell.hasMine:
		if cell.flagged {
			return "F"
		}
		return "*"
	case cell.flagged:
		return "f"
	default:
		return "#"
	}
}
