package game

import (
	"math/rand"
)

// Neighbour offsets, in the order the flood fill visits them: NW, N, NE, W, E, SW, S, SE
var neighborOffsets = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// board is a dense row-major arena of cells
type board struct {
	rows, cols int // in number of cells
	cells      []Cell
}

func newBoard(rows, cols int) *board {
	board := board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for i := range board.cells {
		board.cells[i] = concealedCell(false, false)
	}
	return &board
}

func (board *board) numCells() int {
	return board.rows * board.cols
}

func (board *board) inBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Col >= 0 && pos.Row < board.rows && pos.Col < board.cols
}

func (board *board) index(pos Position) int {
	return pos.Row*board.cols + pos.Col
}

func (board *board) position(idx int) Position {
	return Position{Row: idx / board.cols, Col: idx % board.cols}
}

// cellAt assumes pos is in bounds
func (board *board) cellAt(pos Position) *Cell {
	return &board.cells[board.index(pos)]
}

// neighbor returns the cell in direction dir (an index into neighborOffsets),
// and whether it lies on the board
func (board *board) neighbor(pos Position, dir int) (Position, bool) {
	offset := neighborOffsets[dir]
	next := Position{Row: pos.Row + offset.Row, Col: pos.Col + offset.Col}
	return next, board.inBounds(next)
}

func (board *board) adjacentMines(pos Position) int {
	numMines := 0
	for dir := range neighborOffsets {
		if next, ok := board.neighbor(pos, dir); ok && board.cellAt(next).HasMine() {
			numMines++
		}
	}
	return numMines
}

// placeClassic draws numMines random cells. A draw landing on a cell which
// already holds a mine is dropped, so fewer than numMines may be placed.
func (board *board) placeClassic(rng *rand.Rand, numMines int) int {
	placed := 0
	for i := 0; i < numMines; i++ {
		pos := Position{Row: rng.Intn(board.rows), Col: rng.Intn(board.cols)}
		cell := board.cellAt(pos)
		if !cell.hasMine {
			cell.hasMine = true
			placed++
		}
	}
	return placed
}

// placeExact mines exactly numMines distinct cells
func (board *board) placeExact(rng *rand.Rand, numMines int) int {
	// Store cell indexes, to shuffle and fill mines
	cellIndexes := make([]int, board.numCells())
	for i := range cellIndexes {
		cellIndexes[i] = i
	}

	rng.Shuffle(len(cellIndexes), func(i, j int) {
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	})
	for _, idx := range cellIndexes[:numMines] {
		board.cells[idx].hasMine = true
	}
	return numMines
}

// placeLayout assumes the layout has been validated
func (board *board) placeLayout(layout []Position) int {
	for _, pos := range layout {
		board.cellAt(pos).hasMine = true
	}
	return len(layout)
}

// mines lists every mined cell in row-major order
func (board *board) mines() []Position {
	var mines []Position
	for idx, cell := range board.cells {
		if cell.HasMine() {
			mines = append(mines, board.position(idx))
		}
	}
	return mines
}
