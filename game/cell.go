package game

import "fmt"

// Position addresses a cell by zero-indexed row and column
type Position struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

func (pos Position) String() string {
	return fmt.Sprintf("(%d, %d)", pos.Row, pos.Col)
}

// Cell is either Concealed, carrying its mine and flag bits, or Revealed,
// which carries nothing and never changes again.
type Cell struct {
	state   CellState
	hasMine bool
	flagged bool
}

func concealedCell(hasMine, flagged bool) Cell {
	return Cell{state: Concealed, hasMine: hasMine, flagged: flagged}
}

var revealedCell = Cell{state: Revealed}

func (cell Cell) State() CellState {
	return cell.state
}

func (cell Cell) IsRevealed() bool {
	return cell.state == Revealed
}

// HasMine is always false for a Revealed cell
func (cell Cell) HasMine() bool {
	return cell.state == Concealed && cell.hasMine
}

// IsFlagged is always false for a Revealed cell
func (cell Cell) IsFlagged() bool {
	return cell.state == Concealed && cell.flagged
}

func (cell Cell) String() string {
	if cell.IsRevealed() {
		return "Revealed"
	}
	return fmt.Sprintf("Concealed{hasMine: %t, flagged: %t}", cell.hasMine, cell.flagged)
}
