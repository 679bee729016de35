package random

import (
	"math/rand"

	"github.com/they4kman/minesweep/game"
)

// Director reveals concealed, unflagged cells in a random order
type Director struct {
	Seed int64

	engine *game.Engine
	cells  []game.Position
}

func (director *Director) Init(engine *game.Engine) {
	director.engine = engine
	director.cells = make([]game.Position, 0, engine.Rows()*engine.Cols())
	for row := 0; row < engine.Rows(); row++ {
		for col := 0; col < engine.Cols(); col++ {
			director.cells = append(director.cells, game.Position{Row: row, Col: col})
		}
	}

	rng := rand.New(rand.NewSource(director.Seed))
	rng.Shuffle(len(director.cells), func(i, j int) {
		director.cells[i], director.cells[j] = director.cells[j], director.cells[i]
	})
}

func (director *Director) Act() bool {
	for len(director.cells) > 0 {
		pos := director.cells[0]
		director.cells = director.cells[1:]

		cell, err := director.engine.CellAt(pos.Row, pos.Col)
		if err != nil || cell.IsRevealed() || cell.IsFlagged() {
			continue
		}

		if err := director.engine.Reveal(pos.Row, pos.Col); err != nil {
			game.Log.WithError(err).Warn("director reveal failed")
			return false
		}
		return true
	}
	return false
}
