package constraint

import (
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"sort"
	"strings"

	"github.com/they4kman/minesweep/director/random"
	"github.com/they4kman/minesweep/game"
	"github.com/they4kman/minesweep/util/collections"
)

// Director plays by deduction: each revealed number constrains how many of
// its concealed neighbours are mines. Certain mines are flagged and certain
// safe cells revealed; failing that it guesses the least risky cell, and
// failing that, a random one.
type Director struct {
	Seed int64

	engine   *game.Engine
	rand     *rand.Rand
	fallback *random.Director

	observations       []*Observation
	observationsByCell map[game.Position][]*Observation
}

// Observation states that exactly numMines of cells hold mines
type Observation struct {
	origin   *game.Position
	numMines int
	cells    collections.Set[game.Position]
}

func (observation Observation) String() string {
	cells := make([]string, 0, len(observation.cells))
	for cell := range observation.cells {
		cells = append(cells, cell.String())
	}
	sort.Strings(cells)

	originRepr := "?"
	if observation.origin != nil {
		originRepr = observation.origin.String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, strings.Join(cells, ", "))
}

func (observation Observation) MineProbability() float32 {
	return float32(observation.numMines) / float32(len(observation.cells))
}

func (director *Director) Init(engine *game.Engine) {
	director.engine = engine
	director.rand = rand.New(rand.NewSource(director.Seed))

	director.fallback = &random.Director{Seed: director.Seed}
	director.fallback.Init(engine)
}

func (director *Director) Act() bool {
	director.observe()

	actors := []func() bool{
		director.actDeliberate,
		director.actLowestProbability,
		director.fallback.Act,
	}
	for _, actor := range actors {
		if actor() {
			return true
		}
	}
	return false
}

// observe rebuilds every observation from the numbers currently on the board
func (director *Director) observe() {
	director.observations = nil
	director.observationsByCell = make(map[game.Position][]*Observation)

	for row := 0; row < director.engine.Rows(); row++ {
		for col := 0; col < director.engine.Cols(); col++ {
			director.cellRevealed(game.Position{Row: row, Col: col})
		}
	}

	for i := 0; i < 4; i++ {
		director.simplifyObservations()
	}
}

func (director *Director) cellRevealed(pos game.Position) {
	cell, err := director.engine.CellAt(pos.Row, pos.Col)
	if err != nil || !cell.IsRevealed() {
		return
	}
	numMines, err := director.engine.AdjacentMines(pos.Row, pos.Col)
	if err != nil || numMines == 0 {
		return
	}

	origin := pos
	observation := Observation{
		origin:   &origin,
		numMines: numMines,
		cells:    make(collections.Set[game.Position]),
	}

	for _, neighborPos := range director.neighbors(pos) {
		neighbor, _ := director.engine.CellAt(neighborPos.Row, neighborPos.Col)
		if neighbor.IsRevealed() {
			continue
		}
		if neighbor.IsFlagged() {
			observation.numMines--
		} else {
			observation.cells.Add(neighborPos)
		}
	}

	director.addObservation(&observation)
}

func (director *Director) neighbors(pos game.Position) []game.Position {
	neighbors := make([]game.Position, 0, 8)
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			next := game.Position{Row: pos.Row + dRow, Col: pos.Col + dCol}
			if next == pos || next.Row < 0 || next.Col < 0 || next.Row >= director.engine.Rows() || next.Col >= director.engine.Cols() {
				continue
			}
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

func (director *Director) simplifyObservations() {
	for _, observation := range director.observations {
		visited := make(map[*Observation]struct{})

		for cell := range observation.cells {
			for _, intersectingObs := range director.observationsByCell[cell] {
				if intersectingObs == observation {
					continue
				}
				if _, alreadyVisited := visited[intersectingObs]; alreadyVisited {
					continue
				}
				visited[intersectingObs] = struct{}{}

				sharedCells, isSubset := observation.cells.IntersectionEx(intersectingObs.cells)

				if isSubset {
					director.addObservation(&Observation{
						numMines: intersectingObs.numMines - observation.numMines,
						cells:    intersectingObs.cells.Difference(observation.cells),
					})
				} else if observation.numMines == 1 && len(sharedCells) > 1 {
					// At most one mine hides in the shared cells, so the rest
					// of intersectingObs may be forced full of mines
					leftOnlyCells := intersectingObs.cells.Difference(sharedCells)
					occludedMines := intersectingObs.numMines - observation.numMines

					if occludedMines == len(leftOnlyCells) {
						director.addObservation(&Observation{
							numMines: occludedMines,
							cells:    leftOnlyCells,
						})
					}
				}
			}
		}
	}
}

func (director *Director) addObservation(observation *Observation) {
	// Don't add vacuous or contradictory observations
	if len(observation.cells) == 0 || observation.numMines < 0 || observation.numMines > len(observation.cells) {
		return
	}

	for cell := range observation.cells {
		for _, otherObs := range director.observationsByCell[cell] {
			// Don't add duplicates
			if reflect.DeepEqual(observation.cells, otherObs.cells) {
				return
			}
		}
	}

	for cell := range observation.cells {
		director.observationsByCell[cell] = append(director.observationsByCell[cell], observation)
	}
	director.observations = append(director.observations, observation)
}

// actDeliberate flags every certain mine and reveals every certain safe cell
func (director *Director) actDeliberate() bool {
	acted := false

	for _, observation := range director.observations {
		switch {
		case observation.numMines == len(observation.cells):
			for cell := range observation.cells {
				acted = director.flag(cell) || acted
			}
		case observation.numMines == 0:
			for cell := range observation.cells {
				acted = director.reveal(cell) || acted
			}
		}

		if director.engine.Phase().IsOver() {
			break
		}
	}

	if acted {
		game.Log.WithField("observations", len(director.observations)).Debug("director acted deliberately")
	}
	return acted
}

func (director *Director) actLowestProbability() bool {
	// Each cell takes the most pessimistic estimate covering it
	cellProbabilities := make(map[game.Position]float32)
	for _, observation := range director.observations {
		probability := observation.MineProbability()
		for cell := range observation.cells {
			if pastProbability, ok := cellProbabilities[cell]; !ok || probability > pastProbability {
				cellProbabilities[cell] = probability
			}
		}
	}

	lowestProbability := float32(math.Inf(1))
	var lowestProbabilityCells []game.Position
	for cell, probability := range cellProbabilities {
		if probability < lowestProbability {
			lowestProbability = probability
			lowestProbabilityCells = lowestProbabilityCells[:0]
		}
		if probability == lowestProbability {
			lowestProbabilityCells = append(lowestProbabilityCells, cell)
		}
	}
	if len(lowestProbabilityCells) == 0 {
		return false
	}

	sort.Slice(lowestProbabilityCells, func(i, j int) bool {
		a, b := lowestProbabilityCells[i], lowestProbabilityCells[j]
		return a.Row < b.Row || (a.Row == b.Row && a.Col < b.Col)
	})
	director.rand.Shuffle(len(lowestProbabilityCells), func(i, j int) {
		lowestProbabilityCells[i], lowestProbabilityCells[j] = lowestProbabilityCells[j], lowestProbabilityCells[i]
	})

	game.Log.WithField("probability", lowestProbability).Debug("director guessing")
	return director.reveal(lowestProbabilityCells[0])
}

func (director *Director) flag(pos game.Position) bool {
	cell, err := director.engine.CellAt(pos.Row, pos.Col)
	if err != nil || cell.IsRevealed() || cell.IsFlagged() {
		return false
	}
	return director.engine.ToggleFlag(pos.Row, pos.Col) == nil
}

func (director *Director) reveal(pos game.Position) bool {
	cell, err := director.engine.CellAt(pos.Row, pos.Col)
	if err != nil || cell.IsRevealed() || cell.IsFlagged() {
		return false
	}
	return director.engine.Reveal(pos.Row, pos.Col) == nil
}
