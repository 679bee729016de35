package game

import "fmt"

type CellState int
type Phase int

const (
	Concealed CellState = iota
	Revealed
)

var cellStateNames = map[CellState]string{
	Concealed: "Concealed",
	Revealed:  "Revealed",
}

func (state CellState) String() string {
	if name, ok := cellStateNames[state]; ok {
		return name
	}
	return fmt.Sprintf("CellState(%d)", int(state))
}

const (
	// Idle is the phase of an engine that has never been started
	Idle Phase = iota
	Active
	Won
	Lost
)

var phaseNames = map[Phase]string{
	Idle:   "Idle",
	Active: "Active",
	Won:    "Won",
	Lost:   "Lost",
}

func (phase Phase) String() string {
	if name, ok := phaseNames[phase]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(phase))
}

// IsOver reports whether the phase is terminal
func (phase Phase) IsOver() bool {
	return phase == Won || phase == Lost
}

const (
	DefaultRows      = 13
	DefaultCols      = 9
	DefaultMineCount = 20
)
