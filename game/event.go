package game

import "fmt"

type EventType int

const (
	BoardReset EventType = iota
	TileUncovered
	TileNumbered
	TileFlagged
	TileUnflagged
	MineRevealed
	GameLost
	GameWon
)

var eventTypeNames = map[EventType]string{
	BoardReset:    "BoardReset",
	TileUncovered: "TileUncovered",
	TileNumbered:  "TileNumbered",
	TileFlagged:   "TileFlagged",
	TileUnflagged: "TileUnflagged",
	MineRevealed:  "MineRevealed",
	GameLost:      "GameLost",
	GameWon:       "GameWon",
}

func (eventType EventType) String() string {
	if name, ok := eventTypeNames[eventType]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(eventType))
}

// Event is a single state change, for the presentation layer to render.
// Row and Col are meaningful for every tile and mine event; Count only for
// TileNumbered.
type Event struct {
	Type     EventType
	Row, Col int
	Count    int
}

func (event Event) String() string {
	switch event.Type {
	case BoardReset, GameLost, GameWon:
		return event.Type.String()
	case TileNumbered:
		return fmt.Sprintf("%s(%d, %d, %d)", event.Type, event.Row, event.Col, event.Count)
	default:
		return fmt.Sprintf("%s(%d, %d)", event.Type, event.Row, event.Col)
	}
}

// EventSink receives events synchronously, in emission order
type EventSink interface {
	Emit(Event)
}

type EventSinkFunc func(Event)

func (fn EventSinkFunc) Emit(event Event) {
	fn(event)
}

type discardSink struct{}

func (discardSink) Emit(Event) {}

// Recorder is an EventSink which accumulates everything it receives
type Recorder struct {
	events []Event
}

func (recorder *Recorder) Emit(event Event) {
	recorder.events = append(recorder.events, event)
}

// Events returns everything recorded since the last Drain
func (recorder *Recorder) Events() []Event {
	return recorder.events
}

// Drain returns everything recorded since the last Drain, and forgets it
func (recorder *Recorder) Drain() []Event {
	events := recorder.events
	recorder.events = nil
	return events
}
