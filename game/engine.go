package game

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrNotStarted  = errors.New("game not started")
)

// Engine holds the state of one minesweeper board, and every game played on
// it. It is not safe for concurrent use; callers must serialise calls.
type Engine struct {
	config    Config
	mineCount int
	rand      *rand.Rand
	sink      EventSink

	id    uuid.UUID
	board *board
	phase Phase

	placedMines            int
	minesRemainingEstimate int
	unrevealedSafeCount    int
}

// NewEngine validates the config and returns an Idle engine; call Start to
// deal the first board. A nil sink discards all events.
func NewEngine(config Config, sink EventSink) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	engine := &Engine{
		config:    config,
		mineCount: config.EffectiveMineCount(),
		rand:      rand.New(rand.NewSource(config.Seed)),
		phase:     Idle,
	}
	engine.SetSink(sink)
	return engine, nil
}

func (engine *Engine) SetSink(sink EventSink) {
	if sink == nil {
		sink = discardSink{}
	}
	engine.sink = sink
}

func (engine *Engine) ID() uuid.UUID {
	return engine.id
}

func (engine *Engine) Rows() int {
	return engine.config.Rows
}

func (engine *Engine) Cols() int {
	return engine.config.Cols
}

func (engine *Engine) MineCount() int {
	return engine.mineCount
}

// PlacedMines is the number of mines actually on the board, which the
// Classic placement policy may leave below MineCount
func (engine *Engine) PlacedMines() int {
	return engine.placedMines
}

func (engine *Engine) Phase() Phase {
	return engine.phase
}

// MinesRemainingEstimate is MineCount less the number of flags placed. It is
// what a mine counter display shows, and goes negative when over-flagged.
func (engine *Engine) MinesRemainingEstimate() int {
	return engine.minesRemainingEstimate
}

func (engine *Engine) UnrevealedSafeCount() int {
	return engine.unrevealedSafeCount
}

func (engine *Engine) CellAt(row, col int) (Cell, error) {
	pos, err := engine.checkBounds(row, col)
	if err != nil {
		return Cell{}, err
	}
	return *engine.board.cellAt(pos), nil
}

// AdjacentMines counts the mines among the up-to-8 neighbours of a cell
func (engine *Engine) AdjacentMines(row, col int) (int, error) {
	pos, err := engine.checkBounds(row, col)
	if err != nil {
		return 0, err
	}
	return engine.board.adjacentMines(pos), nil
}

// Start discards any previous board and deals a fresh one
func (engine *Engine) Start() {
	rows, cols := engine.config.Rows, engine.config.Cols

	engine.id = uuid.New()
	engine.board = newBoard(rows, cols)
	engine.unrevealedSafeCount = rows*cols - engine.mineCount
	engine.minesRemainingEstimate = engine.mineCount
	engine.phase = Active

	switch {
	case len(engine.config.Layout) > 0:
		engine.placedMines = engine.board.placeLayout(engine.config.Layout)
	case engine.config.Placement == Exact:
		engine.placedMines = engine.board.placeExact(engine.rand, engine.mineCount)
	default:
		engine.placedMines = engine.board.placeClassic(engine.rand, engine.mineCount)
	}

	engine.log().WithFields(logrus.Fields{
		"rows":      rows,
		"cols":      cols,
		"mines":     engine.mineCount,
		"placed":    engine.placedMines,
		"placement": engine.config.Placement,
	}).Info("game started")

	engine.emit(Event{Type: BoardReset})
}

// Reveal uncovers a cell. Revealing a mine loses the game; revealing a cell
// with no adjacent mines also uncovers its neighbours, recursively. Revealing
// a revealed or flagged cell, or acting on a finished game, does nothing.
func (engine *Engine) Reveal(row, col int) error {
	pos, err := engine.checkBounds(row, col)
	if err != nil {
		return err
	}

	logger := engine.log().WithFields(logrus.Fields{"row": row, "col": col})
	if !engine.canPlay() {
		logger.WithField("phase", engine.phase).Debug("reveal ignored, game not active")
		return nil
	}

	cell := engine.board.cellAt(pos)
	if cell.IsRevealed() || cell.IsFlagged() {
		logger.Debug("reveal ignored")
		return nil
	}

	if cell.HasMine() {
		logger.Debug("revealed a mine")
		engine.lose()
		return nil
	}

	before := engine.unrevealedSafeCount
	flood(pos, engine.uncover, engine.concealedNeighbor)
	logger.WithField("uncovered", before-engine.unrevealedSafeCount).Debug("revealed")

	// Classic placement can leave more safe cells than the count assumes, in
	// which case a single flood may step past zero and the game plays on
	if engine.unrevealedSafeCount == 0 {
		engine.win()
	}
	return nil
}

// ToggleFlag flags or unflags a concealed cell
func (engine *Engine) ToggleFlag(row, col int) error {
	pos, err := engine.checkBounds(row, col)
	if err != nil {
		return err
	}

	logger := engine.log().WithFields(logrus.Fields{"row": row, "col": col})
	if !engine.canPlay() {
		logger.WithField("phase", engine.phase).Debug("flag ignored, game not active")
		return nil
	}

	cell := engine.board.cellAt(pos)
	if cell.IsRevealed() {
		logger.Debug("flag ignored on revealed cell")
		return nil
	}

	cell.flagged = !cell.flagged
	if cell.flagged {
		engine.minesRemainingEstimate--
		engine.emit(Event{Type: TileFlagged, Row: row, Col: col})
	} else {
		engine.minesRemainingEstimate++
		engine.emit(Event{Type: TileUnflagged, Row: row, Col: col})
	}

	logger.WithField("flagged", cell.flagged).Debug("toggled flag")
	return nil
}

// uncover reveals a single safe cell, and returns whether its neighbours
// should be uncovered too
func (engine *Engine) uncover(pos Position) bool {
	*engine.board.cellAt(pos) = revealedCell
	engine.unrevealedSafeCount--
	engine.emit(Event{Type: TileUncovered, Row: pos.Row, Col: pos.Col})

	numMines := engine.board.adjacentMines(pos)
	if numMines > 0 {
		engine.emit(Event{Type: TileNumbered, Row: pos.Row, Col: pos.Col, Count: numMines})
		return false
	}
	return true
}

// concealedNeighbor selects neighbours for the flood. Flags don't stop it.
func (engine *Engine) concealedNeighbor(pos Position, dir int) (Position, bool) {
	neighbor, ok := engine.board.neighbor(pos, dir)
	if !ok {
		return neighbor, false
	}
	return neighbor, !engine.board.cellAt(neighbor).IsRevealed()
}

func (engine *Engine) canPlay() bool {
	return engine.phase == Active
}

func (engine *Engine) win() {
	engine.phase = Won
	engine.log().Info("game won")
	engine.emit(Event{Type: GameWon})
	engine.revealAllMines()
}

func (engine *Engine) lose() {
	engine.phase = Lost
	engine.log().Info("game lost")
	engine.emit(Event{Type: GameLost})
	engine.revealAllMines()
}

func (engine *Engine) revealAllMines() {
	for _, pos := range engine.board.mines() {
		engine.emit(Event{Type: MineRevealed, Row: pos.Row, Col: pos.Col})
	}
}

func (engine *Engine) emit(event Event) {
	engine.sink.Emit(event)
}

func (engine *Engine) checkBounds(row, col int) (Position, error) {
	pos := Position{Row: row, Col: col}
	if engine.board == nil {
		return pos, ErrNotStarted
	}
	if !engine.board.inBounds(pos) {
		return pos, errors.Wrapf(ErrOutOfBounds, "cell %v on %dx%d board", pos, engine.board.rows, engine.board.cols)
	}
	return pos, nil
}

func (engine *Engine) log() *logrus.Entry {
	return Log.WithField("game", engine.id)
}
