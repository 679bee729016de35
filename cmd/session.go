package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/they4kman/minesweep/game"
)

// session connects an engine to a line-oriented terminal
type session struct {
	engine *game.Engine
	in     io.Reader
	out    io.Writer
}

func newSession(config game.Config, in io.Reader, out io.Writer) (*session, error) {
	s := &session{in: in, out: out}

	engine, err := game.NewEngine(config, game.EventSinkFunc(s.printEvent))
	if err != nil {
		return nil, err
	}
	s.engine = engine
	return s, nil
}

func (s *session) printEvent(event game.Event) {
	fmt.Fprintln(s.out, event)
}

func (s *session) printStatus() {
	fmt.Fprintf(s.out, "%s\n%s  mines left: %d  tiles left: %d\n",
		s.engine.Snapshot(), s.engine.Phase(), s.engine.MinesRemainingEstimate(), s.engine.UnrevealedSafeCount())
}

func (s *session) direct(director game.Director) error {
	s.engine.Start()
	game.Direct(s.engine, director)
	s.printStatus()
	return nil
}

func (s *session) run() error {
	s.engine.Start()
	s.printStatus()

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		quit, err := s.execute(fields)
		if err != nil {
			// Bad input shouldn't end the game
			fmt.Fprintln(s.out, "error:", err)
			continue
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

func (s *session) execute(fields []string) (quit bool, err error) {
	switch fields[0] {
	case "q", "quit":
		return true, nil
	case "n", "new":
		s.engine.Start()
	case "p", "print":
		s.printStatus()
	case "r", "reveal", "f", "flag":
		row, col, err := parsePosition(fields[1:])
		if err != nil {
			return false, err
		}
		if fields[0][0] == 'r' {
			err = s.engine.Reveal(row, col)
		} else {
			err = s.engine.ToggleFlag(row, col)
		}
		if err != nil {
			return false, err
		}
		if s.engine.Phase().IsOver() {
			s.printStatus()
		}
	default:
		return false, errors.Errorf("unknown command %q", fields[0])
	}
	return false, nil
}

func parsePosition(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, errors.New("expected ROW COL")
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, errors.Wrap(err, "row")
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, errors.Wrap(err, "col")
	}
	return row, col, nil
}
