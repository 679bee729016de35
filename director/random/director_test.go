package random

import (
	"testing"

	"github.com/they4kman/minesweep/game"
)

func TestDirectorPlaysToCompletion(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		config := game.Config{Rows: 8, Cols: 8, MineCount: 10, Seed: seed, Placement: game.Exact}
		engine, err := game.NewEngine(config, nil)
		if err != nil {
			t.Fatalf("NewEngine: %v", err)
		}
		engine.Start()

		numActions := game.Direct(engine, &Director{Seed: seed})

		if !engine.Phase().IsOver() {
			t.Errorf("seed %d: game still %v after %d actions", seed, engine.Phase(), numActions)
		}
		if numActions < 1 || numActions > 64 {
			t.Errorf("seed %d: took %d actions", seed, numActions)
		}
	}
}

func TestDirectorWinsMineFreeBoard(t *testing.T) {
	recorder := &game.Recorder{}
	engine, err := game.NewEngine(game.Config{Rows: 5, Cols: 6}, recorder)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	engine.Start()

	if numActions := game.Direct(engine, &Director{Seed: 1}); numActions != 1 {
		t.Errorf("took %d actions, want 1", numActions)
	}
	if engine.Phase() != game.Won {
		t.Errorf("expected Won, got %v", engine.Phase())
	}

	events := recorder.Events()
	if events[len(events)-1].Type != game.GameWon {
		t.Errorf("expected GameWon last, got %v", events[len(events)-1])
	}
}

func TestDirectorSkipsFlaggedCells(t *testing.T) {
	config := game.Config{Rows: 1, Cols: 3, Layout: []game.Position{{Row: 0, Col: 1}}}
	engine, err := game.NewEngine(config, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	engine.Start()
	engine.ToggleFlag(0, 1)

	game.Direct(engine, &Director{Seed: 5})

	if engine.Phase() != game.Won {
		t.Errorf("expected Won while avoiding the flagged mine, got %v", engine.Phase())
	}
}
