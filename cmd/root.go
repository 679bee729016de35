package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/minesweep/director/constraint"
	"github.com/they4kman/minesweep/director/random"
	"github.com/they4kman/minesweep/game"
)

var gameConfig = game.NewConfig()
var configPath = ""
var directorName = ""
var logLevel = "warning"

var rootCmd = &cobra.Command{
	Use:   "minesweep",
	Short: "Play Minesweeper from the terminal",
	Long: `minesweep is a line-driven Minesweeper game.

Run with no arguments to play manually, typing commands on stdin
	r ROW COL   reveal a cell
	f ROW COL   flag or unflag a cell
	p           print the board
	n           start a new game
	q           quit

Use the director flag to make the computer play for you
	minesweep --director
	minesweep --director=random
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		game.Log.SetLevel(level)

		config, err := resolveConfig(cmd.Flags())
		if err != nil {
			return err
		}

		session, err := newSession(config, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}

		if directorName != "" {
			director, err := newDirector(directorName, config.Seed)
			if err != nil {
				return err
			}
			return session.direct(director)
		}
		return session.run()
	},
}

// resolveConfig layers the config file, if any, under explicitly-set flags
func resolveConfig(flags *pflag.FlagSet) (game.Config, error) {
	config := gameConfig
	if configPath != "" {
		loaded, err := game.LoadConfig(configPath)
		if err != nil {
			return config, err
		}

		if !flags.Changed("rows") {
			config.Rows = loaded.Rows
		}
		if !flags.Changed("cols") {
			config.Cols = loaded.Cols
		}
		if !flags.Changed("mines") {
			config.MineCount = loaded.MineCount
		}
		if !flags.Changed("seed") {
			config.Seed = loaded.Seed
		}
		if !flags.Changed("placement") {
			config.Placement = loaded.Placement
		}
		config.Layout = loaded.Layout
	}

	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	return config, config.Validate()
}

func newDirector(name string, seed int64) (game.Director, error) {
	switch name {
	case "constraint":
		return &constraint.Director{Seed: seed}, nil
	case "random":
		return &random.Director{Seed: seed}, nil
	default:
		return nil, fmt.Errorf("invalid director %q", name)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type placementValue game.PlacementPolicy

var _ pflag.Value = (*placementValue)(nil)

func newPlacementValue(val game.PlacementPolicy, p *game.PlacementPolicy) *placementValue {
	*p = val
	return (*placementValue)(p)
}

func (placementVal *placementValue) String() string {
	return game.PlacementPolicy(*placementVal).String()
}

func (placementVal *placementValue) Set(value string) error {
	policy, err := game.ParsePlacementPolicy(value)
	if err != nil {
		return err
	}
	*placementVal = placementValue(policy)
	return nil
}

func (placementVal *placementValue) Type() string {
	return "game.PlacementPolicy"
}

func init() {
	rootCmd.Flags().IntVarP(&gameConfig.Rows, "rows", "r", game.DefaultRows, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Cols, "cols", "c", game.DefaultCols, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.MineCount, "mines", "m", game.DefaultMineCount, "Number of mines to place in the game board")
	rootCmd.Flags().Int64VarP(&gameConfig.Seed, "seed", "s", 0, "Random seed for mine placement (0 picks one from the clock)")
	rootCmd.Flags().Var(newPlacementValue(game.Classic, &gameConfig.Placement), "placement", `Mine placement policy.
classic: one random draw per mine, colliding draws are dropped (may place fewer mines)
exact: exactly the requested number of mines is placed`)
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML game config")
	rootCmd.Flags().StringVarP(&directorName, "director", "d", "", `Make the computer play.
constraint: deduce mines from revealed numbers, guessing only when stuck
random: reveal cells at random`)
	rootCmd.Flags().Lookup("director").NoOptDefVal = "constraint"
	rootCmd.Flags().StringVar(&logLevel, "log-level", logLevel, "Log level (debug, info, warning, error)")
}
