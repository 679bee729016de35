package game

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/they4kman/minesweep/util/collections"
	"gopkg.in/yaml.v2"
)

var ErrInvalidConfig = errors.New("invalid game config")

type PlacementPolicy int

const (
	// Classic makes MineCount random draws, dropping any which land on a mine
	// already placed, so a board may end up with fewer mines than requested
	Classic PlacementPolicy = iota
	// Exact always places MineCount mines on distinct cells
	Exact
)

var PlacementPolicies = map[string]PlacementPolicy{
	"classic": Classic,
	"exact":   Exact,
}

func ParsePlacementPolicy(name string) (PlacementPolicy, error) {
	if policy, isValid := PlacementPolicies[name]; isValid {
		return policy, nil
	}
	return Classic, fmt.Errorf("invalid placement policy %q", name)
}

func (policy PlacementPolicy) String() string {
	for name, p := range PlacementPolicies {
		if p == policy {
			return name
		}
	}
	return fmt.Sprint(int(policy))
}

func (policy *PlacementPolicy) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParsePlacementPolicy(name)
	if err != nil {
		return err
	}
	*policy = parsed
	return nil
}

type Config struct {
	Rows      int   `yaml:"rows"`
	Cols      int   `yaml:"cols"`
	MineCount int   `yaml:"mines"`
	Seed      int64 `yaml:"seed"`

	Placement PlacementPolicy `yaml:"placement"`

	// Fixed mine positions. When non-empty, they replace random placement
	// and MineCount is taken to be len(Layout).
	Layout []Position `yaml:"layout,flow"`
}

func NewConfig() Config {
	return Config{
		Rows:      DefaultRows,
		Cols:      DefaultCols,
		MineCount: DefaultMineCount,
		Placement: Classic,
	}
}

// EffectiveMineCount is the number of mines the board is asked to hold
func (config Config) EffectiveMineCount() int {
	if len(config.Layout) > 0 {
		return len(config.Layout)
	}
	return config.MineCount
}

func (config Config) Validate() error {
	if config.Rows <= 0 || config.Cols <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "board must be at least 1x1, got %dx%d", config.Rows, config.Cols)
	}

	numCells := config.Rows * config.Cols
	if numMines := config.EffectiveMineCount(); numMines < 0 || numMines > numCells {
		return errors.Wrapf(ErrInvalidConfig, "mine count %d out of range [0, %d]", numMines, numCells)
	}

	if _, isKnown := PlacementPolicies[config.Placement.String()]; !isKnown {
		return errors.Wrapf(ErrInvalidConfig, "unknown placement policy %v", config.Placement)
	}

	seen := make(collections.Set[Position])
	for _, pos := range config.Layout {
		if pos.Row < 0 || pos.Col < 0 || pos.Row >= config.Rows || pos.Col >= config.Cols {
			return errors.Wrapf(ErrInvalidConfig, "layout mine %v outside %dx%d board", pos, config.Rows, config.Cols)
		}
		if seen.Contains(pos) {
			return errors.Wrapf(ErrInvalidConfig, "layout mine %v listed twice", pos)
		}
		seen.Add(pos)
	}

	return nil
}

// LoadConfig reads a YAML config, falling back to defaults for missing keys
func LoadConfig(path string) (Config, error) {
	config := NewConfig()

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return config, errors.Wrap(err, "reading config")
	}
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return config, errors.Wrapf(err, "parsing config %s", path)
	}
	return config, config.Validate()
}
