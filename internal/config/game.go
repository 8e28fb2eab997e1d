package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vancomm/minesweeper/internal/mines"
)

type Game struct {
	Height    int    `yaml:"height"`
	Width     int    `yaml:"width"`
	MineCount int    `yaml:"mine_count"`
	Seed      uint64 `yaml:"seed"` // 0 picks a random seed
}

func DefaultGame() Game {
	return Game{Height: 9, Width: 9, MineCount: 10}
}

func lookupInt(key string, dst *int) error {
	s, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%s must be an integer: %w", key, err)
	}
	*dst = v
	return nil
}

// LoadGame is ReadGame followed by validation of the result.
func LoadGame(path string) (Game, error) {
	cfg, err := ReadGame(path)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Params().Validate()
}

// ReadGame starts from the defaults, applies the YAML file at path (if
// any), then the MINES_* env variables. The board is not validated so
// callers can apply further overrides first.
func ReadGame(path string) (Game, error) {
	cfg := DefaultGame()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	for key, dst := range map[string]*int{
		"MINES_HEIGHT": &cfg.Height,
		"MINES_WIDTH":  &cfg.Width,
		"MINES_COUNT":  &cfg.MineCount,
	} {
		if err := lookupInt(key, dst); err != nil {
			return cfg, err
		}
	}

	if s, ok := os.LookupEnv("MINES_SEED"); ok {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("MINES_SEED must be an unsigned integer: %w", err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

func (g Game) Params() mines.Params {
	return mines.Params{Height: g.Height, Width: g.Width, MineCount: g.MineCount}
}
