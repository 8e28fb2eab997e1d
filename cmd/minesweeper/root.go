package main

import (
	"errors"
	"hash/maphash"
	"io"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/console"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
)

var errGameLost = errors.New("game lost")

type rootOptions struct {
	configPath string
	height     int
	width      int
	mineCount  int
	seed       uint64
	ask        bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "minesweeper",
		Short:        "Play minesweeper in the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML file with board defaults")

	flags := cmd.Flags()
	flags.IntVar(&opts.height, "height", 0, "board height")
	flags.IntVar(&opts.width, "width", 0, "board width")
	flags.IntVarP(&opts.mineCount, "mines", "m", 0, "number of mines")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed, 0 picks one")
	flags.BoolVar(&opts.ask, "ask", false, "prompt for the number of mines")

	cmd.AddCommand(newServeCmd(opts), newRecordsCmd(), newMigrateCmd())

	return cmd
}

// loadGame applies command line flags on top of the file and env config
// and validates the result once. The mine count is left unchecked when it
// is going to be asked for.
func loadGame(cmd *cobra.Command, opts *rootOptions) (config.Game, error) {
	game, err := config.ReadGame(opts.configPath)
	if err != nil {
		return game, err
	}

	flags := cmd.Flags()
	if flags.Changed("height") {
		game.Height = opts.height
	}
	if flags.Changed("width") {
		game.Width = opts.width
	}
	if flags.Changed("mines") {
		game.MineCount = opts.mineCount
	}
	if flags.Changed("seed") {
		game.Seed = opts.seed
	}

	params := game.Params()
	if opts.ask {
		params.MineCount = 0
	}
	return game, params.Validate()
}

func newRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}
	return rand.New(rand.NewPCG(seed, seed)), seed
}

func runPlay(cmd *cobra.Command, opts *rootOptions) error {
	logCfg, err := config.NewLogging()
	if err != nil {
		return err
	}
	// the terminal belongs to the game, so entries only go to LOG_FILE
	log, err := logging.New(logCfg, io.Discard)
	if err != nil {
		return err
	}
	mines.Log = log

	game, err := loadGame(cmd, opts)
	if err != nil {
		return err
	}

	c := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), log)
	if opts.ask {
		if game.MineCount, err = c.AskMineCount(game.Height * game.Width); err != nil {
			return err
		}
	}

	rnd, seed := newRand(game.Seed)
	board, err := mines.New(game.Params(), rnd)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"board": board.Params.Seed(),
		"seed":  seed,
	}).Info("new game")

	state, err := c.Play(board)
	if err != nil {
		return err
	}
	if state == mines.Lost {
		return errGameLost
	}
	return nil
}
