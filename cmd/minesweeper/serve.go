package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/app"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/database"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/repository"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve games over websocket",
		Long: "Serve games over websocket on APP_ADDR. Finished games are " +
			"recorded when a Postgres database is configured.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logCfg, err := config.NewLogging()
			if err != nil {
				return err
			}
			log, err := logging.Stderr(logCfg)
			if err != nil {
				return err
			}
			mines.Log = log
			log.WithFields(logCfg.Fields()).Debug("logging config")

			game, err := config.LoadGame(opts.configPath)
			if err != nil {
				return err
			}
			ws, err := config.NewWebSocket()
			if err != nil {
				return err
			}

			var db repository.DBTX
			pool, migrator, err := database.ConnectAndMigrate(ctx)
			switch {
			case errors.Is(err, config.ErrNoDatabase):
				log.Warn("no database configured, game records are disabled")
			case err != nil:
				log.WithField("error", err).Error("unable to connect to db")
				return err
			default:
				defer pool.Close()
				defer migrator.Close()
				db = pool
			}

			err = app.New(log, ws, game, db).Start(ctx, config.Addr())
			if err != nil {
				log.WithField("error", err).Error("server stopped")
			}
			return err
		},
	}
}
