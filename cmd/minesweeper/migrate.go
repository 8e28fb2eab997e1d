package main

import (
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/database"
	"github.com/vancomm/minesweeper/internal/logging"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			logCfg, err := config.NewLogging()
			if err != nil {
				return err
			}
			log, err := logging.Stderr(logCfg)
			if err != nil {
				return err
			}

			pool, migrator, err := database.ConnectAndMigrate(ctx)
			if err != nil {
				log.WithField("error", err).Error("failed to connect to db")
				return err
			}
			defer pool.Close()
			defer migrator.Close()

			version, dirty, err := migrator.Version()
			if err != nil {
				log.WithField("error", err).Error("failed to check migration version")
				return err
			}
			log.WithFields(logrus.Fields{
				"version": version,
				"dirty":   dirty,
			}).Info("migration successful")
			return nil
		},
	}
}
