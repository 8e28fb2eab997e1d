package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/database"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/repository"
)

func newRecordsCmd() *cobra.Command {
	var (
		limit   int
		outcome string
		board   string
	)

	cmd := &cobra.Command{
		Use:   "records",
		Short: "List recorded games, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := repository.RecordFilter{Limit: limit}
			if outcome != "" {
				o, err := repository.ParseOutcome(outcome)
				if err != nil {
					return err
				}
				filter.Outcome = &o
			}
			if board != "" {
				params, err := mines.ParseSeed(board)
				if err != nil {
					return err
				}
				filter.Params = params
			}

			pool, migrator, err := database.ConnectAndMigrate(cmd.Context())
			if errors.Is(err, config.ErrNoDatabase) {
				return fmt.Errorf("%w: set DATABASE_URL or POSTGRES_HOST", err)
			}
			if err != nil {
				return err
			}
			defer pool.Close()
			defer migrator.Close()

			records, err := repository.New(pool).ListGameRecords(cmd.Context(), filter)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ENDED\tBOARD\tOUTCOME\tTURNS\tDURATION")
			for _, r := range records {
				fmt.Fprintf(tw, "%s\t%dx%d(%d)\t%s\t%d\t%s\n",
					r.EndedAt.Format(time.DateTime),
					r.Width, r.Height, r.MineCount,
					r.Outcome,
					r.Turns,
					r.EndedAt.Sub(r.StartedAt).Round(time.Second),
				)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of records, 0 for the default")
	cmd.Flags().StringVar(&outcome, "outcome", "", "only show won, lost or abandoned games")
	cmd.Flags().StringVar(&board, "board", "", "only show games on this board, as height:width:mines")

	return cmd
}
