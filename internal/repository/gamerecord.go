package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vancomm/minesweeper/internal/mines"
)

var ErrDuplicateRecord = errors.New("game record already exists")

type Outcome string

const (
	OutcomeWon       Outcome = "won"
	OutcomeLost      Outcome = "lost"
	OutcomeAbandoned Outcome = "abandoned"
)

func OutcomeOf(state mines.State) Outcome {
	switch state {
	case mines.Won:
		return OutcomeWon
	case mines.Lost:
		return OutcomeLost
	default:
		return OutcomeAbandoned
	}
}

func ParseOutcome(s string) (Outcome, error) {
	switch o := Outcome(s); o {
	case OutcomeWon, OutcomeLost, OutcomeAbandoned:
		return o, nil
	default:
		return "", fmt.Errorf("unknown outcome %q", s)
	}
}

type GameRecord struct {
	GameRecordId int64     `db:"game_record_id" json:"game_record_id"`
	SessionId    string    `db:"session_id" json:"session_id"`
	Height       int       `db:"height" json:"height"`
	Width        int       `db:"width" json:"width"`
	MineCount    int       `db:"mine_count" json:"mine_count"`
	Outcome      Outcome   `db:"outcome" json:"outcome"`
	Turns        int       `db:"turns" json:"turns"`
	StartedAt    time.Time `db:"started_at" json:"started_at"`
	EndedAt      time.Time `db:"ended_at" json:"ended_at"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type CreateGameRecordParams struct {
	SessionId string
	Params    mines.Params
	Outcome   Outcome
	Turns     int
	StartedAt time.Time
	EndedAt   time.Time
}

func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return fmt.Errorf("%w: %s", ErrDuplicateRecord, pgErr.ConstraintName)
	}
	return err
}

func (q Queries) CreateGameRecord(
	ctx context.Context, params CreateGameRecordParams,
) (*GameRecord, error) {
	args := pgx.NamedArgs{
		"session_id": params.SessionId,
		"height":     params.Params.Height,
		"width":      params.Params.Width,
		"mine_count": params.Params.MineCount,
		"outcome":    string(params.Outcome),
		"turns":      params.Turns,
		"started_at": params.StartedAt,
		"ended_at":   params.EndedAt,
	}
	rows, err := q.db.Query(
		ctx,
		`INSERT INTO game_record (
			session_id, height, width, mine_count, outcome, turns, started_at, ended_at
		)
		VALUES (
			@session_id, @height, @width, @mine_count, @outcome, @turns, @started_at, @ended_at
		)
		RETURNING *;`,
		args,
	)
	if err != nil {
		return nil, mapError(err)
	}
	record, err := pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[GameRecord],
	)
	if err != nil {
		return nil, mapError(err)
	}
	return record, nil
}

type RecordFilter struct {
	Params  *mines.Params
	Outcome *Outcome
	Limit   int
}

const defaultRecordLimit = 50

func (f RecordFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Params != nil {
		clauses = append(
			clauses,
			"height = @height",
			"width = @width",
			"mine_count = @mineCount",
		)
		args["height"] = f.Params.Height
		args["width"] = f.Params.Width
		args["mineCount"] = f.Params.MineCount
	}
	if f.Outcome != nil {
		clauses = append(clauses, "outcome = @outcome")
		args["outcome"] = string(*f.Outcome)
	}
	limit := f.Limit
	if limit <= 0 {
		limit = defaultRecordLimit
	}
	args["limit"] = limit
	return strings.Join(clauses, " AND "), args
}

func (q Queries) ListGameRecords(
	ctx context.Context, filter RecordFilter,
) ([]GameRecord, error) {
	query := "SELECT * FROM game_record"
	where, args := filter.WhereClause()
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY ended_at DESC LIMIT @limit"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[GameRecord])
}
