package handlers

import (
	"fmt"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/repository"
)

type PlayParamsDTO struct {
	Height    int `schema:"height"`
	Width     int `schema:"width"`
	MineCount int `schema:"mine_count"`
}

// ParsePlayParams fills the board size from the query, falling back to
// defaults for missing keys.
func ParsePlayParams(src map[string][]string, defaults config.Game) (mines.Params, error) {
	dto := PlayParamsDTO{
		Height:    defaults.Height,
		Width:     defaults.Width,
		MineCount: defaults.MineCount,
	}
	if err := decoder.Decode(&dto, src); err != nil {
		return mines.Params{}, err
	}
	params := mines.Params(dto)
	return params, params.Validate()
}

type MoveDTO struct {
	Row    int              `json:"row"`
	Col    int              `json:"col"`
	Action mines.ActionKind `json:"action"`
}

type BoardDTO struct {
	SessionId      string              `json:"session_id"`
	Height         int                 `json:"height"`
	Width          int                 `json:"width"`
	MineCount      int                 `json:"mine_count"`
	State          mines.State         `json:"state"`
	Result         *mines.ActionResult `json:"result,omitempty"`
	Turns          int                 `json:"turns"`
	FlagsRemaining int                 `json:"flags_remaining"`
	Rows           []string            `json:"rows"`
	Error          string              `json:"error,omitempty"`
}

// NewBoardDTO shows every mine once the game is over.
func NewBoardDTO(sessionId string, b *mines.Board, result *mines.ActionResult) *BoardDTO {
	return &BoardDTO{
		SessionId:      sessionId,
		Height:         b.Height,
		Width:          b.Width,
		MineCount:      b.MineCount,
		State:          b.State(),
		Result:         result,
		Turns:          b.TurnCount(),
		FlagsRemaining: b.FlagsRemaining(),
		Rows:           b.RenderRows(b.Finished()),
	}
}

type RecordFilterDTO struct {
	Height    int    `schema:"height"`
	Width     int    `schema:"width"`
	MineCount *int   `schema:"mine_count"`
	Outcome   string `schema:"outcome"`
	Limit     int    `schema:"limit"`
}

func ParseRecordFilter(src map[string][]string) (repository.RecordFilter, error) {
	var dto RecordFilterDTO
	if err := decoder.Decode(&dto, src); err != nil {
		return repository.RecordFilter{}, err
	}

	filter := repository.RecordFilter{Limit: dto.Limit}
	if dto.Limit < 0 || dto.Limit > 500 {
		return filter, fmt.Errorf("limit must be between 0 and 500")
	}

	given := 0
	for _, ok := range []bool{dto.Height != 0, dto.Width != 0, dto.MineCount != nil} {
		if ok {
			given++
		}
	}
	switch given {
	case 0:
	case 3:
		params := mines.Params{Height: dto.Height, Width: dto.Width, MineCount: *dto.MineCount}
		if err := params.Validate(); err != nil {
			return filter, err
		}
		filter.Params = &params
	default:
		return filter, fmt.Errorf("height, width and mine_count must be given together")
	}

	if dto.Outcome != "" {
		outcome, err := repository.ParseOutcome(dto.Outcome)
		if err != nil {
			return filter, err
		}
		filter.Outcome = &outcome
	}

	return filter, nil
}
