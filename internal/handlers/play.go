package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/repository"
)

const recordTimeout = 5 * time.Second

type Recorder interface {
	CreateGameRecord(
		ctx context.Context, params repository.CreateGameRecordParams,
	) (*repository.GameRecord, error)
}

// PlayHandler serves one board per websocket connection. The shared
// rnd only seeds per-connection generators.
type PlayHandler struct {
	log      logrus.FieldLogger
	ws       *config.WebSocket
	defaults config.Game
	recorder Recorder
	newBoard func(mines.Params, *rand.Rand) (*mines.Board, error)

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewPlayHandler takes a nil recorder to skip game records.
func NewPlayHandler(
	log logrus.FieldLogger,
	ws *config.WebSocket,
	defaults config.Game,
	recorder Recorder,
	rnd *rand.Rand,
) *PlayHandler {
	return &PlayHandler{
		log:      log,
		ws:       ws,
		defaults: defaults,
		recorder: recorder,
		newBoard: mines.New,
		rnd:      rnd,
	}
}

func (h *PlayHandler) newSession() (string, *rand.Rand) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := fmt.Sprintf("%016x", h.rnd.Uint64())
	return id, rand.New(rand.NewPCG(h.rnd.Uint64(), h.rnd.Uint64()))
}

func (h *PlayHandler) Play(w http.ResponseWriter, r *http.Request) {
	params, err := ParsePlayParams(r.URL.Query(), h.defaults)
	if err != nil {
		sendError(w, h.log, http.StatusBadRequest, err)
		return
	}

	sessionId, rnd := h.newSession()
	board, err := h.newBoard(params, rnd)
	if err != nil {
		sendError(w, h.log, http.StatusBadRequest, err)
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithField("error", err).Warn("unable to upgrade")
		return
	}
	defer c.Close()
	c.SetReadLimit(h.ws.ReadLimit)

	log := h.log.WithFields(logrus.Fields{
		"session_id": sessionId,
		"board":      params.String(),
	})
	log.Debug("game started")
	startedAt := time.Now().UTC()

	defer func() {
		h.record(r.Context(), log, sessionId, board, startedAt)
	}()

	if err := c.WriteJSON(NewBoardDTO(sessionId, board, nil)); err != nil {
		log.WithField("error", err).Error("unable to write json")
		return
	}

	for !board.Finished() {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithField("error", err).Warn("abnormal ws break")
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		var move MoveDTO
		if err := json.Unmarshal(message, &move); err != nil {
			dto := NewBoardDTO(sessionId, board, nil)
			dto.Error = err.Error()
			if err := c.WriteJSON(dto); err != nil {
				log.WithField("error", err).Error("unable to write json")
				return
			}
			continue
		}

		result := board.ApplyAction(move.Row, move.Col, move.Action)
		log.WithFields(logrus.Fields{
			"row":    move.Row,
			"col":    move.Col,
			"action": move.Action.String(),
			"result": result.String(),
		}).Debug("move")

		if err := c.WriteJSON(NewBoardDTO(sessionId, board, &result)); err != nil {
			log.WithField("error", err).Error("unable to write json")
			return
		}
	}

	err = c.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, board.State().String()),
		time.Now().Add(time.Second),
	)
	if err != nil {
		log.WithField("error", err).Debug("unable to send close frame")
	}
}

// record stores the outcome of any game that got past its first turn.
func (h *PlayHandler) record(
	ctx context.Context,
	log logrus.FieldLogger,
	sessionId string,
	board *mines.Board,
	startedAt time.Time,
) {
	state := board.State()
	log = log.WithFields(logrus.Fields{
		"state": state.String(),
		"turns": board.TurnCount(),
	})
	log.Info("game over")

	if h.recorder == nil || board.TurnCount() == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	_, err := h.recorder.CreateGameRecord(ctx, repository.CreateGameRecordParams{
		SessionId: sessionId,
		Params:    board.Params,
		Outcome:   repository.OutcomeOf(state),
		Turns:     board.TurnCount(),
		StartedAt: startedAt,
		EndedAt:   time.Now().UTC(),
	})
	if err != nil {
		log.WithField("error", err).Error("unable to store game record")
	}
}
