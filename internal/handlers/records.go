package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/repository"
)

var ErrRecordsDisabled = errors.New("game records are disabled")

type RecordLister interface {
	ListGameRecords(
		ctx context.Context, filter repository.RecordFilter,
	) ([]repository.GameRecord, error)
}

type RecordsHandler struct {
	log    logrus.FieldLogger
	lister RecordLister
}

// NewRecordsHandler takes a nil lister when no database is configured.
func NewRecordsHandler(log logrus.FieldLogger, lister RecordLister) *RecordsHandler {
	return &RecordsHandler{log: log, lister: lister}
}

func (h RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.lister == nil {
		sendError(w, h.log, http.StatusServiceUnavailable, ErrRecordsDisabled)
		return
	}

	filter, err := ParseRecordFilter(r.URL.Query())
	if err != nil {
		sendError(w, h.log, http.StatusBadRequest, err)
		return
	}

	records, err := h.lister.ListGameRecords(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithField("error", err).Error("unable to fetch records from db")
		return
	}
	if records == nil {
		records = []repository.GameRecord{}
	}

	sendJSONOrLog(w, h.log, records)
}
