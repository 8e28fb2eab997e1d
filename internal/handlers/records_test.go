package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/repository"
)

type fakeLister struct {
	records []repository.GameRecord
	err     error
	filter  repository.RecordFilter
}

func (f *fakeLister) ListGameRecords(
	_ context.Context, filter repository.RecordFilter,
) ([]repository.GameRecord, error) {
	f.filter = filter
	return f.records, f.err
}

func getRecords(h *RecordsHandler, query string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/records?"+query, nil))
	return w
}

func TestRecordsDisabled(t *testing.T) {
	log, _ := test.NewNullLogger()
	w := getRecords(NewRecordsHandler(log, nil), "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"game records are disabled"}`, w.Body.String())
}

func TestRecordsList(t *testing.T) {
	log, _ := test.NewNullLogger()
	lister := &fakeLister{records: []repository.GameRecord{
		{GameRecordId: 1, SessionId: "abc", Height: 9, Width: 9, MineCount: 10, Outcome: repository.OutcomeWon, Turns: 12},
	}}
	w := getRecords(NewRecordsHandler(log, lister), "height=9&width=9&mine_count=10&outcome=won&limit=5")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got []repository.GameRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "abc", got[0].SessionId)
	assert.Equal(t, repository.OutcomeWon, got[0].Outcome)

	require.NotNil(t, lister.filter.Params)
	assert.Equal(t, mines.Params{Height: 9, Width: 9, MineCount: 10}, *lister.filter.Params)
	require.NotNil(t, lister.filter.Outcome)
	assert.Equal(t, repository.OutcomeWon, *lister.filter.Outcome)
	assert.Equal(t, 5, lister.filter.Limit)
}

func TestRecordsEmptyList(t *testing.T) {
	log, _ := test.NewNullLogger()
	w := getRecords(NewRecordsHandler(log, &fakeLister{}), "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRecordsErrors(t *testing.T) {
	log, hook := test.NewNullLogger()
	h := NewRecordsHandler(log, &fakeLister{err: errors.New("connection refused")})

	w := getRecords(h, "limit=1000")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = getRecords(h, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestParseRecordFilter(t *testing.T) {
	won := repository.OutcomeWon
	tests := []struct {
		name    string
		query   string
		want    repository.RecordFilter
		wantErr bool
	}{
		{name: "empty", query: "", want: repository.RecordFilter{}},
		{name: "limit", query: "limit=20", want: repository.RecordFilter{Limit: 20}},
		{name: "outcome", query: "outcome=won", want: repository.RecordFilter{Outcome: &won}},
		{
			name:  "zero mine board",
			query: "height=2&width=3&mine_count=0",
			want:  repository.RecordFilter{Params: &mines.Params{Height: 2, Width: 3, MineCount: 0}},
		},
		{name: "negative limit", query: "limit=-1", wantErr: true},
		{name: "limit too large", query: "limit=501", wantErr: true},
		{name: "partial size", query: "height=9&width=9", wantErr: true},
		{name: "invalid size", query: "height=2&width=2&mine_count=4", wantErr: true},
		{name: "unknown outcome", query: "outcome=draw", wantErr: true},
		{name: "not a number", query: "limit=many", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := ParseRecordFilter(values)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePlayParams(t *testing.T) {
	defaults := config.DefaultGame()

	got, err := ParsePlayParams(url.Values{}, defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults.Params(), got)

	got, err = ParsePlayParams(url.Values{"height": {"16"}, "width": {"30"}, "mine_count": {"99"}}, defaults)
	require.NoError(t, err)
	assert.Equal(t, mines.Params{Height: 16, Width: 30, MineCount: 99}, got)

	for _, values := range []url.Values{
		{"mine_count": {"81"}},
		{"height": {"100000"}, "width": {"100000"}, "mine_count": {"1"}},
	} {
		_, err = ParsePlayParams(values, defaults)
		var ce *mines.ConfigError
		assert.True(t, errors.As(err, &ce), values.Encode())
	}
}
