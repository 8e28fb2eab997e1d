package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/config"
)

type emptyDB struct{}

func (emptyDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (emptyDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}

func (emptyDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func newTestServer(t *testing.T, basePath string, withDB bool) *httptest.Server {
	t.Helper()
	t.Setenv("APP_BASE_PATH", basePath)
	log, _ := test.NewNullLogger()
	ws, err := config.NewWebSocket()
	require.NoError(t, err)

	var app *App
	if withDB {
		app = New(log, ws, config.DefaultGame(), emptyDB{})
	} else {
		app = New(log, ws, config.DefaultGame(), nil)
	}
	srv := httptest.NewServer(app.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t, "", false)

	assert.Equal(t, http.StatusOK, get(t, srv.URL+"/healthz").StatusCode)
	assert.Equal(t, http.StatusServiceUnavailable, get(t, srv.URL+"/records").StatusCode)
	assert.Equal(t, http.StatusBadRequest, get(t, srv.URL+"/play?mine_count=81").StatusCode)
	assert.Equal(t, http.StatusNotFound, get(t, srv.URL+"/game").StatusCode)
}

func TestRoutesUnderBasePath(t *testing.T) {
	srv := newTestServer(t, "api", false)

	assert.Equal(t, http.StatusOK, get(t, srv.URL+"/api/healthz").StatusCode)
	assert.Equal(t, http.StatusNotFound, get(t, srv.URL+"/healthz").StatusCode)
}

func TestRecordsEnabledWithDB(t *testing.T) {
	srv := newTestServer(t, "", true)

	resp := get(t, srv.URL+"/records?limit=1000")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}
