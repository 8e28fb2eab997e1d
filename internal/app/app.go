package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/handlers"
	"github.com/vancomm/minesweeper/internal/middleware"
	"github.com/vancomm/minesweeper/internal/repository"
)

const shutdownTimeout = 30 * time.Second

type Store interface {
	handlers.Recorder
	handlers.RecordLister
}

type App struct {
	logger   *logrus.Logger
	router   *http.ServeMux
	ws       *config.WebSocket
	defaults config.Game
	store    Store
}

// New builds the play server. A nil db disables game records.
func New(
	logger *logrus.Logger, ws *config.WebSocket, defaults config.Game, db repository.DBTX,
) *App {
	app := &App{
		logger:   logger,
		router:   http.NewServeMux(),
		ws:       ws,
		defaults: defaults,
	}
	if db != nil {
		app.store = repository.New(db)
	}
	app.loadRoutes()
	return app
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Cors(),
		middleware.Logging(a.logger),
		middleware.Recover(a.logger),
	)
}

func (a *App) Start(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: a.Handler(),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	a.logger.WithFields(logrus.Fields{
		"addr":    addr,
		"records": a.store != nil,
	}).Info("ready to serve")

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
