package app

import (
	"hash/maphash"
	"math/rand/v2"
	"path"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	var (
		recorder handlers.Recorder
		lister   handlers.RecordLister
	)
	if a.store != nil {
		recorder, lister = a.store, a.store
	}

	play := handlers.NewPlayHandler(a.logger, a.ws, a.defaults, recorder, createRand())
	records := handlers.NewRecordsHandler(a.logger, lister)

	base := "/" + config.BasePath()
	a.router.HandleFunc("GET "+path.Join(base, "play"), play.Play)
	a.router.HandleFunc("GET "+path.Join(base, "records"), records.List)
	a.router.HandleFunc("GET "+path.Join(base, "healthz"), handlers.Health)
}
