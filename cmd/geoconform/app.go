package main

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/akuznet/geoconform/internal/config"
	"github.com/akuznet/geoconform/internal/epsg"
	"github.com/akuznet/geoconform/internal/report"
	"github.com/akuznet/geoconform/internal/session"
)

type App struct {
	logger *slog.Logger
	cfg    *config.AppConfig

	mx   sync.RWMutex
	last *report.Summary
}

func NewApp(cfg *config.AppConfig) *App {
	return &App{
		logger: slog.Default().With(slog.String("logger", "app")),
		cfg:    cfg,
	}
}

// RunSuite executes the configured checks against the built-in registry
// and keeps the summary for the http handlers.
func (app *App) RunSuite() *report.Summary {
	v := session.NewVerifier(app.cfg.SkipIdentification(), app.cfg.CaseSensitive())
	s := session.New(epsg.NewRegistry(), v)

	checks := session.FilterKinds(session.DefaultSuite(), app.cfg.Kinds())
	sum := s.Run(checks)

	app.logger.Info(fmt.Sprintf("run %s: %d checks, %d passed, %d failed, %d skipped",
		sum.RunID, sum.Total(), sum.Passed, sum.Failed, sum.Skipped))

	app.mx.Lock()
	app.last = sum
	app.mx.Unlock()

	return sum
}

func (app *App) Summary() *report.Summary {
	app.mx.RLock()
	defer app.mx.RUnlock()

	return app.last
}
