package app

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"errsift/internal/adapter/httpintake"
	"errsift/internal/adapter/scheduler"
	"errsift/internal/config"
	"errsift/internal/platform/logger"
	"errsift/internal/report"
)

// App wires application components.
type App struct {
	cfg config.Config
	log *slog.Logger
}

// New creates a new App instance and loads configuration.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Options{
		Env:          cfg.Env,
		ConsoleLevel: cfg.Log.ConsoleLevel,
		FileLevel:    cfg.Log.FileLevel,
		File:         cfg.Log.File,
		App:          "errsift",
	})
	return &App{cfg: cfg, log: log}, nil
}

// Run starts the application.
func (a *App) Run() error {
	a.log.Info("starting")
	defer logger.Close(a.log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sink := report.NewLogSink(a.log.With(slog.String("component", "sink")))
	handler := report.NewHandler(sink,
		report.WithLogger(a.log),
		report.WithTrail(report.NewTrail(a.cfg.Report.TrailSize)),
	)
	handler.SetReady(a.cfg.Report.Enabled)

	summary := scheduler.NewSummary(handler.Stats(), a.log)
	if err := summary.Start(a.cfg.Report.SummarySpec); err != nil {
		return err
	}
	defer summary.Stop()

	r := httpintake.NewRouter(handler, a.log)
	srv := &http.Server{Addr: a.cfg.HTTP.Addr, Handler: r}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("server", slog.Any("err", err))
		}
	}()
	a.log.Info("intake listening", slog.String("addr", a.cfg.HTTP.Addr), slog.Bool("sink_ready", handler.Ready()))

	<-ctx.Done()
	a.log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	handler.Flush()
	return err
}
