package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"TradeBoard/internal/state"
	"TradeBoard/internal/usecase"
	"TradeBoard/pkg/cache"
	"TradeBoard/pkg/config"
	xhttp "TradeBoard/pkg/http"
	applogger "TradeBoard/pkg/logger"
)

// App encapsulates the entire application lifecycle: seed the state with the
// snapshot loaders, keep it live with the tick collector, and serve the
// rendered view over HTTP until interrupted.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	store      *state.Store
	loader     *usecase.SnapshotLoader
	collector  *usecase.TickCollector
	handler    xhttp.Handler
	viewCache  cache.Service
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	logger *applogger.Logger,
	store *state.Store,
	loader *usecase.SnapshotLoader,
	collector *usecase.TickCollector,
	handler xhttp.Handler,
	viewCache cache.Service,
) *App {
	return &App{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		loader:    loader,
		collector: collector,
		handler:   handler,
		viewCache: viewCache,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	// Seed state with the one-shot snapshots; best-effort, does not block
	// startup on a slow backend.
	go a.loader.Load(ctx)
	a.logger.Info("snapshot load started", applogger.String("backend", a.cfg.Backend.BaseURL))

	// Live tick subscription
	if err := a.collector.Start(ctx); err != nil {
		a.logger.Error("collector start error", applogger.Error(err))
	} else {
		a.logger.Info("collector started", applogger.String("stream", a.cfg.Stream.URL))
	}

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	// Stop live updates first so nothing mutates state during teardown.
	if err := a.collector.Shutdown(ctx); err != nil {
		a.logger.Warn("collector stop error", applogger.Error(err))
	}
	a.store.Close()

	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	if a.viewCache != nil {
		if err := a.viewCache.Close(); err != nil {
			a.logger.Warn("view cache close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
