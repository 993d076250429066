package di

import (
	"TradeBoard/internal/domain/repository"
	"TradeBoard/internal/handler/api"
	"TradeBoard/internal/service/backend"
	"TradeBoard/internal/service/stream"
	"TradeBoard/internal/state"
	"TradeBoard/internal/usecase"
	"TradeBoard/pkg/cache"
	"TradeBoard/pkg/config"
	xlogger "TradeBoard/pkg/logger"
	"TradeBoard/pkg/metrics"
	"TradeBoard/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	level := cfg.Log.Level
	if level == "" {
		level = "info"
	}
	return xlogger.New(&xlogger.Config{
		Level:  level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideStore creates the dashboard state store.
func ProvideStore(cfg *config.Config, m repository.Metrics) *state.Store {
	return state.NewStore(cfg.Dashboard.Pair,
		state.WithHistorySize(cfg.Dashboard.HistorySize),
		state.WithMetrics(m),
	)
}

// ProvideSnapshotSource creates the backend snapshot client.
func ProvideSnapshotSource(cfg *config.Config) repository.SnapshotSource {
	return backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)
}

// ProvideMarketStream creates the WebSocket tick stream.
func ProvideMarketStream(cfg *config.Config, l *xlogger.Logger, m repository.Metrics) repository.MarketStream {
	return stream.New(cfg.Stream.URL, l,
		stream.WithPingInterval(cfg.Stream.PingInterval),
		stream.WithBufferSize(cfg.Stream.BufferSize),
		stream.WithMetrics(m),
	)
}

// ProvideSnapshotLoader creates the startup snapshot loader.
func ProvideSnapshotLoader(src repository.SnapshotSource, store *state.Store, m repository.Metrics, l *xlogger.Logger) *usecase.SnapshotLoader {
	return usecase.NewSnapshotLoader(src, store, m, l)
}

// ProvideTickCollector creates the live tick collector.
func ProvideTickCollector(s repository.MarketStream, store *state.Store, m repository.Metrics, l *xlogger.Logger) *usecase.TickCollector {
	return usecase.NewTickCollector(s, store, m, l)
}

// ProvideViewCache creates the layered view cache, or nil when disabled or
// Redis is unreachable (the dashboard degrades to uncached rendering).
func ProvideViewCache(cfg *config.Config, l *xlogger.Logger) cache.Service {
	if !cfg.Cache.Enabled {
		return nil
	}
	rc, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Cache.Redis.Host),
		cache.WithRedisPort(cfg.Cache.Redis.Port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
	)
	if err != nil {
		l.Warn("view cache disabled: redis unavailable", xlogger.Error(err))
		return nil
	}
	return cache.NewLayeredCache(rc)
}

// ProvideHandler creates the dashboard HTTP handler.
func ProvideHandler(cfg *config.Config, l *xlogger.Logger, store *state.Store, collector *usecase.TickCollector, vc cache.Service) *api.DashboardEchoHandler {
	opts := []api.HandlerOption{}
	if vc != nil {
		opts = append(opts, api.WithViewCache(vc, cfg.Cache.TTL))
	}
	return api.NewDashboardEchoHandler(l, store, collector.IsConnected, opts...)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *xlogger.Logger,
	store *state.Store,
	loader *usecase.SnapshotLoader,
	collector *usecase.TickCollector,
	handler *api.DashboardEchoHandler,
	vc cache.Service,
) *server.App {
	return server.New(cfg, l, store, loader, collector, handler, vc)
}
