package usecase

import (
	"context"
	"time"

	"TradeBoard/internal/domain/models"
	drepo "TradeBoard/internal/domain/repository"
	"TradeBoard/internal/state"
	xlogger "TradeBoard/pkg/logger"
)

// SnapshotLoader seeds the display state at startup. Both reads are
// best-effort: a failed or malformed response is logged and dropped, never
// retried, and leaves previously merged fields untouched.
type SnapshotLoader struct {
	source  drepo.SnapshotSource
	store   *state.Store
	metrics drepo.Metrics
	logger  *xlogger.Logger
}

// NewSnapshotLoader creates a SnapshotLoader.
func NewSnapshotLoader(source drepo.SnapshotSource, store *state.Store, metrics drepo.Metrics, logger *xlogger.Logger) *SnapshotLoader {
	return &SnapshotLoader{source: source, store: store, metrics: metrics, logger: logger}
}

// Load issues the market-data and AI-analysis reads and merges each result
// independently. Safe to call again: the reducer is last-write-wins per
// field, and a closed store rejects the merge (the component unmounted
// before the response landed).
func (l *SnapshotLoader) Load(ctx context.Context) {
	start := time.Now()

	if snap, err := l.source.MarketData(ctx); err != nil {
		l.metrics.RecordError("snapshot_market")
		l.logger.Error("snapshot: market data fetch failed", xlogger.Error(err))
	} else if err := l.store.Dispatch(models.SnapshotMarketEvent{Snapshot: snap}); err != nil {
		l.logger.Warn("snapshot: market merge dropped", xlogger.Error(err))
	}

	if analysis, err := l.source.AIAnalysis(ctx); err != nil {
		l.metrics.RecordError("snapshot_ai")
		l.logger.Error("snapshot: ai analysis fetch failed", xlogger.Error(err))
	} else if err := l.store.Dispatch(models.SnapshotAIEvent{Analysis: analysis}); err != nil {
		l.logger.Warn("snapshot: ai merge dropped", xlogger.Error(err))
	}

	l.metrics.RecordLatency("snapshot_load", time.Since(start).Seconds())
}
