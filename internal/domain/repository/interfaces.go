package repository

import (
	"context"

	"TradeBoard/internal/domain/models"
)

// MarketStream is the live tick source. One connection per Start; Close must
// be safe to call more than once and in any connection state.
type MarketStream interface {
	Connect(ctx context.Context) error
	Read(ctx context.Context) (<-chan *models.Tick, <-chan error)
	Close() error
	IsConnected() bool
}

// SnapshotSource serves the two one-shot reads issued at startup.
type SnapshotSource interface {
	MarketData(ctx context.Context) (*models.MarketSnapshot, error)
	AIAnalysis(ctx context.Context) (*models.AIAnalysis, error)
}

type Metrics interface {
	RecordTick(pair string)
	RecordError(kind string)
	RecordLastPrice(pair string, price float64)
	RecordHistoryDepth(n int)
	RecordLatency(op string, seconds float64)
}
