package usecase

import (
	"context"
	"errors"
	"sync"

	"TradeBoard/internal/domain/models"
	drepo "TradeBoard/internal/domain/repository"
	"TradeBoard/internal/state"
	xlogger "TradeBoard/pkg/logger"
)

// TickCollector feeds live ticks from the market stream into the state
// store. There is exactly one stream connection per Start and no
// reconnection: a stream error ends the live feed, the snapshot state stays
// displayable.
type TickCollector struct {
	stream   drepo.MarketStream
	store    *state.Store
	metrics  drepo.Metrics
	logger   *xlogger.Logger
	stopOnce sync.Once
}

// NewTickCollector creates a TickCollector.
func NewTickCollector(stream drepo.MarketStream, store *state.Store, metrics drepo.Metrics, logger *xlogger.Logger) *TickCollector {
	return &TickCollector{stream: stream, store: store, metrics: metrics, logger: logger}
}

// IsConnected returns true if the market stream is connected.
func (c *TickCollector) IsConnected() bool {
	return c.stream.IsConnected()
}

// Start connects the stream and launches the consume loop.
func (c *TickCollector) Start(ctx context.Context) error {
	if err := c.stream.Connect(ctx); err != nil {
		return err
	}
	tickCh, errCh := c.stream.Read(ctx)
	go c.consume(ctx, tickCh, errCh)
	return nil
}

func (c *TickCollector) consume(ctx context.Context, tickCh <-chan *models.Tick, errCh <-chan error) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errCh:
			if !ok {
				return
			}
			if err != nil {
				c.metrics.RecordError("stream")
				c.logger.Error("stream: live feed stopped", xlogger.Error(err))
				return
			}
		case t, ok := <-tickCh:
			if !ok {
				return
			}
			if t == nil {
				continue
			}
			if err := c.store.Dispatch(models.TickEvent{Tick: t}); err != nil {
				if errors.Is(err, state.ErrClosed) {
					// tick raced with teardown; drop it
					return
				}
				c.metrics.RecordError("dispatch")
			}
		}
	}
}

// Shutdown closes the stream exactly once, in any connection state.
func (c *TickCollector) Shutdown(ctx context.Context) error {
	var err error
	c.stopOnce.Do(func() {
		err = c.stream.Close()
	})
	return err
}
