package state

import (
	"errors"
	"sync"
	"time"

	"TradeBoard/internal/domain/models"
	drepo "TradeBoard/internal/domain/repository"
	"TradeBoard/pkg/util"
)

// ErrClosed is returned by Dispatch after the store has been torn down.
// Callers treat it as "component unmounted" and drop the event.
var ErrClosed = errors.New("state: store closed")

// Store owns the display state and price history for one dashboard instance.
// All updates go through Dispatch, which applies the reducer under a single
// lock, so no two event handlers ever mutate state concurrently.
type Store struct {
	mu      sync.Mutex
	state   models.DisplayState
	history *History
	closed  bool
	metrics drepo.Metrics
	now     func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithMetrics attaches a metrics recorder.
func WithMetrics(m drepo.Metrics) StoreOption {
	return func(s *Store) { s.metrics = m }
}

// WithClock overrides the wall clock used to stamp history points.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithHistorySize sets the rolling history capacity.
func WithHistorySize(n int) StoreOption {
	return func(s *Store) { s.history = NewHistory(n) }
}

// NewStore creates a store seeded with the default display state for pair.
func NewStore(pair string, opts ...StoreOption) *Store {
	s := &Store{
		state:   models.NewDisplayState(pair),
		history: NewHistory(DefaultHistorySize),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies one event to the state. Tick events additionally append a
// clock-stamped point to the history buffer. Returns ErrClosed once the
// store has been closed; the event is then ignored.
func (s *Store) Dispatch(ev models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	s.state = Apply(s.state, ev)

	if te, ok := ev.(models.TickEvent); ok && te.Tick != nil {
		s.history.Push(models.PricePoint{
			Time:  util.FormatClock(s.now()),
			Price: te.Tick.CurrentPrice,
		})
		if s.metrics != nil {
			s.metrics.RecordTick(s.state.Pair)
			s.metrics.RecordLastPrice(s.state.Pair, te.Tick.CurrentPrice)
			s.metrics.RecordHistoryDepth(s.history.Len())
		}
	}
	return nil
}

// Snapshot returns copies of the current state and history, safe to read
// while dispatching continues.
func (s *Store) Snapshot() (models.DisplayState, []models.PricePoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.history.Points()
}

// Close tears the store down. Idempotent; any Dispatch racing with or
// following Close is rejected, so a tick arriving during teardown can never
// mutate the buffer.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Closed reports whether the store has been torn down.
func (s *Store) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
