package state

import (
	"errors"
	"sync"
	"testing"
	"time"

	"TradeBoard/internal/domain/models"
)

func fixedClock() func() time.Time {
	t := time.Date(2024, 10, 10, 14, 30, 5, 0, time.UTC)
	return func() time.Time { return t }
}

func TestStore_TickAppendsHistoryPoint(t *testing.T) {
	s := NewStore("BTCUSDT", WithClock(fixedClock()))

	if err := s.Dispatch(models.TickEvent{Tick: &models.Tick{CurrentPrice: 43000, PriceChange24h: 1.2}}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	st, points := s.Snapshot()
	if st.CurrentPrice != 43000 {
		t.Fatalf("CurrentPrice = %v, want 43000", st.CurrentPrice)
	}
	if len(points) != 1 {
		t.Fatalf("history len = %d, want 1", len(points))
	}
	if points[0].Time != "14:30:05" {
		t.Errorf("point time = %q, want clock string", points[0].Time)
	}
	if points[0].Price != 43000 {
		t.Errorf("point price = %v, want 43000", points[0].Price)
	}
}

func TestStore_TwentyTwoTicksScenario(t *testing.T) {
	s := NewStore("BTCUSDT", WithClock(fixedClock()))

	// 22 messages with prices 100..121
	for i := 0; i <= 21; i++ {
		if err := s.Dispatch(models.TickEvent{Tick: &models.Tick{CurrentPrice: float64(100 + i)}}); err != nil {
			t.Fatalf("dispatch %d: %v", i, err)
		}
	}

	st, points := s.Snapshot()
	if st.CurrentPrice != 121 {
		t.Fatalf("CurrentPrice = %v, want 121", st.CurrentPrice)
	}
	if len(points) != 20 {
		t.Fatalf("history len = %d, want 20", len(points))
	}
	if points[0].Price != 102 || points[19].Price != 121 {
		t.Fatalf("history window = [%v..%v], want [102..121]", points[0].Price, points[19].Price)
	}
}

func TestStore_SnapshotLoadersMergeIndependently(t *testing.T) {
	s := NewStore("BTCUSDT")

	if err := s.Dispatch(models.SnapshotMarketEvent{Snapshot: &models.MarketSnapshot{CurrentPrice: 42000}}); err != nil {
		t.Fatalf("market dispatch: %v", err)
	}
	st, points := s.Snapshot()
	if st.CurrentPrice != 42000 {
		t.Fatalf("CurrentPrice = %v, want 42000", st.CurrentPrice)
	}
	// snapshots never touch the history buffer
	if len(points) != 0 {
		t.Fatalf("history len = %d, want 0 after snapshot", len(points))
	}
	// AI fields still at defaults; partial population is displayable
	if st.AIRecommendation != models.SignalHold || st.Confidence != 0 {
		t.Fatalf("AI defaults disturbed: %+v", st)
	}
}

func TestStore_CloseRejectsFurtherDispatch(t *testing.T) {
	s := NewStore("BTCUSDT")

	if err := s.Dispatch(models.TickEvent{Tick: &models.Tick{CurrentPrice: 100}}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	s.Close()
	s.Close() // idempotent

	err := s.Dispatch(models.TickEvent{Tick: &models.Tick{CurrentPrice: 200}})
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("dispatch after close = %v, want ErrClosed", err)
	}

	st, points := s.Snapshot()
	if st.CurrentPrice != 100 || len(points) != 1 {
		t.Fatalf("state mutated after close: price=%v len=%d", st.CurrentPrice, len(points))
	}
}

func TestStore_CloseRacingTicks(t *testing.T) {
	s := NewStore("BTCUSDT")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = s.Dispatch(models.TickEvent{Tick: &models.Tick{CurrentPrice: float64(i)}})
		}
	}()
	go func() {
		defer wg.Done()
		s.Close()
	}()
	wg.Wait()

	if !s.Closed() {
		t.Fatal("store should be closed")
	}
	// whatever landed before Close must respect the bound
	_, points := s.Snapshot()
	if len(points) > DefaultHistorySize {
		t.Fatalf("history len = %d, exceeds bound", len(points))
	}
}
