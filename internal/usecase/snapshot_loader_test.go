package usecase

import (
	"context"
	"errors"
	"testing"

	"TradeBoard/internal/domain/models"
	"TradeBoard/internal/state"
	xlogger "TradeBoard/pkg/logger"
)

type fakeSource struct {
	market    *models.MarketSnapshot
	marketErr error
	ai        *models.AIAnalysis
	aiErr     error
}

func (f *fakeSource) MarketData(ctx context.Context) (*models.MarketSnapshot, error) {
	return f.market, f.marketErr
}

func (f *fakeSource) AIAnalysis(ctx context.Context) (*models.AIAnalysis, error) {
	return f.ai, f.aiErr
}

type nopMetrics struct{}

func (nopMetrics) RecordTick(string)               {}
func (nopMetrics) RecordError(string)              {}
func (nopMetrics) RecordLastPrice(string, float64) {}
func (nopMetrics) RecordHistoryDepth(int)          {}
func (nopMetrics) RecordLatency(string, float64)   {}

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func TestSnapshotLoader_MergesBothSources(t *testing.T) {
	store := state.NewStore("BTCUSDT")
	src := &fakeSource{
		market: &models.MarketSnapshot{CurrentPrice: 42000, PriceChange24h: 1.1, Indicators: map[string]float64{"rsi_14": 60}},
		ai: &models.AIAnalysis{
			AverageConfidence:    75,
			RecommendedDirection: "BUY",
			GPTAnalysis:          &models.ModelAnalysis{Risk: 7},
		},
	}

	NewSnapshotLoader(src, store, nopMetrics{}, testLogger(t)).Load(context.Background())

	st, _ := store.Snapshot()
	if st.CurrentPrice != 42000 || st.Indicators["rsi_14"] != 60 {
		t.Fatalf("market snapshot not merged: %+v", st)
	}
	if st.AIRecommendation != models.SignalBuy || st.Confidence != 75 || st.RiskLevel != 7 {
		t.Fatalf("ai snapshot not merged: %+v", st)
	}
}

func TestSnapshotLoader_FailureIsBestEffort(t *testing.T) {
	store := state.NewStore("BTCUSDT")
	src := &fakeSource{
		marketErr: errors.New("backend down"),
		ai:        &models.AIAnalysis{AverageConfidence: 50, RecommendedDirection: "SELL"},
	}

	NewSnapshotLoader(src, store, nopMetrics{}, testLogger(t)).Load(context.Background())

	st, _ := store.Snapshot()
	// market fields at defaults, AI fields merged anyway
	if st.CurrentPrice != 0 {
		t.Fatalf("CurrentPrice = %v, want 0 after failed fetch", st.CurrentPrice)
	}
	if st.AIRecommendation != models.SignalSell || st.Confidence != 50 {
		t.Fatalf("ai merge should survive market failure: %+v", st)
	}
}

func TestSnapshotLoader_ReloadLastWriteWins(t *testing.T) {
	store := state.NewStore("BTCUSDT")
	src := &fakeSource{market: &models.MarketSnapshot{CurrentPrice: 100}}
	loader := NewSnapshotLoader(src, store, nopMetrics{}, testLogger(t))

	loader.Load(context.Background())
	src.market = &models.MarketSnapshot{CurrentPrice: 200}
	loader.Load(context.Background())

	st, _ := store.Snapshot()
	if st.CurrentPrice != 200 {
		t.Fatalf("CurrentPrice = %v, want 200 (last response wins)", st.CurrentPrice)
	}
}

func TestSnapshotLoader_DropsMergeAfterClose(t *testing.T) {
	store := state.NewStore("BTCUSDT")
	store.Close()
	src := &fakeSource{market: &models.MarketSnapshot{CurrentPrice: 100}}

	// must not panic or mutate torn-down state
	NewSnapshotLoader(src, store, nopMetrics{}, testLogger(t)).Load(context.Background())

	st, _ := store.Snapshot()
	if st.CurrentPrice != 0 {
		t.Fatalf("closed store mutated: %+v", st)
	}
}
