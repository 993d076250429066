package state

import (
	"reflect"
	"testing"

	"TradeBoard/internal/domain/models"
)

func TestApply_MarketSnapshotOwnsPriceFields(t *testing.T) {
	s := models.NewDisplayState("BTCUSDT")
	s.Confidence = 80
	s.AIRecommendation = models.SignalBuy
	s.RiskLevel = 4

	got := Apply(s, models.SnapshotMarketEvent{Snapshot: &models.MarketSnapshot{
		CurrentPrice:   42000,
		PriceChange24h: -1.5,
		Indicators:     map[string]float64{"rsi_14": 55},
	}})

	if got.CurrentPrice != 42000 || got.PriceChange24h != -1.5 {
		t.Fatalf("price fields not merged: %+v", got)
	}
	if got.Indicators["rsi_14"] != 55 {
		t.Fatalf("indicators not passed through: %+v", got.Indicators)
	}
	// AI-owned fields untouched
	if got.Confidence != 80 || got.AIRecommendation != models.SignalBuy || got.RiskLevel != 4 {
		t.Fatalf("market merge clobbered AI fields: %+v", got)
	}
}

func TestApply_AISnapshotOwnsAIFields(t *testing.T) {
	s := models.NewDisplayState("BTCUSDT")
	s.CurrentPrice = 42000
	s.PriceChange24h = 2.3
	s.Indicators = map[string]float64{"sma_20": 41000}

	got := Apply(s, models.SnapshotAIEvent{Analysis: &models.AIAnalysis{
		AverageConfidence:    72.5,
		RecommendedDirection: "SELL",
		GPTAnalysis:          &models.ModelAnalysis{Risk: 3},
		ClaudeAnalysis:       &models.ModelAnalysis{Risk: 9},
	}})

	if got.Confidence != 72.5 || got.AIRecommendation != models.SignalSell {
		t.Fatalf("ai fields not merged: %+v", got)
	}
	if got.RiskLevel != 9 {
		t.Fatalf("RiskLevel = %v, want 9 (max of model risks)", got.RiskLevel)
	}
	// market-owned fields untouched
	if got.CurrentPrice != 42000 || got.PriceChange24h != 2.3 || got.Indicators["sma_20"] != 41000 {
		t.Fatalf("ai merge clobbered market fields: %+v", got)
	}
}

func TestApply_RiskLevelMax(t *testing.T) {
	cases := []struct {
		name   string
		gpt    *models.ModelAnalysis
		claude *models.ModelAnalysis
		want   float64
	}{
		{"gpt only", &models.ModelAnalysis{Risk: 7}, nil, 7},
		{"claude only", nil, &models.ModelAnalysis{Risk: 5}, 5},
		{"both", &models.ModelAnalysis{Risk: 3}, &models.ModelAnalysis{Risk: 9}, 9},
		{"neither", nil, nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Apply(models.NewDisplayState("BTCUSDT"), models.SnapshotAIEvent{
				Analysis: &models.AIAnalysis{RecommendedDirection: "HOLD", GPTAnalysis: tc.gpt, ClaudeAnalysis: tc.claude},
			})
			if got.RiskLevel != tc.want {
				t.Fatalf("RiskLevel = %v, want %v", got.RiskLevel, tc.want)
			}
		})
	}
}

func TestApply_TickOverwritesPriceOnly(t *testing.T) {
	s := models.NewDisplayState("BTCUSDT")
	s.Confidence = 66
	s.AIRecommendation = models.SignalBuy
	s.RiskLevel = 2

	got := Apply(s, models.TickEvent{Tick: &models.Tick{CurrentPrice: 43111, PriceChange24h: 0.7}})

	if got.CurrentPrice != 43111 || got.PriceChange24h != 0.7 {
		t.Fatalf("tick not applied: %+v", got)
	}
	if got.Confidence != 66 || got.AIRecommendation != models.SignalBuy || got.RiskLevel != 2 {
		t.Fatalf("tick touched non-price fields: %+v", got)
	}
}

func TestApply_NilPayloadsIgnored(t *testing.T) {
	s := models.NewDisplayState("BTCUSDT")
	s.CurrentPrice = 100

	for _, ev := range []models.Event{
		models.SnapshotMarketEvent{},
		models.SnapshotAIEvent{},
		models.TickEvent{},
	} {
		if got := Apply(s, ev); !reflect.DeepEqual(got, s) {
			t.Fatalf("%s with nil payload changed state: %+v", ev.Kind(), got)
		}
	}
}

func TestParseSignal_Total(t *testing.T) {
	cases := map[string]models.Signal{
		"BUY":     models.SignalBuy,
		"SELL":    models.SignalSell,
		"HOLD":    models.SignalHold,
		"UNKNOWN": models.SignalHold,
		"":        models.SignalHold,
	}
	for in, want := range cases {
		if got := models.ParseSignal(in); got != want {
			t.Errorf("ParseSignal(%q) = %v, want %v", in, got, want)
		}
	}
}
