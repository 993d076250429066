package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_MarketData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/market-data" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"symbol": "BTCUSDT",
			"current_price": 43000.5,
			"price_change_24h": -1.2,
			"indicators": {"rsi_14": 48.5, "sma_20": 42500}
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	snap, err := c.MarketData(context.Background())
	if err != nil {
		t.Fatalf("MarketData: %v", err)
	}
	if snap.CurrentPrice != 43000.5 || snap.PriceChange24h != -1.2 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.Indicators["rsi_14"] != 48.5 {
		t.Fatalf("indicators not decoded: %+v", snap.Indicators)
	}
}

func TestClient_AIAnalysisPartialModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ai-analysis" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"average_confidence": 68,
			"recommended_direction": "BUY",
			"gpt_analysis": {"risk": 7}
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	analysis, err := c.AIAnalysis(context.Background())
	if err != nil {
		t.Fatalf("AIAnalysis: %v", err)
	}
	if analysis.ClaudeAnalysis != nil {
		t.Fatalf("absent model should decode as nil")
	}
	if got := analysis.RiskLevel(); got != 7 {
		t.Fatalf("RiskLevel() = %v, want 7", got)
	}
}

func TestClient_NonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	if _, err := c.MarketData(context.Background()); err == nil {
		t.Fatal("expected error on 500")
	}
	if _, err := c.AIAnalysis(context.Background()); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestClient_MalformedJSONIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	if _, err := c.MarketData(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}
