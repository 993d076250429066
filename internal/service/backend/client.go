package backend

import (
	"context"
	"fmt"
	"time"

	"TradeBoard/internal/domain/models"
	drepo "TradeBoard/internal/domain/repository"
	xhttp "TradeBoard/pkg/http"
)

const (
	marketDataPath = "/api/market-data"
	aiAnalysisPath = "/api/ai-analysis"
)

// Client is the HTTP SnapshotSource for the trading-bot backend.
type Client struct {
	baseURL string
	client  *xhttp.Client
}

// New creates a snapshot client with the given base URL and timeout.
func New(baseURL string, timeout time.Duration) drepo.SnapshotSource {
	return &Client{
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// MarketData fetches the one-shot market snapshot.
func (c *Client) MarketData(ctx context.Context) (*models.MarketSnapshot, error) {
	var snap models.MarketSnapshot
	if err := c.client.GetJSON(ctx, c.baseURL+marketDataPath, &snap); err != nil {
		return nil, fmt.Errorf("get market data: %w", err)
	}
	return &snap, nil
}

// AIAnalysis fetches the one-shot AI analysis snapshot.
func (c *Client) AIAnalysis(ctx context.Context) (*models.AIAnalysis, error) {
	var analysis models.AIAnalysis
	if err := c.client.GetJSON(ctx, c.baseURL+aiAnalysisPath, &analysis); err != nil {
		return nil, fmt.Errorf("get ai analysis: %w", err)
	}
	return &analysis, nil
}
