package view

import (
	"fmt"

	"TradeBoard/internal/domain/models"
	"TradeBoard/pkg/util"
)

// Color is the visual accent applied to the recommendation card.
type Color string

const (
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
)

// SignalColor maps a recommendation to its display color. Total over any
// signal value: BUY is affirmative, SELL is negative, everything else
// (HOLD included) renders as caution.
func SignalColor(s models.Signal) Color {
	switch s {
	case models.SignalBuy:
		return ColorGreen
	case models.SignalSell:
		return ColorRed
	default:
		return ColorYellow
	}
}

// Card is one stat tile on the dashboard.
type Card struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Color Color  `json:"color,omitempty"`
}

// Dashboard is the rendered view model: pure output, no state behind it.
type Dashboard struct {
	Pair           string              `json:"pair"`
	Cards          []Card              `json:"cards"`
	Chart          []models.PricePoint `json:"chart"`
	Recommendation models.Signal       `json:"recommendation"`
	Color          Color               `json:"color"`
	Indicators     map[string]float64  `json:"indicators,omitempty"`
}

// Build derives the dashboard view from the display state and price history.
// Pure: zero/absent values format without error, inputs are never mutated.
func Build(s models.DisplayState, points []models.PricePoint) Dashboard {
	color := SignalColor(s.AIRecommendation)
	return Dashboard{
		Pair: s.Pair,
		Cards: []Card{
			{Title: "Current Price", Value: util.FormatUSD(s.CurrentPrice)},
			{Title: "24h Change", Value: util.FormatSignedPercent(s.PriceChange24h), Color: changeColor(s.PriceChange24h)},
			{Title: "AI Recommendation", Value: string(s.AIRecommendation), Color: color},
			{Title: "Confidence", Value: fmt.Sprintf("%.1f%%", s.Confidence)},
			{Title: "Risk Level", Value: fmt.Sprintf("%.1f / 10", s.RiskLevel)},
		},
		Chart:          points,
		Recommendation: s.AIRecommendation,
		Color:          color,
		Indicators:     s.Indicators,
	}
}

func changeColor(change float64) Color {
	switch {
	case change > 0:
		return ColorGreen
	case change < 0:
		return ColorRed
	default:
		return ColorYellow
	}
}
