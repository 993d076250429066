package models

// Signal is the trade direction recommended by the AI backend.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// ParseSignal maps an upstream direction string onto the closed Signal set.
// Anything unrecognized collapses to HOLD.
func ParseSignal(s string) Signal {
	switch Signal(s) {
	case SignalBuy:
		return SignalBuy
	case SignalSell:
		return SignalSell
	default:
		return SignalHold
	}
}

// DisplayState is the single source of truth the dashboard renders from.
// Zero values (0 / HOLD) are valid displayable state until the corresponding
// data source has responded.
type DisplayState struct {
	Pair             string
	CurrentPrice     float64
	PriceChange24h   float64
	Confidence       float64
	AIRecommendation Signal
	RiskLevel        float64
	Indicators       map[string]float64
}

// NewDisplayState returns the mount-time defaults for a trading pair.
func NewDisplayState(pair string) DisplayState {
	return DisplayState{Pair: pair, AIRecommendation: SignalHold}
}

// PricePoint is one entry of the rolling price history.
type PricePoint struct {
	Time  string  `json:"time"`
	Price float64 `json:"price"`
}

// Tick is a single decoded stream message.
type Tick struct {
	CurrentPrice   float64 `json:"current_price"`
	PriceChange24h float64 `json:"price_change_24h"`
}

// MarketSnapshot mirrors the backend's /api/market-data payload.
type MarketSnapshot struct {
	Symbol         string             `json:"symbol"`
	CurrentPrice   float64            `json:"current_price"`
	PriceChange24h float64            `json:"price_change_24h"`
	Volume24h      float64            `json:"volume_24h"`
	High24h        float64            `json:"high_24h"`
	Low24h         float64            `json:"low_24h"`
	Trend          string             `json:"trend"`
	Volatility     float64            `json:"volatility"`
	Indicators     map[string]float64 `json:"indicators"`
}

// ModelAnalysis is one model's risk estimate, consumed opaquely.
type ModelAnalysis struct {
	Risk float64 `json:"risk"`
}

// AIAnalysis mirrors the backend's /api/ai-analysis payload. Either model
// section may be absent; absence reads as risk 0.
type AIAnalysis struct {
	AverageConfidence    float64        `json:"average_confidence"`
	RecommendedDirection string         `json:"recommended_direction"`
	GPTAnalysis          *ModelAnalysis `json:"gpt_analysis,omitempty"`
	ClaudeAnalysis       *ModelAnalysis `json:"claude_analysis,omitempty"`
}

// RiskLevel combines the independent model risks: max of the present ones,
// absent sources count as 0.
func (a *AIAnalysis) RiskLevel() float64 {
	var gpt, claude float64
	if a.GPTAnalysis != nil {
		gpt = a.GPTAnalysis.Risk
	}
	if a.ClaudeAnalysis != nil {
		claude = a.ClaudeAnalysis.Risk
	}
	if gpt > claude {
		return gpt
	}
	return claude
}
