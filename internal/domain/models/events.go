package models

// Event is one of the closed set of state updates the reducer understands:
// SnapshotMarketEvent, SnapshotAIEvent, TickEvent.
type Event interface {
	Kind() string
}

// SnapshotMarketEvent carries a one-shot market-data response.
type SnapshotMarketEvent struct {
	Snapshot *MarketSnapshot
}

func (SnapshotMarketEvent) Kind() string { return "snapshot_market" }

// SnapshotAIEvent carries a one-shot AI-analysis response.
type SnapshotAIEvent struct {
	Analysis *AIAnalysis
}

func (SnapshotAIEvent) Kind() string { return "snapshot_ai" }

// TickEvent carries one live price update.
type TickEvent struct {
	Tick *Tick
}

func (TickEvent) Kind() string { return "tick" }
