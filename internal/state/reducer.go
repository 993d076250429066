package state

import "TradeBoard/internal/domain/models"

// Apply folds one event into the display state. Pure: the input state is not
// modified and no I/O happens here.
//
// Each event kind owns a disjoint field subset, so replaying any one source
// never clobbers fields populated by another. Last write wins per field,
// which makes re-running the snapshot loaders safe.
func Apply(s models.DisplayState, ev models.Event) models.DisplayState {
	switch e := ev.(type) {
	case models.SnapshotMarketEvent:
		if e.Snapshot == nil {
			return s
		}
		s.CurrentPrice = e.Snapshot.CurrentPrice
		s.PriceChange24h = e.Snapshot.PriceChange24h
		s.Indicators = e.Snapshot.Indicators
	case models.SnapshotAIEvent:
		if e.Analysis == nil {
			return s
		}
		s.Confidence = e.Analysis.AverageConfidence
		s.AIRecommendation = models.ParseSignal(e.Analysis.RecommendedDirection)
		s.RiskLevel = e.Analysis.RiskLevel()
	case models.TickEvent:
		if e.Tick == nil {
			return s
		}
		s.CurrentPrice = e.Tick.CurrentPrice
		s.PriceChange24h = e.Tick.PriceChange24h
	}
	return s
}
