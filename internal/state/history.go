package state

import "TradeBoard/internal/domain/models"

// DefaultHistorySize is the rolling chart depth shown on the dashboard.
const DefaultHistorySize = 20

// History is a fixed-size circular buffer of the most recent price points.
// Eviction is strict FIFO: once full, every push overwrites the oldest entry.
// Points are kept in arrival order; duplicates are recorded verbatim.
//
// Not safe for concurrent use; the owning Store serializes access.
type History struct {
	buf  []models.PricePoint
	cap  int
	pos  int // next write position
	full bool
}

// NewHistory creates a history buffer with the given capacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &History{
		buf: make([]models.PricePoint, capacity),
		cap: capacity,
	}
}

// Push appends a point, evicting the oldest entry when full.
func (h *History) Push(p models.PricePoint) {
	h.buf[h.pos] = p
	h.pos = (h.pos + 1) % h.cap
	if h.pos == 0 && !h.full {
		h.full = true
	}
}

// Points returns the buffered points oldest-first as a fresh slice.
func (h *History) Points() []models.PricePoint {
	n := h.Len()
	out := make([]models.PricePoint, n)
	for i := 0; i < n; i++ {
		out[i] = h.buf[h.index(i)]
	}
	return out
}

// Len returns the number of points currently buffered.
func (h *History) Len() int {
	if h.full {
		return h.cap
	}
	return h.pos
}

// Cap returns the buffer capacity.
func (h *History) Cap() int { return h.cap }

// index converts a logical index (0 = oldest) to a physical buffer index.
func (h *History) index(logical int) int {
	if h.full {
		return (h.pos + logical) % h.cap
	}
	return logical
}
