package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct {
	ticksTotal   *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	lastPrice    *prometheus.GaugeVec
	historyDepth prometheus.Gauge
	latency      *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		ticksTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradeboard_ticks_total",
				Help: "Total number of live ticks applied to the dashboard",
			},
			[]string{"pair"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradeboard_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tradeboard_last_price",
				Help: "Last recorded price for a pair",
			},
			[]string{"pair"},
		),
		historyDepth: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "tradeboard_history_depth",
				Help: "Number of points currently held in the price history",
			},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tradeboard_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordTick counts one applied live tick.
func (r *Recorder) RecordTick(pair string) {
	r.ticksTotal.WithLabelValues(pair).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastPrice records the last price for a pair.
func (r *Recorder) RecordLastPrice(pair string, price float64) {
	r.lastPrice.WithLabelValues(pair).Set(price)
}

// RecordHistoryDepth records the current history buffer depth.
func (r *Recorder) RecordHistoryDepth(n int) {
	r.historyDepth.Set(float64(n))
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
