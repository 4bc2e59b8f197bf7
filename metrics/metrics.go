package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ReturnsProcessed prometheus.Counter
	ReturnConflicts  prometheus.Counter
	RestockFailures  prometheus.Counter
	ReturnDuration   prometheus.Histogram
}

func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers on the given registerer; tests pass their own registry.
func NewWith(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		ReturnsProcessed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "movierental_returns_processed_total",
			Help: "Total number of rentals successfully returned",
		}),
		ReturnConflicts: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "movierental_return_conflicts_total",
			Help: "Returns rejected because the rental was already closed",
		}),
		RestockFailures: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "movierental_restock_failures_total",
			Help: "Inventory increments that failed after a rental close",
		}),
		ReturnDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "movierental_return_duration_seconds",
			Help:    "Duration of the rental return workflow",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

func (m *Metrics) IncReturnProcessed() {
	if m == nil {
		return
	}
	m.ReturnsProcessed.Inc()
}

func (m *Metrics) IncReturnConflict() {
	if m == nil {
		return
	}
	m.ReturnConflicts.Inc()
}

func (m *Metrics) IncRestockFailure() {
	if m == nil {
		return
	}
	m.RestockFailures.Inc()
}

func (m *Metrics) ObserveReturn(start time.Time) {
	if m == nil {
		return
	}
	m.ReturnDuration.Observe(time.Since(start).Seconds())
}
