package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prediction outcomes recorded per request.
const (
	OutcomeOK       = "ok"
	OutcomeCacheHit = "cache_hit"
	OutcomeError    = "error"
	OutcomeRejected = "rejected"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	predictions *prometheus.CounterVec
	duration    prometheus.Histogram
}

// New registers the service collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		predictions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "babel_predictions_total",
			Help: "Language identification requests by predicted language and outcome.",
		}, []string{"language", "outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "babel_inference_duration_seconds",
			Help:    "Wall time spent serving one identification request.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObservePrediction records one handled request.
func (m *Metrics) ObservePrediction(language, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.predictions.WithLabelValues(language, outcome).Inc()
	m.duration.Observe(d.Seconds())
}
