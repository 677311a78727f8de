package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Assessment outcomes recorded by the risk pipeline.
const (
	OutcomeOK               = "ok"
	OutcomeFallbackParse    = "fallback_parse"
	OutcomeFallbackUpstream = "fallback_upstream"
)

// Recorder exposes Prometheus metrics for the risk assessment pipeline.
type Recorder struct {
	assessments    *prometheus.CounterVec
	upstreamErrs   *prometheus.CounterVec
	upstreamTime   prometheus.Histogram
	lastVolatility prometheus.Gauge
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		assessments: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lendrisk_assessments_total",
				Help: "Total number of risk assessments by outcome",
			},
			[]string{"outcome"},
		),
		upstreamErrs: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lendrisk_upstream_errors_total",
				Help: "Total number of upstream model errors",
			},
			[]string{"kind"},
		),
		upstreamTime: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lendrisk_upstream_request_duration_seconds",
				Help:    "Duration of upstream model calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		lastVolatility: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "lendrisk_last_volatility_score",
				Help: "Volatility score of the most recent assessment",
			},
		),
	}
}

// RecordAssessment records a completed assessment with its outcome.
func (r *Recorder) RecordAssessment(outcome string) {
	r.assessments.WithLabelValues(outcome).Inc()
}

// RecordUpstreamError records an upstream failure by kind.
func (r *Recorder) RecordUpstreamError(kind string) {
	r.upstreamErrs.WithLabelValues(kind).Inc()
}

// RecordUpstreamLatency records the duration of an upstream call in seconds.
func (r *Recorder) RecordUpstreamLatency(seconds float64) {
	r.upstreamTime.Observe(seconds)
}

// RecordVolatilityScore records the volatility score of the latest assessment.
func (r *Recorder) RecordVolatilityScore(score float64) {
	r.lastVolatility.Set(score)
}
