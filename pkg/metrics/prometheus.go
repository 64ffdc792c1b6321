package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	analysesTotal *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	readiness     *prometheus.GaugeVec
	latency       *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		analysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nestworth_analyses_total",
				Help: "Total number of analysis runs by outcome",
			},
			[]string{"outcome"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nestworth_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		readiness: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "nestworth_readiness_score",
				Help: "Last computed readiness score by level",
			},
			[]string{"level"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nestworth_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordAnalysis records a completed analysis run.
func (r *Recorder) RecordAnalysis(outcome string) {
	r.analysesTotal.WithLabelValues(outcome).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordReadiness records the last readiness score for a level.
func (r *Recorder) RecordReadiness(level string, score float64) {
	r.readiness.WithLabelValues(level).Set(score)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
