package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	APILatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nestworth",
			Subsystem: "api",
			Name:      "latency_seconds",
			Help:      "Latency of analysis endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	APIErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nestworth",
			Subsystem: "api",
			Name:      "errors_total",
			Help:      "Errors by analysis endpoint",
		},
		[]string{"endpoint"},
	)

	ResponseCacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nestworth",
			Subsystem: "api",
			Name:      "response_cache_hits_total",
			Help:      "Response cache hits by analysis endpoint",
		},
		[]string{"endpoint"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(APILatency, APIErrors, ResponseCacheHits)
	})
}
