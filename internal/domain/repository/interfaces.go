package repository

// Metrics records analysis outcomes and latencies.
type Metrics interface {
	RecordAnalysis(outcome string)
	RecordError(kind string)
	RecordReadiness(level string, score float64)
	RecordLatency(op string, seconds float64)
}
