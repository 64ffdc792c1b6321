package usecase

import (
	"context"
	"fmt"
	"time"

	"NestWorth/internal/domain/models"
	"NestWorth/pkg/cache"
	"NestWorth/pkg/logger"
	"NestWorth/pkg/queue"
)

// AnalysisJobType is the queue message type the analysis job handles.
const AnalysisJobType = "analysis.run"

// JobPublisher enqueues background work. Satisfied by queue.RedisQueue.
type JobPublisher interface {
	PublishMessage(ctx context.Context, msgType string, payload interface{}) error
}

// Job result TTL is longer than the report TTL so a client polling a job
// ID does not race the cache eviction.
const jobResultTTL = time.Hour

// AnalysisJobPayload is the queue payload for one background analysis run.
type AnalysisJobPayload struct {
	JobID   string                  `json:"job_id"`
	Profile *models.BorrowerProfile `json:"profile"`
	Market  *models.MarketSnapshot  `json:"market"`
}

// JobStatus is what a client polling a job ID receives.
type JobStatus struct {
	JobID  string                 `json:"job_id"`
	State  string                 `json:"state"`
	Error  string                 `json:"error,omitempty"`
	Report *models.AnalysisReport `json:"report,omitempty"`
}

// Job states.
const (
	JobStatePending   = "pending"
	JobStateCompleted = "completed"
	JobStateFailed    = "failed"
)

// AnalysisJob runs full analyses off the request path. Results are parked
// in the cache under the job ID; no persistence layer backs them.
type AnalysisJob struct {
	analyzer *Analyzer
	cache    cache.Service
	logger   *logger.Logger
}

func NewAnalysisJob(analyzer *Analyzer, c cache.Service, lgr *logger.Logger) *AnalysisJob {
	return &AnalysisJob{analyzer: analyzer, cache: c, logger: lgr}
}

func (j *AnalysisJob) Name() string { return "analysis-runner" }

func (j *AnalysisJob) Type() string { return AnalysisJobType }

// Handle runs the analysis and stores the outcome under the job key. A
// failed run is recorded as a failed status rather than retried forever,
// since engine failures are input errors, not transient conditions.
func (j *AnalysisJob) Handle(ctx context.Context, payload interface{}) error {
	p, err := queue.ParsePayload[AnalysisJobPayload](payload)
	if err != nil {
		return fmt.Errorf("parse analysis payload: %w", err)
	}
	if p.JobID == "" {
		return fmt.Errorf("analysis payload missing job id")
	}

	report, err := j.analyzer.Analyze(ctx, p.Profile, p.Market)
	status := JobStatus{JobID: p.JobID, State: JobStateCompleted, Report: report}
	if err != nil {
		status = JobStatus{JobID: p.JobID, State: JobStateFailed, Error: err.Error()}
		j.logger.Warn("analysis job failed",
			logger.String("job_id", p.JobID),
			logger.Error(err))
	}

	if cacheErr := j.cache.Set(ctx, JobResultKey(p.JobID), status, jobResultTTL); cacheErr != nil {
		return fmt.Errorf("store job result: %w", cacheErr)
	}
	return nil
}

// JobResultKey is the cache key a job result lives under.
func JobResultKey(jobID string) string {
	return cache.GenerateKey("analysis:job", jobID)
}

var _ queue.Job = (*AnalysisJob)(nil)
