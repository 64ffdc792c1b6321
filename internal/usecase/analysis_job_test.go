package usecase

import (
	"context"
	"testing"

	"NestWorth/pkg/cache"
	"NestWorth/pkg/logger"
)

func testJob(t *testing.T) (*AnalysisJob, cache.Service) {
	t.Helper()
	lgr, err := logger.New(&logger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	mem := cache.NewMemoryCache()
	t.Cleanup(func() { _ = mem.Close() })
	analyzer := NewAnalyzer(testConfig(), mem, noopMetrics{}, lgr)
	return NewAnalysisJob(analyzer, mem, lgr), mem
}

func TestAnalysisJobHandleStoresResult(t *testing.T) {
	job, store := testJob(t)
	ctx := context.Background()

	payload := &AnalysisJobPayload{
		JobID:   "job-1",
		Profile: testProfile(),
		Market:  testMarket(),
	}
	if err := job.Handle(ctx, payload); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	var status JobStatus
	if err := store.Get(ctx, JobResultKey("job-1"), &status); err != nil {
		t.Fatalf("job result not cached: %v", err)
	}
	if status.State != JobStateCompleted {
		t.Errorf("State = %q, want %q (error: %s)", status.State, JobStateCompleted, status.Error)
	}
	if status.Report == nil || status.Report.Readiness == nil {
		t.Error("completed job carries no report")
	}
}

func TestAnalysisJobHandleRecordsFailure(t *testing.T) {
	job, store := testJob(t)
	ctx := context.Background()

	bad := testProfile()
	bad.AnnualIncome = -5
	payload := &AnalysisJobPayload{JobID: "job-2", Profile: bad, Market: testMarket()}
	if err := job.Handle(ctx, payload); err != nil {
		t.Fatalf("Handle should park the failure, got %v", err)
	}

	var status JobStatus
	if err := store.Get(ctx, JobResultKey("job-2"), &status); err != nil {
		t.Fatalf("failed job result not cached: %v", err)
	}
	if status.State != JobStateFailed || status.Error == "" {
		t.Errorf("status = %+v, want failed with error text", status)
	}
}

func TestAnalysisJobHandleRejectsMissingID(t *testing.T) {
	job, _ := testJob(t)
	payload := &AnalysisJobPayload{Profile: testProfile(), Market: testMarket()}
	if err := job.Handle(context.Background(), payload); err == nil {
		t.Error("payload without job id accepted")
	}
}
