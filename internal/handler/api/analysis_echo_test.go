package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	icache "NestWorth/internal/service/cache"
	"NestWorth/internal/usecase"
	"NestWorth/pkg/cache"
	"NestWorth/pkg/config"
	"NestWorth/pkg/logger"
)

type stubMetrics struct{}

func (stubMetrics) RecordAnalysis(string)           {}
func (stubMetrics) RecordError(string)              {}
func (stubMetrics) RecordReadiness(string, float64) {}
func (stubMetrics) RecordLatency(string, float64)   {}

type stubPublisher struct {
	msgType string
	payload interface{}
}

func (s *stubPublisher) PublishMessage(_ context.Context, msgType string, payload interface{}) error {
	s.msgType = msgType
	s.payload = payload
	return nil
}

func testHandler(t *testing.T) (*AnalysisEchoHandler, *echo.Echo) {
	t.Helper()
	lgr, err := logger.New(&logger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	mem := cache.NewMemoryCache()
	t.Cleanup(func() { _ = mem.Close() })

	cfg := &config.Config{}
	cfg.Cache.ReportTTL = 15 * time.Minute
	cfg.Engine.MaxFrontEndDTI = 0.28
	cfg.Engine.MaxBackEndDTI = 0.36
	cfg.Engine.PropertyTaxRate = 0.012
	cfg.Engine.AnnualInsurance = 1500
	cfg.Engine.PMIRate = 0.0085

	analyzer := usecase.NewAnalyzer(cfg, mem, stubMetrics{}, lgr)
	h := NewAnalysisEchoHandler(lgr, analyzer, mem)
	h.SetRateLimit(100, 100)

	e := echo.New()
	h.RegisterRoutes(e)
	return h, e
}

const validBody = `{
	"profile": {
		"annual_income": 100000,
		"monthly_debts": 500,
		"down_payment_savings": 50000,
		"additional_savings": 30000,
		"credit_score": 740,
		"monthly_expenses": 3000,
		"current_rent": 2200
	},
	"market": {
		"rate_30_year": 6.5,
		"rate_15_year": 5.9,
		"inflation_rate": 3.1
	}
}`

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAnalysisEndpointOK(t *testing.T) {
	_, e := testHandler(t)

	rec := postJSON(e, "/api/analysis", validBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Status int             `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	for _, section := range []string{"affordability", "stress_tests", "emergency_fund", "rent_vs_buy", "readiness"} {
		if !strings.Contains(string(envelope.Data), section) {
			t.Errorf("report missing %q section", section)
		}
	}
}

func TestComponentEndpointsOK(t *testing.T) {
	_, e := testHandler(t)

	for _, path := range []string{"/api/affordability", "/api/stress", "/api/rentvsbuy", "/api/readiness"} {
		rec := postJSON(e, path, validBody)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, body: %s", path, rec.Code, rec.Body.String())
		}
	}
}

func TestValidationRejectsBadProfile(t *testing.T) {
	_, e := testHandler(t)

	bad := strings.Replace(validBody, `"credit_score": 740`, `"credit_score": 200`, 1)
	rec := postJSON(e, "/api/analysis", bad)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("credit score 200: status = %d, want 400", rec.Code)
	}

	missing := strings.Replace(validBody, `"rate_30_year": 6.5,`, "", 1)
	rec = postJSON(e, "/api/stress", missing)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing rate: status = %d, want 400", rec.Code)
	}
}

func TestRateLimitReturns429(t *testing.T) {
	h, e := testHandler(t)
	h.SetRateLimit(1, 0.001)

	first := postJSON(e, "/api/affordability", validBody)
	if first.Code != http.StatusOK {
		t.Fatalf("first request: status = %d", first.Code)
	}
	second := postJSON(e, "/api/affordability", validBody)
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request: status = %d, want 429", second.Code)
	}
}

func TestResponseCacheServesRepeatRequest(t *testing.T) {
	h, e := testHandler(t)
	store := icache.NewTTLCache()
	h.SetResponseCache(store, time.Minute)

	first := postJSON(e, "/api/rentvsbuy", validBody)
	second := postJSON(e, "/api/rentvsbuy", validBody)
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("status = %d, %d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Error("cached response differs from original")
	}
}

func TestCreateJobWithoutQueueIs404(t *testing.T) {
	_, e := testHandler(t)

	rec := postJSON(e, "/api/analysis/jobs", validBody)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 when queue disabled", rec.Code)
	}
}

func TestCreateJobEnqueuesAndTracksStatus(t *testing.T) {
	h, e := testHandler(t)
	pub := &stubPublisher{}
	h.SetJobPublisher(pub)

	rec := postJSON(e, "/api/analysis/jobs", validBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if pub.msgType != usecase.AnalysisJobType {
		t.Errorf("published type %q, want %q", pub.msgType, usecase.AnalysisJobType)
	}

	var envelope struct {
		Data usecase.JobStatus `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Data.JobID == "" || envelope.Data.State != usecase.JobStatePending {
		t.Fatalf("job status = %+v", envelope.Data)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/analysis/jobs/"+envelope.Data.JobID, nil)
	poll := httptest.NewRecorder()
	e.ServeHTTP(poll, req)
	if poll.Code != http.StatusOK {
		t.Errorf("poll status = %d, body: %s", poll.Code, poll.Body.String())
	}
}

func TestJobStatusUnknownIDIs404(t *testing.T) {
	_, e := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/analysis/jobs/nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
