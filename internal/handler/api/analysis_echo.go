package api

import (
	"encoding/json"
	"strconv"
	"time"

	models "NestWorth/internal/domain/models"
	icache "NestWorth/internal/service/cache"
	"NestWorth/internal/service/metrics"
	"NestWorth/internal/service/ratelimit"
	"NestWorth/internal/usecase"
	pkgcache "NestWorth/pkg/cache"
	xhttp "NestWorth/pkg/http"
	xlogger "NestWorth/pkg/logger"
	"NestWorth/pkg/util"

	"github.com/labstack/echo/v4"
)

// AnalysisEchoHandler exposes the analysis engine over HTTP.
type AnalysisEchoHandler struct {
	logger   *xlogger.Logger
	analyzer *usecase.Analyzer
	store    pkgcache.Service
	queue    usecase.JobPublisher
	cache    icache.BytesCache
	rl       *ratelimit.Limiter

	rlCapacity float64
	rlRefill   float64
	respTTL    time.Duration
}

func NewAnalysisEchoHandler(logger *xlogger.Logger, analyzer *usecase.Analyzer, store pkgcache.Service) *AnalysisEchoHandler {
	metrics.Register()
	return &AnalysisEchoHandler{
		logger:     logger,
		analyzer:   analyzer,
		store:      store,
		rl:         ratelimit.New(),
		rlCapacity: 5,
		rlRefill:   2,
		respTTL:    time.Minute,
	}
}

// SetResponseCache injects a response cache for component endpoints.
func (h *AnalysisEchoHandler) SetResponseCache(c icache.BytesCache, ttl time.Duration) {
	h.cache = c
	if ttl > 0 {
		h.respTTL = ttl
	}
}

// SetJobPublisher enables async analysis jobs.
func (h *AnalysisEchoHandler) SetJobPublisher(q usecase.JobPublisher) { h.queue = q }

// SetRateLimit overrides the default per-client token bucket.
func (h *AnalysisEchoHandler) SetRateLimit(capacity, refillPerSec float64) {
	if capacity > 0 {
		h.rlCapacity = capacity
	}
	if refillPerSec > 0 {
		h.rlRefill = refillPerSec
	}
}

func (h *AnalysisEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/analysis", h.Analysis)
	g.POST("/affordability", h.Affordability)
	g.POST("/stress", h.Stress)
	g.POST("/rentvsbuy", h.RentVsBuy)
	g.POST("/investment", h.Investment)
	g.POST("/readiness", h.Readiness)
	g.POST("/analysis/jobs", h.CreateJob)
	g.GET("/analysis/jobs/:id", h.JobStatus)
	g.GET("/diagnostics", h.Diagnostics)
}

func (h *AnalysisEchoHandler) Analysis(c echo.Context) error {
	endpoint := "analysis"
	start := time.Now()
	defer func() { metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	if !h.allow(c, endpoint) {
		return xhttp.TooManyRequestsResponse(c)
	}

	req := &models.AnalysisRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	report, err := h.analyzer.Analyze(c.Request().Context(), req.Profile.ToModel(), toMarket(&req.Market))
	if err != nil {
		metrics.APIErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("analysis usecase error", xlogger.Error(err))
		return xhttp.BadRequestResponse(c, err.Error())
	}
	return xhttp.SuccessResponse(c, report)
}

func (h *AnalysisEchoHandler) Affordability(c echo.Context) error {
	return component(h, c, "affordability", func(req *models.AffordabilityRequest) (interface{}, error) {
		return h.analyzer.Affordability(c.Request().Context(), req.Profile.ToModel(), toMarket(&req.Market))
	})
}

func (h *AnalysisEchoHandler) Stress(c echo.Context) error {
	endpoint := "stress"
	start := time.Now()
	defer func() { metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	if !h.allow(c, endpoint) {
		return xhttp.TooManyRequestsResponse(c)
	}

	req := &models.StressRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if b, ok := h.cachedResponse(endpoint, req); ok {
		return respondCached(c, b)
	}

	results, err := h.analyzer.Stress(c.Request().Context(), req.Profile.ToModel(), toMarket(&req.Market), req.RateDeltas, req.IncomeCuts)
	if err != nil {
		metrics.APIErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("stress usecase error", xlogger.Error(err))
		return xhttp.BadRequestResponse(c, err.Error())
	}

	h.storeResponse(endpoint, req, results)
	return xhttp.SuccessResponse(c, results)
}

func (h *AnalysisEchoHandler) RentVsBuy(c echo.Context) error {
	return component(h, c, "rentvsbuy", func(req *models.RentVsBuyRequest) (interface{}, error) {
		return h.analyzer.RentVsBuy(c.Request().Context(), req.Profile.ToModel(), toMarket(&req.Market))
	})
}

func (h *AnalysisEchoHandler) Investment(c echo.Context) error {
	endpoint := "investment"
	start := time.Now()
	defer func() { metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	if !h.allow(c, endpoint) {
		return xhttp.TooManyRequestsResponse(c)
	}

	req := &models.InvestmentRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if b, ok := h.cachedResponse(endpoint, req); ok {
		return respondCached(c, b)
	}

	result, err := h.analyzer.Investment(c.Request().Context(), req.Profile.ToModel(), toMarket(&req.Market),
		req.PurchasePrice, req.DownPayment, req.MonthlyRent, req.MonthlyHOA)
	if err != nil {
		metrics.APIErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("investment usecase error", xlogger.Error(err))
		return xhttp.BadRequestResponse(c, err.Error())
	}

	h.storeResponse(endpoint, req, result)
	return xhttp.SuccessResponse(c, result)
}

func (h *AnalysisEchoHandler) Readiness(c echo.Context) error {
	return component(h, c, "readiness", func(req *models.ReadinessRequest) (interface{}, error) {
		return h.analyzer.Readiness(c.Request().Context(), req.Profile.ToModel(), toMarket(&req.Market))
	})
}

// CreateJob enqueues a full analysis to run off the request path.
func (h *AnalysisEchoHandler) CreateJob(c echo.Context) error {
	endpoint := "jobs"
	start := time.Now()
	defer func() { metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	if h.queue == nil {
		return xhttp.NotFoundResponse(c, "async analysis is not enabled")
	}
	if !h.allow(c, endpoint) {
		return xhttp.TooManyRequestsResponse(c)
	}

	req := &models.AnalysisRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	jobID := strconv.FormatInt(time.Now().UnixNano(), 36)
	status := usecase.JobStatus{JobID: jobID, State: usecase.JobStatePending}
	if err := h.store.Set(c.Request().Context(), usecase.JobResultKey(jobID), status, time.Hour); err != nil {
		metrics.APIErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("job status store error", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}

	payload := usecase.AnalysisJobPayload{
		JobID:   jobID,
		Profile: req.Profile.ToModel(),
		Market:  toMarket(&req.Market),
	}
	if err := h.queue.PublishMessage(c.Request().Context(), usecase.AnalysisJobType, payload); err != nil {
		metrics.APIErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("job enqueue error", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}

	return xhttp.CreatedResponse(c, status)
}

// JobStatus returns the parked result (or pending state) for a job ID.
func (h *AnalysisEchoHandler) JobStatus(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return xhttp.BadRequestResponse(c, "job id required")
	}

	var status usecase.JobStatus
	if err := h.store.Get(c.Request().Context(), usecase.JobResultKey(id), &status); err != nil {
		return xhttp.NotFoundResponse(c, "job not found")
	}
	return xhttp.SuccessResponse(c, status)
}

// Diagnostics exposes the logger's collected warnings and errors.
func (h *AnalysisEchoHandler) Diagnostics(c echo.Context) error {
	collector := h.logger.Collector()
	if collector == nil {
		return xhttp.SuccessResponse(c, []interface{}{})
	}
	return xhttp.SuccessResponse(c, collector.Snapshot())
}

// component is the shared flow for endpoints whose request carries only a
// profile and market pair: rate limit, bind, response cache, compute.
func component[T any](h *AnalysisEchoHandler, c echo.Context, endpoint string, run func(*T) (interface{}, error)) error {
	start := time.Now()
	defer func() { metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	if !h.allow(c, endpoint) {
		return xhttp.TooManyRequestsResponse(c)
	}

	req := new(T)
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if b, ok := h.cachedResponse(endpoint, req); ok {
		return respondCached(c, b)
	}

	res, err := run(req)
	if err != nil {
		metrics.APIErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error(endpoint+" usecase error", xlogger.Error(err))
		return xhttp.BadRequestResponse(c, err.Error())
	}

	h.storeResponse(endpoint, req, res)
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisEchoHandler) allow(c echo.Context, endpoint string) bool {
	if h.rl.Allow(c.RealIP()+":"+endpoint, h.rlCapacity, h.rlRefill) {
		return true
	}
	h.logger.Warn("rate limited",
		xlogger.String("endpoint", endpoint),
		xlogger.String("remote", c.RealIP()))
	return false
}

func (h *AnalysisEchoHandler) cachedResponse(endpoint string, req interface{}) ([]byte, bool) {
	if h.cache == nil {
		return nil, false
	}
	key, err := responseKey(endpoint, req)
	if err != nil {
		return nil, false
	}
	b, ok, err := h.cache.GetBytes(key)
	if err != nil {
		h.logger.Warn("response cache read failed", xlogger.Error(err))
		return nil, false
	}
	if ok {
		metrics.ResponseCacheHits.WithLabelValues(endpoint).Inc()
	}
	return b, ok
}

func (h *AnalysisEchoHandler) storeResponse(endpoint string, req, res interface{}) {
	if h.cache == nil {
		return
	}
	key, err := responseKey(endpoint, req)
	if err != nil {
		return
	}
	b, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := h.cache.SetBytes(key, b, h.respTTL); err != nil {
		h.logger.Warn("response cache write failed", xlogger.Error(err))
	}
}

func respondCached(c echo.Context, b []byte) error {
	return xhttp.SuccessResponse(c, json.RawMessage(b))
}

func responseKey(endpoint string, req interface{}) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	return pkgcache.GenerateKey(endpoint, pkgcache.HashKey(string(b))), nil
}

func toMarket(r *models.MarketRequest) *models.MarketSnapshot {
	m := r.ToModel()
	m.AsOf = util.ParseTimeDefault(r.AsOf, time.Time{})
	return m
}
