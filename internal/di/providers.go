package di

import (
	"github.com/redis/go-redis/v9"

	"NestWorth/internal/domain/repository"
	"NestWorth/internal/handler/api"
	icache "NestWorth/internal/service/cache"
	"NestWorth/internal/usecase"
	pkgcache "NestWorth/pkg/cache"
	"NestWorth/pkg/config"
	xhttp "NestWorth/pkg/http"
	"NestWorth/pkg/logger"
	"NestWorth/pkg/metrics"
	"NestWorth/pkg/queue"
	"NestWorth/pkg/server"
)

// ProvideLogger creates the application logger. Production logs JSON for
// ingestion; everything else stays human-readable on stdout.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	lc := &logger.Config{Level: "debug", Format: "console", Output: "stdout"}
	if cfg.Environment == "production" {
		lc.Level = "info"
		lc.Format = "json"
	}

	lgr, err := logger.New(lc)
	if err != nil {
		return nil, err
	}

	// Retain recent aggregated entries for the diagnostics endpoint.
	lgr.AddCollector(&logger.CollectionConfig{MaxEntries: 200})
	return lgr, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideRedisClient creates a shared redis client, or nil when redis is
// not configured. Downstream providers treat nil as "run in-process".
func ProvideRedisClient(cfg *config.Config) *redis.Client {
	if !cfg.Cache.Redis.Enabled {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Redis.Addr,
		Password: cfg.Cache.Redis.Password,
		DB:       cfg.Cache.Redis.DB,
	})
}

// ProvideReportCache creates the report/job cache. With redis enabled the
// cache is layered (memory L1 over redis L2) so replicas share reports;
// otherwise a bounded in-memory cache serves a single instance.
func ProvideReportCache(cfg *config.Config) (pkgcache.Service, error) {
	if cfg.Cache.Redis.Enabled {
		rc, err := pkgcache.NewRedisCache(
			pkgcache.WithRedisAddr(cfg.Cache.Redis.Addr),
			pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
			pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
			pkgcache.WithRedisPrefix("nestworth:"),
		)
		if err != nil {
			return nil, err
		}
		return pkgcache.NewLayeredCache(rc,
			pkgcache.WithLayeredMemorySize(cfg.Cache.MemoryMax)), nil
	}

	return pkgcache.NewMemoryCache(
		pkgcache.WithMemoryMaxSize(cfg.Cache.MemoryMax)), nil
}

// ProvideResponseCache creates the HTTP response cache.
func ProvideResponseCache(cfg *config.Config) icache.BytesCache {
	if cfg.Cache.Redis.Enabled {
		return icache.NewRedisCache(icache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	}
	return icache.NewTTLCache()
}

// ProvideAnalyzer creates the analysis use case.
func ProvideAnalyzer(
	cfg *config.Config,
	store pkgcache.Service,
	m repository.Metrics,
	lgr *logger.Logger,
) *usecase.Analyzer {
	return usecase.NewAnalyzer(cfg, store, m, lgr)
}

// ProvideAnalysisJob creates the background analysis job handler.
func ProvideAnalysisJob(analyzer *usecase.Analyzer, store pkgcache.Service, lgr *logger.Logger) *usecase.AnalysisJob {
	return usecase.NewAnalysisJob(analyzer, store, lgr)
}

// ProvideConsumer creates the queue consumer running analysis jobs, or nil
// when the queue is disabled.
func ProvideConsumer(
	cfg *config.Config,
	lgr *logger.Logger,
	client *redis.Client,
	job *usecase.AnalysisJob,
) *queue.RedisQueue {
	if !cfg.Queue.Enabled || client == nil {
		return nil
	}
	qc := &queue.QueueConfig{
		Workers:    cfg.Queue.Workers,
		QueueSize:  100,
		RetryLimit: cfg.Queue.RetryLimit,
		RetryDelay: cfg.Queue.RetryDelay,
	}
	return queue.NewRedisConsumer(lgr, qc, client, []queue.Job{job})
}

// ProvidePublisher creates the queue publisher handlers use to enqueue
// jobs, or nil when the queue is disabled.
func ProvidePublisher(cfg *config.Config, lgr *logger.Logger, client *redis.Client) usecase.JobPublisher {
	if !cfg.Queue.Enabled || client == nil {
		return nil
	}
	return queue.NewRedisPublisher(lgr, client)
}

// ProvideHandler creates the API handler with its optional collaborators.
func ProvideHandler(
	cfg *config.Config,
	lgr *logger.Logger,
	analyzer *usecase.Analyzer,
	store pkgcache.Service,
	respCache icache.BytesCache,
	publisher usecase.JobPublisher,
) xhttp.Handler {
	h := api.NewAnalysisEchoHandler(lgr, analyzer, store)
	h.SetResponseCache(respCache, cfg.Cache.ResponseTTL)
	h.SetRateLimit(cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSec)
	if publisher != nil {
		h.SetJobPublisher(publisher)
	}
	return h
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	lgr *logger.Logger,
	handler xhttp.Handler,
	consumer *queue.RedisQueue,
	store pkgcache.Service,
	respCache icache.BytesCache,
) *server.App {
	app := server.New(cfg, lgr, handler, consumer)
	if c, ok := store.(server.Closer); ok {
		app.AddCloser(c)
	}
	if c, ok := respCache.(server.Closer); ok {
		app.AddCloser(c)
	}
	return app
}
