package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"NestWorth/pkg/config"
	xhttp "NestWorth/pkg/http"
	applogger "NestWorth/pkg/logger"
	"NestWorth/pkg/queue"
)

// Closer releases an infrastructure resource on shutdown.
type Closer interface {
	Close() error
}

// App encapsulates the entire application lifecycle.
type App struct {
	cfg         *config.Config
	logger      *applogger.Logger
	httpServer  *xhttp.Server
	httpHandler xhttp.Handler
	consumer    *queue.RedisQueue
	closers     []Closer
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, lgr *applogger.Logger, handler xhttp.Handler, consumer *queue.RedisQueue) *App {
	return &App{
		cfg:         cfg,
		logger:      lgr,
		httpHandler: handler,
		consumer:    consumer,
	}
}

// AddCloser registers a resource to close on shutdown.
func (a *App) AddCloser(c Closer) {
	if c != nil {
		a.closers = append(a.closers, c)
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}

	a.httpServer = xhttp.NewServer(a.httpHandler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
	)

	// Start queue consumer if configured
	if a.consumer != nil {
		if err := a.consumer.Start(); err != nil {
			a.logger.Error("queue start error", applogger.Error(err))
			return err
		}
		a.logger.Info("analysis job queue started",
			applogger.Int("workers", a.cfg.Queue.Workers))
	}

	// Start HTTP server
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("server started", applogger.Int("port", a.cfg.Server.Port))

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	if a.consumer != nil {
		if err := a.consumer.Stop(shutdownCtx); err != nil {
			a.logger.Warn("queue stop error", applogger.Error(err))
		}
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn("close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
