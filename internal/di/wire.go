//go:build wireinject
// +build wireinject

package di

import (
	"NestWorth/pkg/config"
	"NestWorth/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideRedisClient,
		ProvideReportCache,
		ProvideResponseCache,

		// Use cases
		ProvideAnalyzer,
		ProvideAnalysisJob,

		// Queue
		ProvideConsumer,
		ProvidePublisher,

		// HTTP
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
