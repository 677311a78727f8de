//go:build wireinject
// +build wireinject

package di

import (
	"LendRisk/pkg/config"
	"LendRisk/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Services
		ProvideCompletionProvider,
		ProvideRateLimiter,

		// Use cases
		ProvideRiskAssessor,

		// Transport
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
