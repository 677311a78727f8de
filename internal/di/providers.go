package di

import (
	"fmt"

	"LendRisk/internal/domain/service"
	"LendRisk/internal/handler/api"
	"LendRisk/internal/service/gemini"
	"LendRisk/internal/service/ratelimit"
	"LendRisk/internal/usecase"
	"LendRisk/pkg/config"
	xhttp "LendRisk/pkg/http"
	applogger "LendRisk/pkg/logger"
	"LendRisk/pkg/metrics"
	"LendRisk/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() usecase.Metrics {
	return metrics.New()
}

// ProvideCompletionProvider creates the Gemini completion client.
func ProvideCompletionProvider(cfg *config.Config) service.CompletionProvider {
	return gemini.New(cfg)
}

// ProvideRateLimiter creates the per-IP request limiter.
func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.RateLimit.Requests, cfg.RateLimit.Window)
}

// ProvideRiskAssessor creates the risk assessment use case.
func ProvideRiskAssessor(
	provider service.CompletionProvider,
	m usecase.Metrics,
	log *applogger.Logger,
) *usecase.RiskAssessor {
	return usecase.NewRiskAssessor(provider, m, log)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(
	log *applogger.Logger,
	assessor *usecase.RiskAssessor,
	limiter *ratelimit.Limiter,
) xhttp.Handler {
	return api.NewRiskEchoHandler(log, assessor, limiter)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, log *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, log, handler)
}
