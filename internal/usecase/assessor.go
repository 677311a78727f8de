package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"LendRisk/internal/domain/models"
	"LendRisk/internal/domain/service"
	xhttp "LendRisk/pkg/http"
	applogger "LendRisk/pkg/logger"
	"LendRisk/pkg/metrics"
)

// Metrics records assessment outcomes. Satisfied by metrics.Recorder.
type Metrics interface {
	RecordAssessment(outcome string)
	RecordUpstreamError(kind string)
	RecordUpstreamLatency(seconds float64)
	RecordVolatilityScore(score float64)
}

// RiskAssessor produces a volatility verdict for a collateral amount by
// delegating the judgment to a completion model.
type RiskAssessor struct {
	provider service.CompletionProvider
	metrics  Metrics
	log      *applogger.Logger
}

func NewRiskAssessor(provider service.CompletionProvider, m Metrics, log *applogger.Logger) *RiskAssessor {
	return &RiskAssessor{
		provider: provider,
		metrics:  m,
		log:      log.With("assessor"),
	}
}

// ProviderReady reports whether the completion provider has credentials.
func (uc *RiskAssessor) ProviderReady() bool {
	return uc.provider.Configured()
}

// Assess asks the model to judge amountSats of BTC collateral.
//
// A malformed model reply degrades to the parse fallback with a nil error.
// A failed upstream call returns an upstream AppError so the transport layer
// can attach the harder fallback to its error response.
func (uc *RiskAssessor) Assess(ctx context.Context, amountSats float64) (models.VolatilityPrediction, error) {
	prompt := renderPrompt(amountSats)

	start := time.Now()
	reply, err := uc.provider.Complete(ctx, prompt)
	uc.metrics.RecordUpstreamLatency(time.Since(start).Seconds())
	if err != nil {
		uc.log.Error("completion call failed", applogger.Error(err))
		uc.metrics.RecordUpstreamError("complete")
		uc.metrics.RecordAssessment(metrics.OutcomeFallbackUpstream)
		return models.VolatilityPrediction{}, xhttp.UpstreamError("risk assessment failed").WithError(err)
	}

	var prediction models.VolatilityPrediction
	if err := json.Unmarshal([]byte(stripFences(reply)), &prediction); err != nil {
		uc.log.Warn("unparseable model reply, using conservative defaults",
			applogger.Error(err),
			applogger.String("reply", truncate(reply, 512)),
		)
		uc.metrics.RecordAssessment(metrics.OutcomeFallbackParse)
		return models.ParseFallback(), nil
	}

	uc.metrics.RecordAssessment(metrics.OutcomeOK)
	uc.metrics.RecordVolatilityScore(prediction.VolatilityScore)
	return prediction, nil
}

// stripFences drops a leading and trailing markdown code-fence line so
// fenced model replies still parse as JSON.
func stripFences(reply string) string {
	lines := strings.Split(strings.TrimSpace(reply), "\n")
	if len(lines) > 0 && (strings.HasPrefix(lines[0], "```") || strings.HasPrefix(lines[0], "~~~")) {
		lines = lines[1:]
	}
	if len(lines) > 0 && (strings.HasPrefix(lines[len(lines)-1], "```") || strings.HasPrefix(lines[len(lines)-1], "~~~")) {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
