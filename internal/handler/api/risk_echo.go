package api

import (
	"errors"
	"time"

	"LendRisk/internal/domain/models"
	"LendRisk/internal/service/ratelimit"
	"LendRisk/internal/usecase"
	xhttp "LendRisk/pkg/http"
	"LendRisk/pkg/http/middleware"
	xlogger "LendRisk/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RiskEchoHandler implements Echo-based HTTP handlers following Clean Architecture.
type RiskEchoHandler struct {
	logger   *xlogger.Logger
	assessor *usecase.RiskAssessor
	limiter  *ratelimit.Limiter
}

func NewRiskEchoHandler(logger *xlogger.Logger, assessor *usecase.RiskAssessor, limiter *ratelimit.Limiter) *RiskEchoHandler {
	return &RiskEchoHandler{logger: logger, assessor: assessor, limiter: limiter}
}

var _ xhttp.Handler = (*RiskEchoHandler)(nil)

// RegisterRoutes mounts the API routes. Only the /api group is rate
// limited; /health stays reachable for probes.
func (h *RiskEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api", middleware.RateLimit(h.limiter))
	g.POST("/risk-assessment", h.AssessRisk)

	e.GET("/health", h.Health)
}

// AssessRisk handles POST /api/risk-assessment.
func (h *RiskEchoHandler) AssessRisk(c echo.Context) error {
	req := &models.RiskAssessmentRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, "Invalid request", verr)
	}

	prediction, err := h.assessor.Assess(c.Request().Context(), req.BTCAmount)
	if err != nil {
		fields := []xlogger.Field{xlogger.Error(err)}
		var appErr *xhttp.AppError
		if errors.As(err, &appErr) {
			fields = append(fields, xlogger.String("code", appErr.Code))
		}
		h.logger.Error("risk assessment failed", fields...)
		return xhttp.UpstreamFailureResponse(c, "risk assessment failed", models.UpstreamFallback())
	}

	return xhttp.SuccessResponse(c, prediction)
}

// Health handles GET /health.
func (h *RiskEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, models.HealthStatus{
		Status:           "ok",
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		GeminiConfigured: h.assessor.ProviderReady(),
	})
}
