package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"LendRisk/internal/domain/models"
	"LendRisk/internal/service/ratelimit"
	"LendRisk/internal/usecase"
	applogger "LendRisk/pkg/logger"

	"github.com/labstack/echo/v4"
)

type stubProvider struct {
	reply string
	err   error
	key   bool
}

func (s *stubProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return s.reply, s.err
}

func (s *stubProvider) Configured() bool { return s.key }

type nopMetrics struct{}

func (nopMetrics) RecordAssessment(string)       {}
func (nopMetrics) RecordUpstreamError(string)    {}
func (nopMetrics) RecordUpstreamLatency(float64) {}
func (nopMetrics) RecordVolatilityScore(float64) {}

func newTestServer(t *testing.T, p *stubProvider, limit int) *echo.Echo {
	t.Helper()
	log, err := applogger.New(&applogger.Config{Level: "error"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	assessor := usecase.NewRiskAssessor(p, nopMetrics{}, log)
	limiter := ratelimit.New(limit, 15*time.Minute)

	e := echo.New()
	NewRiskEchoHandler(log, assessor, limiter).RegisterRoutes(e)
	return e
}

func postRisk(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/risk-assessment", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const stubReply = `{"isRisky":false,"maxLTV":65,"reason":"calm market","volatilityScore":25,"confidenceLevel":85}`

func TestAssessRiskPassesPredictionThrough(t *testing.T) {
	e := newTestServer(t, &stubProvider{reply: stubReply, key: true}, 100)

	rec := postRisk(e, `{"btcAmount":150000000}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// The prediction is the entire body, no envelope.
	var raw map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := raw["isRisky"]; !ok {
		t.Fatalf("isRisky missing at top level: %s", rec.Body.String())
	}

	var got models.VolatilityPrediction
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode prediction: %v", err)
	}
	if got.MaxLTV != 65 || got.VolatilityScore != 25 || got.IsRisky {
		t.Fatalf("prediction = %+v", got)
	}
}

func TestAssessRiskRejectsInvalidAmounts(t *testing.T) {
	e := newTestServer(t, &stubProvider{reply: stubReply, key: true}, 100)

	cases := []struct {
		name string
		body string
	}{
		{"missing", `{}`},
		{"zero", `{"btcAmount":0}`},
		{"negative", `{"btcAmount":-5}`},
		{"non numeric", `{"btcAmount":"lots"}`},
		{"empty body", ``},
	}

	for _, tc := range cases {
		rec := postRisk(e, tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, body = %s", tc.name, rec.Code, rec.Body.String())
		}
		var resp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: decode: %v", tc.name, err)
		}
		if resp.Error == "" {
			t.Fatalf("%s: error message missing: %s", tc.name, rec.Body.String())
		}
	}
}

func TestAssessRiskParseFallback(t *testing.T) {
	e := newTestServer(t, &stubProvider{reply: "no json here", key: true}, 100)

	rec := postRisk(e, `{"btcAmount":1000}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 on parse fallback", rec.Code)
	}

	var got models.VolatilityPrediction
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.MaxLTV != 60 || got.VolatilityScore != 70 || got.ConfidenceLevel != 80 {
		t.Fatalf("parse fallback = %+v", got)
	}
}

func TestAssessRiskUpstreamFailure(t *testing.T) {
	e := newTestServer(t, &stubProvider{err: errors.New("dial tcp: refused"), key: true}, 100)

	rec := postRisk(e, `{"btcAmount":1000}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var resp struct {
		Error    string                      `json:"error"`
		Fallback models.VolatilityPrediction `json:"fallback"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error == "" {
		t.Fatalf("error message missing: %s", rec.Body.String())
	}
	if resp.Fallback.ConfidenceLevel != 50 || !resp.Fallback.IsRisky {
		t.Fatalf("fallback = %+v", resp.Fallback)
	}
}

func TestRateLimitOnAPIRoutes(t *testing.T) {
	e := newTestServer(t, &stubProvider{reply: stubReply, key: true}, 3)

	for i := 0; i < 3; i++ {
		if rec := postRisk(e, `{"btcAmount":1000}`); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i+1, rec.Code)
		}
	}

	rec := postRisk(e, `{"btcAmount":1000}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get(echo.HeaderRetryAfter) == "" {
		t.Fatal("Retry-After header missing")
	}

	// Health is outside the limited group.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	healthRec := httptest.NewRecorder()
	e.ServeHTTP(healthRec, req)
	if healthRec.Code != http.StatusOK {
		t.Fatalf("health status = %d after rate limit", healthRec.Code)
	}
}

func TestHealth(t *testing.T) {
	e := newTestServer(t, &stubProvider{key: true}, 100)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got models.HealthStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != "ok" {
		t.Fatalf("status field = %q", got.Status)
	}
	if !got.GeminiConfigured {
		t.Fatal("geminiConfigured should be true")
	}
	if _, err := time.Parse(time.RFC3339, got.Timestamp); err != nil {
		t.Fatalf("timestamp %q is not RFC3339: %v", got.Timestamp, err)
	}
}

func TestHealthReportsMissingKey(t *testing.T) {
	e := newTestServer(t, &stubProvider{key: false}, 100)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var got models.HealthStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.GeminiConfigured {
		t.Fatal("geminiConfigured should be false")
	}
}
