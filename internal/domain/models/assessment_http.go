package models

// Requests and responses for the risk HTTP endpoints. Defined in domain for
// consistency and reuse.

// RiskAssessmentRequest carries the collateral amount in satoshis.
type RiskAssessmentRequest struct {
	BTCAmount float64 `json:"btcAmount" validate:"required,gt=0"`
}

// HealthStatus reports liveness and whether an upstream API key is present.
type HealthStatus struct {
	Status           string `json:"status"`
	Timestamp        string `json:"timestamp"`
	GeminiConfigured bool   `json:"geminiConfigured"`
}
