package models

// VolatilityPrediction is the risk verdict for a proposed BTC collateral
// amount. Field values come straight from the model and are not clamped.
type VolatilityPrediction struct {
	IsRisky         bool    `json:"isRisky"`
	MaxLTV          float64 `json:"maxLTV"`
	Reason          string  `json:"reason"`
	VolatilityScore float64 `json:"volatilityScore"`
	ConfidenceLevel float64 `json:"confidenceLevel"`
}

// ParseFallback is the conservative verdict substituted when the model reply
// cannot be parsed as JSON.
func ParseFallback() VolatilityPrediction {
	return VolatilityPrediction{
		IsRisky:         true,
		MaxLTV:          60,
		Reason:          "Unable to parse model response, using conservative defaults",
		VolatilityScore: 70,
		ConfidenceLevel: 80,
	}
}

// UpstreamFallback is the verdict carried inside error responses when the
// model cannot be reached at all.
func UpstreamFallback() VolatilityPrediction {
	return VolatilityPrediction{
		IsRisky:         true,
		MaxLTV:          50,
		Reason:          "Risk assessment unavailable, applying conservative defaults",
		VolatilityScore: 75,
		ConfidenceLevel: 50,
	}
}
