package http

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error    string            `json:"error" example:"Invalid request"`
	Details  []ValidationError `json:"details,omitempty"`
	Fallback interface{}       `json:"fallback,omitempty"`
}

// ValidationError represents validation error detail.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"btcAmount"`
	Message string                 `json:"message,omitempty" example:"btcAmount is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
