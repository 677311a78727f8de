package gemini

import (
	"context"
	"fmt"

	"LendRisk/internal/domain/service"
	"LendRisk/pkg/config"
	xhttp "LendRisk/pkg/http"

	"golang.org/x/time/rate"
)

// Wire envelopes for the generateContent REST call.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// Client implements a CompletionProvider backed by the Gemini REST API.
type Client struct {
	apiKey          string
	baseURL         string
	model           string
	temperature     float64
	maxOutputTokens int

	client  *xhttp.Client
	limiter *rate.Limiter
}

var _ service.CompletionProvider = (*Client)(nil)

// New builds a Gemini client from config.
func New(cfg *config.Config) *Client {
	limit := rate.Limit(cfg.Gemini.RequestsPerSecond)
	burst := cfg.Gemini.RequestsPerSecond
	if burst <= 0 {
		limit = rate.Inf
		burst = 1
	}

	return &Client{
		apiKey:          cfg.Gemini.APIKey,
		baseURL:         cfg.Gemini.BaseURL,
		model:           cfg.Gemini.Model,
		temperature:     cfg.Gemini.Temperature,
		maxOutputTokens: cfg.Gemini.MaxOutputTokens,
		client:          xhttp.NewClient(xhttp.WithTimeout(cfg.Gemini.Timeout)),
		limiter:         rate.NewLimiter(limit, burst),
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Complete sends the prompt to the model and returns the raw reply text.
// A single attempt is made per call.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("gemini api key not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("gemini throttle: %w", err)
	}

	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     c.temperature,
			MaxOutputTokens: c.maxOutputTokens,
		},
	}

	var reply generateResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodPost,
		URL:         fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model),
		QueryParams: map[string]string{"key": c.apiKey},
		Body:        body,
	}, &reply)
	if err != nil {
		return "", fmt.Errorf("gemini generateContent: %w", err)
	}

	if len(reply.Candidates) == 0 || len(reply.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return reply.Candidates[0].Content.Parts[0].Text, nil
}
