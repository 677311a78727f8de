package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"LendRisk/pkg/config"
)

func testConfig(baseURL, key string) *config.Config {
	cfg := &config.Config{}
	cfg.Gemini.APIKey = key
	cfg.Gemini.BaseURL = baseURL
	cfg.Gemini.Model = "gemini-1.5-flash"
	cfg.Gemini.Temperature = 0.2
	cfg.Gemini.MaxOutputTokens = 256
	cfg.Gemini.Timeout = 5 * time.Second
	cfg.Gemini.RequestsPerSecond = 100
	return cfg
}

func TestCompleteParsesReply(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		resp := generateResponse{
			Candidates: []candidate{{Content: content{Parts: []part{{Text: `{"isRisky":false}`}}}}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL, "secret"))
	got, err := c.Complete(context.Background(), "assess this")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != `{"isRisky":false}` {
		t.Fatalf("reply = %q", got)
	}
	if gotPath != "/models/gemini-1.5-flash:generateContent" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotKey != "secret" {
		t.Fatalf("key query param = %q", gotKey)
	}
	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 ||
		gotBody.Contents[0].Parts[0].Text != "assess this" {
		t.Fatalf("request body = %+v", gotBody)
	}
	if gotBody.GenerationConfig.MaxOutputTokens != 256 {
		t.Fatalf("maxOutputTokens = %d", gotBody.GenerationConfig.MaxOutputTokens)
	}
}

func TestCompleteWithoutKeyFailsFast(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL, ""))
	if _, err := c.Complete(context.Background(), "p"); err == nil {
		t.Fatal("expected error without api key")
	}
	if calls != 0 {
		t.Fatalf("upstream was called %d times, want 0", calls)
	}
}

func TestCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL, "k"))
	if _, err := c.Complete(context.Background(), "p"); err == nil {
		t.Fatal("expected error on non-2xx response")
	}
}

func TestCompleteEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL, "k"))
	if _, err := c.Complete(context.Background(), "p"); err == nil {
		t.Fatal("expected error on empty candidates")
	}
}

func TestConfigured(t *testing.T) {
	if New(testConfig("http://unused", "")).Configured() {
		t.Fatal("Configured should be false without a key")
	}
	if !New(testConfig("http://unused", "k")).Configured() {
		t.Fatal("Configured should be true with a key")
	}
}
