package service

import "context"

// CompletionProvider produces a free-form text completion for a prompt.
// Implementations make a single attempt with no retries.
type CompletionProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)

	// Configured reports whether the provider has credentials to make calls.
	Configured() bool
}
