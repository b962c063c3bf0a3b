package openai

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
)

// Service provides interface to the OpenAI chat-completion and
// embedding endpoints
type Service interface {
	// Complete sends exactly one system+user message pair to the
	// chat-completion endpoint and returns the first choice's text.
	// It returns an error wrapping ErrNoCompletion when the endpoint
	// returns no choices or empty content. It never retries.
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// Embed computes the embedding vector for the given text
	Embed(ctx context.Context, text string) ([]float32, error)
}

// CompletionRequest is one stateless chat-completion call
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
}

// Sentinel errors
var (
	// ErrNoCompletion signals the distinguished "no response" outcome:
	// the endpoint returned no choices or empty content
	ErrNoCompletion = goerr.New("no completion returned")

	// ErrNotConfigured signals a missing API key. Raised at call time,
	// not at startup.
	ErrNotConfigured = goerr.New("OpenAI API key is not configured")
)
