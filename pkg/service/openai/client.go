package openai

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sashabaranov/go-openai"

	"github.com/forage-labs/stitch/pkg/domain/model"
)

const (
	// DefaultCompletionModel is the chat model used for both
	// generation and classification
	DefaultCompletionModel = openai.GPT4o
	// DefaultEmbeddingModel produces model.EmbeddingDimension vectors
	DefaultEmbeddingModel = string(openai.SmallEmbedding3)
)

// client implements Service interface
type client struct {
	api            *openai.Client
	apiKey         string
	model          string
	embeddingModel string
}

// Option is a functional option for client configuration
type Option func(*client)

// WithModel overrides the chat-completion model
func WithModel(m string) Option {
	return func(c *client) {
		c.model = m
	}
}

// WithEmbeddingModel overrides the embedding model
func WithEmbeddingModel(m string) Option {
	return func(c *client) {
		c.embeddingModel = m
	}
}

// New creates a new OpenAI service. An empty API key is accepted here;
// the missing credential surfaces as ErrNotConfigured on the first
// call instead of failing startup.
func New(apiKey string, opts ...Option) Service {
	c := &client{
		api:            openai.NewClient(apiKey),
		apiKey:         apiKey,
		model:          DefaultCompletionModel,
		embeddingModel: DefaultEmbeddingModel,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Complete issues one chat completion with exactly two messages
func (c *client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if c.apiKey == "" {
		return "", goerr.Wrap(ErrNotConfigured, "completion request rejected")
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.SystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.UserPrompt,
			},
		},
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", goerr.Wrap(err, "chat completion request failed", goerr.V("model", c.model))
	}

	if len(resp.Choices) == 0 {
		return "", goerr.Wrap(ErrNoCompletion, "response has no choices")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", goerr.Wrap(ErrNoCompletion, "response content is empty")
	}

	return content, nil
}

// Embed computes a model.EmbeddingDimension vector for the text
func (c *client) Embed(ctx context.Context, text string) ([]float32, error) {
	if c.apiKey == "" {
		return nil, goerr.Wrap(ErrNotConfigured, "embedding request rejected")
	}

	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(c.embeddingModel),
		Input: []string{text},
	})
	if err != nil {
		return nil, goerr.Wrap(err, "embedding request failed", goerr.V("model", c.embeddingModel))
	}

	if len(resp.Data) == 0 {
		return nil, goerr.New("embedding response has no data")
	}

	embedding := resp.Data[0].Embedding
	if len(embedding) != model.EmbeddingDimension {
		return nil, goerr.New("unexpected embedding dimension",
			goerr.V("want", model.EmbeddingDimension),
			goerr.V("got", len(embedding)),
		)
	}

	return embedding, nil
}
