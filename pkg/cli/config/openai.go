package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/forage-labs/stitch/pkg/service/openai"
)

// OpenAI holds configuration for the OpenAI client
type OpenAI struct {
	apiKey         string
	model          string
	embeddingModel string
}

// Flags returns CLI flags for OpenAI configuration
func (o *OpenAI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key",
			Sources:     cli.EnvVars("STITCH_OPENAI_API_KEY", "OPENAI_API_KEY"),
			Destination: &o.apiKey,
		},
		&cli.StringFlag{
			Name:        "openai-model",
			Usage:       "OpenAI model for reply generation and classification",
			Value:       openai.DefaultCompletionModel,
			Sources:     cli.EnvVars("STITCH_OPENAI_MODEL"),
			Destination: &o.model,
		},
		&cli.StringFlag{
			Name:        "openai-embedding-model",
			Usage:       "OpenAI model for case embeddings",
			Value:       openai.DefaultEmbeddingModel,
			Sources:     cli.EnvVars("STITCH_OPENAI_EMBEDDING_MODEL"),
			Destination: &o.embeddingModel,
		},
	}
}

// LogAttrs returns log attributes for the OpenAI configuration. The
// API key is never logged.
func (o *OpenAI) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Bool("api_key_set", o.apiKey != ""),
		slog.String("model", o.model),
		slog.String("embedding_model", o.embeddingModel),
	}
}

// Configure creates the OpenAI service. A missing API key is not an
// error here; requests fail individually at call time.
func (o *OpenAI) Configure() openai.Service {
	return openai.New(o.apiKey,
		openai.WithModel(o.model),
		openai.WithEmbeddingModel(o.embeddingModel),
	)
}
