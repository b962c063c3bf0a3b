package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/forage-labs/stitch/pkg/domain/model"
	"github.com/forage-labs/stitch/pkg/domain/types"
	"github.com/forage-labs/stitch/pkg/service/openai"
	"github.com/forage-labs/stitch/pkg/utils/logging"
)

// temperatureClassify keeps intent classification near-deterministic
const temperatureClassify = 0.1

// jsonObjectPattern extracts the JSON object from a completion that may
// wrap it in prose or code fences. Spans from the first { to the last }.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ClassifyIntent asks the model whether the message expresses a
// cancellation or address change request and extracts the order number
// if one is present. A model response that cannot be parsed is treated
// as no actionable intent, never as an error. Transport failures
// propagate; an empty completion also degrades to no intent.
func (uc *WebhookUseCase) ClassifyIntent(ctx context.Context, message, subject string) (*model.IntentResult, error) {
	logger := logging.From(ctx)

	systemPrompt, err := buildIntentPrompt(uc.brand)
	if err != nil {
		return nil, err
	}

	userPrompt := message
	if strings.TrimSpace(subject) != "" {
		userPrompt = "Betreff: " + subject + "\n\n" + message
	}

	raw, err := uc.ai.Complete(ctx, openai.CompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		Temperature:  temperatureClassify,
	})
	if err != nil {
		if errors.Is(err, openai.ErrNoCompletion) {
			logger.Warn("intent classification returned no completion, treating as no intent")
			return &model.IntentResult{Intent: types.IntentNone}, nil
		}
		return nil, goerr.Wrap(err, "failed to classify intent")
	}

	result := parseIntentResponse(raw)
	if result.RawResponse != "" {
		logger.Warn("unparseable intent response, treating as no intent",
			"response", raw,
		)
	}

	return result, nil
}

// parseIntentResponse extracts the classifier's JSON verdict from the
// raw completion. The parsed intent value is passed through as-is so
// downstream code decides what counts as actionable.
func parseIntentResponse(raw string) *model.IntentResult {
	extracted := jsonObjectPattern.FindString(raw)
	if extracted == "" {
		return &model.IntentResult{Intent: types.IntentNone, RawResponse: raw}
	}

	var parsed struct {
		Intent      string `json:"intent"`
		OrderNumber string `json:"order_number"`
	}
	if err := json.Unmarshal([]byte(extracted), &parsed); err != nil {
		return &model.IntentResult{Intent: types.IntentNone, RawResponse: raw}
	}

	return &model.IntentResult{
		Intent:      types.Intent(parsed.Intent),
		OrderNumber: parsed.OrderNumber,
	}
}
