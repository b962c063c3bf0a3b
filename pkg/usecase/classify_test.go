package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/forage-labs/stitch/pkg/domain/types"
	"github.com/forage-labs/stitch/pkg/repository/memory"
	"github.com/forage-labs/stitch/pkg/service/openai"
	"github.com/forage-labs/stitch/pkg/usecase"
)

func TestParseIntentResponse(t *testing.T) {
	t.Run("plain JSON verdict", func(t *testing.T) {
		result := usecase.ParseIntentResponse(`{"intent": "stornierung", "order_number": "654321"}`)
		gt.Value(t, result.Intent).Equal(types.IntentCancellation)
		gt.Value(t, result.OrderNumber).Equal("654321")
		gt.Value(t, result.RawResponse).Equal("")
	})

	t.Run("JSON wrapped in prose and code fences", func(t *testing.T) {
		raw := "Hier ist das Ergebnis:\n```json\n{\"intent\": \"adressänderung\"}\n```\nViele Grüße"
		result := usecase.ParseIntentResponse(raw)
		gt.Value(t, result.Intent).Equal(types.IntentAddressChange)
		gt.Value(t, result.OrderNumber).Equal("")
	})

	t.Run("unparseable response degrades to no intent", func(t *testing.T) {
		result := usecase.ParseIntentResponse("Der Kunde möchte wohl stornieren.")
		gt.Value(t, result.Intent).Equal(types.IntentNone)
		gt.Value(t, result.RawResponse).Equal("Der Kunde möchte wohl stornieren.")
	})

	t.Run("broken JSON degrades to no intent", func(t *testing.T) {
		result := usecase.ParseIntentResponse(`{"intent": "stornierung"`)
		gt.Value(t, result.Intent).Equal(types.IntentNone)
	})

	t.Run("unknown intent value passes through", func(t *testing.T) {
		result := usecase.ParseIntentResponse(`{"intent": "retoure"}`)
		gt.Value(t, result.Intent).Equal(types.Intent("retoure"))
		gt.Value(t, result.Intent.Actionable()).Equal(false)
	})
}

func TestWebhookUseCase_ClassifyIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("uses near-deterministic temperature and subject prefix", func(t *testing.T) {
		ai := &mockAIService{
			completeFn: func(openai.CompletionRequest) (string, error) {
				return `{"intent": "stornierung", "order_number": "4711"}`, nil
			},
		}
		uc := usecase.New(memory.New(), ai)

		result, err := uc.Webhook.ClassifyIntent(ctx, "Bitte storniert meine Bestellung!", "Bestellung 4711")
		gt.NoError(t, err).Required()
		gt.Value(t, result.Intent).Equal(types.IntentCancellation)
		gt.Value(t, result.OrderNumber).Equal("4711")

		gt.Array(t, ai.completions).Length(1)
		req := ai.completions[0]
		gt.Value(t, req.Temperature).Equal(float32(usecase.TemperatureClassify))
		gt.Value(t, strings.HasPrefix(req.UserPrompt, "Betreff: Bestellung 4711\n\n")).Equal(true)
		gt.Value(t, strings.Contains(req.SystemPrompt, "drei Kategorien")).Equal(true)
	})

	t.Run("omits subject prefix when subject is blank", func(t *testing.T) {
		ai := &mockAIService{
			completeFn: func(openai.CompletionRequest) (string, error) {
				return `{"intent": "keine"}`, nil
			},
		}
		uc := usecase.New(memory.New(), ai)

		_, err := uc.Webhook.ClassifyIntent(ctx, "Wann kommt mein Paket?", "  ")
		gt.NoError(t, err).Required()
		gt.Value(t, ai.completions[0].UserPrompt).Equal("Wann kommt mein Paket?")
	})

	t.Run("empty completion degrades to no intent", func(t *testing.T) {
		ai := &mockAIService{
			completeFn: func(openai.CompletionRequest) (string, error) {
				return "", openai.ErrNoCompletion
			},
		}
		uc := usecase.New(memory.New(), ai)

		result, err := uc.Webhook.ClassifyIntent(ctx, "Bitte stornieren", "")
		gt.NoError(t, err).Required()
		gt.Value(t, result.Intent).Equal(types.IntentNone)
	})

	t.Run("transport failure propagates", func(t *testing.T) {
		transportErr := errors.New("connection refused")
		ai := &mockAIService{
			completeFn: func(openai.CompletionRequest) (string, error) {
				return "", transportErr
			},
		}
		uc := usecase.New(memory.New(), ai)

		_, err := uc.Webhook.ClassifyIntent(ctx, "Bitte stornieren", "")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, transportErr)).True()
	})
}
