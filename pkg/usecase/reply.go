package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/forage-labs/stitch/pkg/domain/interfaces"
	"github.com/forage-labs/stitch/pkg/domain/model"
	"github.com/forage-labs/stitch/pkg/service/openai"
	"github.com/forage-labs/stitch/pkg/utils/logging"
)

const (
	// matchCount is the number of nearest neighbors requested from the
	// case store
	matchCount = 5
	// matchThreshold is the minimum cosine similarity for a case to be
	// used as prompt context
	matchThreshold = 0.75

	// temperatureGenerate is used for single-message suggestions
	temperatureGenerate = 0.4
	// temperatureDraft is used for full-conversation drafts
	temperatureDraft = 0.7
)

// ReplyUseCase drafts customer-facing support replies
type ReplyUseCase struct {
	repo  interfaces.Repository
	ai    openai.Service
	brand *model.BrandProfile
}

// Suggestion is one generated reply together with the number of
// similar cases that informed it
type Suggestion struct {
	Text         string
	SimilarCases int
}

// GenerateSuggestion drafts a reply for a single customer message,
// augmented with similar historical cases when retrieval succeeds.
// Retrieval fails closed: an error there is logged and generation
// proceeds with no case context.
func (uc *ReplyUseCase) GenerateSuggestion(ctx context.Context, customerMessage string) (*Suggestion, error) {
	if strings.TrimSpace(customerMessage) == "" {
		return nil, goerr.Wrap(ErrEmptyMessage, "cannot generate suggestion")
	}

	cases := uc.retrieveSimilarCases(ctx, customerMessage)

	systemPrompt, userPrompt, err := buildGeneratePrompt(uc.brand, customerMessage, cases)
	if err != nil {
		return nil, err
	}

	text, err := uc.ai.Complete(ctx, openai.CompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		Temperature:  temperatureGenerate,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate suggestion")
	}

	return &Suggestion{Text: text, SimilarCases: len(cases)}, nil
}

// DraftReply drafts a reply for a full ticket conversation with
// optional operator instruction. No case retrieval on this path.
func (uc *ReplyUseCase) DraftReply(ctx context.Context, conv *model.ConversationContext) (string, error) {
	if strings.TrimSpace(conv.Conversation) == "" {
		return "", goerr.Wrap(ErrEmptyConversation, "cannot draft reply")
	}

	systemPrompt, userPrompt, err := buildDraftPrompt(uc.brand, conv)
	if err != nil {
		return "", err
	}

	text, err := uc.ai.Complete(ctx, openai.CompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		Temperature:  temperatureDraft,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to draft reply")
	}

	return text, nil
}

// retrieveSimilarCases embeds the message and fetches nearest-neighbor
// cases above the similarity threshold, ordered by descending
// similarity. Any failure is non-fatal and yields an empty list.
func (uc *ReplyUseCase) retrieveSimilarCases(ctx context.Context, text string) []*model.SimilarCase {
	logger := logging.From(ctx)

	embedding, err := uc.ai.Embed(ctx, text)
	if err != nil {
		logger.Warn("similar case retrieval skipped: embedding failed", "error", err.Error())
		return nil
	}

	found, err := uc.repo.Case().FindSimilar(ctx, embedding, matchCount)
	if err != nil {
		logger.Warn("similar case retrieval skipped: search failed", "error", err.Error())
		return nil
	}

	cases := make([]*model.SimilarCase, 0, len(found))
	for _, c := range found {
		if c.Similarity >= matchThreshold {
			cases = append(cases, c)
		}
	}

	return cases
}
