package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/forage-labs/stitch/pkg/domain/interfaces"
	"github.com/forage-labs/stitch/pkg/domain/model"
	"github.com/forage-labs/stitch/pkg/utils/logging"
)

// FeedbackUseCase records agent ratings of generated suggestions
type FeedbackUseCase struct {
	repo interfaces.Repository
}

// Record validates and persists a feedback record
func (uc *FeedbackUseCase) Record(ctx context.Context, fb *model.Feedback) (*model.Feedback, error) {
	if err := fb.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid feedback")
	}

	created, err := uc.repo.Feedback().Create(ctx, fb)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to save feedback")
	}

	logging.From(ctx).Info("feedback recorded",
		"feedback_id", created.ID,
		"rating", created.Rating,
	)

	return created, nil
}

// List returns recent feedback records, newest first
func (uc *FeedbackUseCase) List(ctx context.Context, limit int) ([]*model.Feedback, error) {
	records, err := uc.repo.Feedback().List(ctx, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list feedback")
	}
	return records, nil
}
