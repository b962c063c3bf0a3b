package interfaces

import (
	"context"

	"github.com/forage-labs/stitch/pkg/domain/model"
)

// FeedbackRepository is an append-only store of feedback records
type FeedbackRepository interface {
	// Create persists a new feedback record and returns it with ID
	// and CreatedAt populated
	Create(ctx context.Context, fb *model.Feedback) (*model.Feedback, error)

	// List returns up to limit records ordered by CreatedAt descending
	List(ctx context.Context, limit int) ([]*model.Feedback, error)
}
