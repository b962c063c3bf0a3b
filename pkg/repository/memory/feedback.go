package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/forage-labs/stitch/pkg/domain/interfaces"
	"github.com/forage-labs/stitch/pkg/domain/model"
)

// ErrNotFound is returned when an entity does not exist
var ErrNotFound = goerr.New("not found")

type feedbackRepository struct {
	mu      sync.RWMutex
	records []*model.Feedback
}

var _ interfaces.FeedbackRepository = &feedbackRepository{}

func newFeedbackRepository() *feedbackRepository {
	return &feedbackRepository{}
}

func (r *feedbackRepository) Create(ctx context.Context, fb *model.Feedback) (*model.Feedback, error) {
	if err := fb.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid feedback record")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *fb
	if stored.ID == "" {
		stored.ID = model.NewFeedbackID()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	r.records = append(r.records, &stored)

	copied := stored
	return &copied, nil
}

func (r *feedbackRepository) List(ctx context.Context, limit int) ([]*model.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Feedback, 0, len(r.records))
	for _, fb := range r.records {
		copied := *fb
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}

	return result, nil
}
