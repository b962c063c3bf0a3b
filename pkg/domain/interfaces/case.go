package interfaces

import (
	"context"

	"github.com/forage-labs/stitch/pkg/domain/model"
)

// CaseRepository stores historical question/answer cases and serves
// nearest-neighbor retrieval over their embeddings
type CaseRepository interface {
	// Put stores a support case. The case must carry an embedding of
	// its question text.
	Put(ctx context.Context, c *model.SupportCase) error

	// Get retrieves a case by ID
	Get(ctx context.Context, id model.CaseID) (*model.SupportCase, error)

	// FindSimilar returns up to limit cases ordered by descending
	// cosine similarity to the query embedding. No similarity
	// threshold is applied here; callers filter as needed.
	FindSimilar(ctx context.Context, embedding []float32, limit int) ([]*model.SimilarCase, error)
}
