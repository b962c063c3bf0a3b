package memory

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/forage-labs/stitch/pkg/domain/interfaces"
	"github.com/forage-labs/stitch/pkg/domain/model"
)

type caseRepository struct {
	mu    sync.RWMutex
	cases map[model.CaseID]*model.SupportCase
}

var _ interfaces.CaseRepository = &caseRepository{}

func newCaseRepository() *caseRepository {
	return &caseRepository{
		cases: make(map[model.CaseID]*model.SupportCase),
	}
}

func (r *caseRepository) Put(ctx context.Context, c *model.SupportCase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *c
	if stored.ID == "" {
		stored.ID = model.NewCaseID()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	r.cases[stored.ID] = &stored
	return nil
}

func (r *caseRepository) Get(ctx context.Context, id model.CaseID) (*model.SupportCase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.cases[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "case not found", goerr.V("id", id))
	}

	copied := *c
	return &copied, nil
}

func (r *caseRepository) FindSimilar(ctx context.Context, embedding []float32, limit int) ([]*model.SimilarCase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type scored struct {
		c     *model.SupportCase
		score float64
	}

	var candidates []scored
	for _, c := range r.cases {
		if len(c.Embedding) == 0 {
			continue
		}
		s := cosineSimilarity(embedding, c.Embedding)
		candidates = append(candidates, scored{c: c, score: s})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if limit > len(candidates) {
		limit = len(candidates)
	}

	result := make([]*model.SimilarCase, limit)
	for i := 0; i < limit; i++ {
		result[i] = &model.SimilarCase{
			Question:   candidates[i].c.Question,
			Answer:     candidates[i].c.Answer,
			Similarity: candidates[i].score,
		}
	}

	return result, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}

	return dot / denom
}
