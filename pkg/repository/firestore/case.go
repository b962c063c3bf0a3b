package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/forage-labs/stitch/pkg/domain/interfaces"
	"github.com/forage-labs/stitch/pkg/domain/model"
)

// distanceField carries the cosine distance of each FindNearest hit
const distanceField = "vector_distance"

// caseDoc is the Firestore document representation of
// model.SupportCase. Embedding is stored as firestore.Vector32 so that
// FindNearest vector search works.
type caseDoc struct {
	ID        model.CaseID       `firestore:"ID"`
	Question  string             `firestore:"Question"`
	Answer    string             `firestore:"Answer"`
	Embedding firestore.Vector32 `firestore:"Embedding,omitempty"`
	CreatedAt time.Time          `firestore:"CreatedAt"`
}

func toCaseDoc(c *model.SupportCase) *caseDoc {
	doc := &caseDoc{
		ID:        c.ID,
		Question:  c.Question,
		Answer:    c.Answer,
		CreatedAt: c.CreatedAt,
	}
	if len(c.Embedding) > 0 {
		doc.Embedding = firestore.Vector32(c.Embedding)
	}
	return doc
}

func fromCaseDoc(d *caseDoc) *model.SupportCase {
	c := &model.SupportCase{
		ID:        d.ID,
		Question:  d.Question,
		Answer:    d.Answer,
		CreatedAt: d.CreatedAt,
	}
	if len(d.Embedding) > 0 {
		c.Embedding = []float32(d.Embedding)
	}
	return c
}

type caseRepository struct {
	client *firestore.Client
}

var _ interfaces.CaseRepository = &caseRepository{}

func newCaseRepository(client *firestore.Client) *caseRepository {
	return &caseRepository{client: client}
}

func (r *caseRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(casesCollection)
}

func (r *caseRepository) Put(ctx context.Context, c *model.SupportCase) error {
	stored := *c
	if stored.ID == "" {
		stored.ID = model.NewCaseID()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	if _, err := r.collection().Doc(stored.ID.String()).Set(ctx, toCaseDoc(&stored)); err != nil {
		return goerr.Wrap(err, "failed to put case", goerr.V("id", stored.ID))
	}

	return nil
}

func (r *caseRepository) Get(ctx context.Context, id model.CaseID) (*model.SupportCase, error) {
	doc, err := r.collection().Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "case not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get case", goerr.V("id", id))
	}

	var d caseDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal case", goerr.V("id", id))
	}

	return fromCaseDoc(&d), nil
}

func (r *caseRepository) FindSimilar(ctx context.Context, embedding []float32, limit int) ([]*model.SimilarCase, error) {
	vq := r.collection().FindNearest("Embedding", firestore.Vector32(embedding), limit,
		firestore.DistanceMeasureCosine,
		&firestore.FindNearestOptions{
			DistanceResultField: distanceField,
		},
	)

	iter := vq.Documents(ctx)
	defer iter.Stop()

	results := make([]*model.SimilarCase, 0, limit)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate vector search results")
		}

		var d caseDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal case from vector search")
		}

		// Cosine distance is 1 - similarity
		similarity := 0.0
		if v, err := doc.DataAt(distanceField); err == nil {
			if distance, ok := v.(float64); ok {
				similarity = 1 - distance
			}
		}

		results = append(results, &model.SimilarCase{
			Question:   d.Question,
			Answer:     d.Answer,
			Similarity: similarity,
		})
	}

	return results, nil
}
