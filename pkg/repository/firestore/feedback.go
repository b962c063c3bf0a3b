package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"

	"github.com/forage-labs/stitch/pkg/domain/interfaces"
	"github.com/forage-labs/stitch/pkg/domain/model"
	"github.com/forage-labs/stitch/pkg/domain/types"
)

// feedbackDoc is the Firestore document representation of model.Feedback
type feedbackDoc struct {
	ID              model.FeedbackID `firestore:"ID"`
	CustomerMessage string           `firestore:"CustomerMessage"`
	Suggestion      string           `firestore:"Suggestion"`
	FinalResponse   string           `firestore:"FinalResponse"`
	Rating          string           `firestore:"Rating"`
	CreatedAt       time.Time        `firestore:"CreatedAt"`
}

type feedbackRepository struct {
	client *firestore.Client
}

var _ interfaces.FeedbackRepository = &feedbackRepository{}

func newFeedbackRepository(client *firestore.Client) *feedbackRepository {
	return &feedbackRepository{client: client}
}

func (r *feedbackRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(feedbackCollection)
}

func (r *feedbackRepository) Create(ctx context.Context, fb *model.Feedback) (*model.Feedback, error) {
	if err := fb.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid feedback record")
	}

	stored := *fb
	if stored.ID == "" {
		stored.ID = model.NewFeedbackID()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	doc := &feedbackDoc{
		ID:              stored.ID,
		CustomerMessage: stored.CustomerMessage,
		Suggestion:      stored.Suggestion,
		FinalResponse:   stored.FinalResponse,
		Rating:          stored.Rating.String(),
		CreatedAt:       stored.CreatedAt,
	}

	if _, err := r.collection().Doc(stored.ID.String()).Create(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create feedback", goerr.V("id", stored.ID))
	}

	return &stored, nil
}

func (r *feedbackRepository) List(ctx context.Context, limit int) ([]*model.Feedback, error) {
	q := r.collection().OrderBy("CreatedAt", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var result []*model.Feedback
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate feedback records")
		}

		var d feedbackDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal feedback")
		}

		result = append(result, &model.Feedback{
			ID:              d.ID,
			CustomerMessage: d.CustomerMessage,
			Suggestion:      d.Suggestion,
			FinalResponse:   d.FinalResponse,
			Rating:          types.FeedbackRating(d.Rating),
			CreatedAt:       d.CreatedAt,
		})
	}

	return result, nil
}
