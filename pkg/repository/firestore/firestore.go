package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/forage-labs/stitch/pkg/domain/interfaces"
)

// Collection names
const (
	casesCollection    = "cases"
	feedbackCollection = "feedbacks"
)

// ErrNotFound is returned when a document does not exist
var ErrNotFound = goerr.New("not found")

// Firestore is the persistent repository backend
type Firestore struct {
	client   *firestore.Client
	cases    *caseRepository
	feedback *feedbackRepository
}

var _ interfaces.Repository = &Firestore{}

func New(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	return &Firestore{
		client:   client,
		cases:    newCaseRepository(client),
		feedback: newFeedbackRepository(client),
	}, nil
}

func (f *Firestore) Case() interfaces.CaseRepository {
	return f.cases
}

func (f *Firestore) Feedback() interfaces.FeedbackRepository {
	return f.feedback
}

func (f *Firestore) Close() error {
	if err := f.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close firestore client")
	}
	return nil
}
