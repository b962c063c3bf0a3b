package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/forage-labs/stitch/pkg/domain/types"
)

// FeedbackID is a unique identifier for a feedback record
type FeedbackID string

// NewFeedbackID generates a new unique feedback ID
func NewFeedbackID() FeedbackID {
	return FeedbackID(uuid.New().String())
}

// String returns the string representation of FeedbackID
func (f FeedbackID) String() string {
	return string(f)
}

// Feedback records how an agent rated a generated suggestion together
// with the reply that was actually sent. Records are write-once; there
// is no update or delete path.
type Feedback struct {
	ID              FeedbackID
	CustomerMessage string
	Suggestion      string
	FinalResponse   string
	Rating          types.FeedbackRating
	CreatedAt       time.Time
}

// Validate checks that all required fields are present and the rating
// is one of the known values
func (f *Feedback) Validate() error {
	if f.CustomerMessage == "" {
		return goerr.New("customer message is required")
	}
	if f.Suggestion == "" {
		return goerr.New("suggestion is required")
	}
	if f.FinalResponse == "" {
		return goerr.New("final response is required")
	}
	if !f.Rating.IsValid() {
		return goerr.New("invalid feedback rating", goerr.V("rating", f.Rating))
	}
	return nil
}
