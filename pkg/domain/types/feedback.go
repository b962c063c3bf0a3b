package types

import "fmt"

// FeedbackRating represents an agent's verdict on a generated suggestion
type FeedbackRating string

const (
	FeedbackPositive FeedbackRating = "positive"
	FeedbackNegative FeedbackRating = "negative"
	FeedbackNeutral  FeedbackRating = "neutral"
)

// AllFeedbackRatings returns all valid feedback ratings
func AllFeedbackRatings() []FeedbackRating {
	return []FeedbackRating{
		FeedbackPositive,
		FeedbackNegative,
		FeedbackNeutral,
	}
}

// IsValid checks if the feedback rating is valid
func (r FeedbackRating) IsValid() bool {
	switch r {
	case FeedbackPositive, FeedbackNegative, FeedbackNeutral:
		return true
	default:
		return false
	}
}

// String returns the string representation of the feedback rating
func (r FeedbackRating) String() string {
	return string(r)
}

// ParseFeedbackRating parses a string into a FeedbackRating
func ParseFeedbackRating(s string) (FeedbackRating, error) {
	rating := FeedbackRating(s)
	if !rating.IsValid() {
		return "", fmt.Errorf("invalid feedback rating: %s", s)
	}
	return rating, nil
}
