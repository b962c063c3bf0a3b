package zendesk

import "context"

// Service provides interface to the Zendesk ticketing REST API.
// Only the two endpoints the webhook pipeline needs are covered:
// requester lookup and internal ticket annotation.
type Service interface {
	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, userID int64) (*User, error)

	// AddInternalNote appends a non-customer-visible comment to the
	// given ticket
	AddInternalNote(ctx context.Context, ticketID int64, body string) error
}

// User is a Zendesk user record
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
