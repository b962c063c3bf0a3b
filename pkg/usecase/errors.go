package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Validation errors, mapped to 400 responses by the controllers
	ErrEmptyMessage      = errors.New("customer message is required")
	ErrEmptyConversation = errors.New("conversation is required")
	ErrInvalidEvent      = errors.New("ticket ID and comment are required")

	// Configuration errors, raised at call time for the affected
	// request only
	ErrMailNotConfigured = errors.New("mail service is not configured")
)
