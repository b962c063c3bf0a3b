package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Case() CaseRepository
	Feedback() FeedbackRepository

	// Close releases backend resources
	Close() error
}
