package model

import (
	"time"

	"github.com/google/uuid"
)

// EmbeddingDimension is the dimension of OpenAI text-embedding-3-small vectors
const EmbeddingDimension = 1536

// CaseID is a unique identifier for a historical support case
type CaseID string

// NewCaseID generates a new unique case ID
func NewCaseID() CaseID {
	return CaseID(uuid.New().String())
}

// String returns the string representation of CaseID
func (c CaseID) String() string {
	return string(c)
}

// SupportCase is a resolved historical question/answer pair. The
// embedding of the question text is stored alongside so that new
// inquiries can be matched by vector similarity.
type SupportCase struct {
	ID        CaseID
	Question  string
	Answer    string
	Embedding []float32
	CreatedAt time.Time
}

// SimilarCase is a historical case retrieved by nearest-neighbor
// search, annotated with its cosine similarity to the query in [0, 1].
// It is consumed only to build prompt context and never persisted.
type SimilarCase struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Similarity float64 `json:"similarity"`
}
