package memory

import (
	"github.com/forage-labs/stitch/pkg/domain/interfaces"
)

// Memory is an in-memory repository for development and tests
type Memory struct {
	cases    *caseRepository
	feedback *feedbackRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		cases:    newCaseRepository(),
		feedback: newFeedbackRepository(),
	}
}

func (m *Memory) Case() interfaces.CaseRepository {
	return m.cases
}

func (m *Memory) Feedback() interfaces.FeedbackRepository {
	return m.feedback
}

func (m *Memory) Close() error {
	return nil
}
