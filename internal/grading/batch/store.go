package batch

import (
	"errors"
	"sync"
)

// QuestionSource and SubmissionSource are the collaborator-facing
// capabilities the orchestrator pulls from. Persistence lives with the
// collaborator; the in-memory implementations below are enough for
// embedding the grader in a larger system or a test.
type QuestionSource interface {
	Questions() ([]Question, error)
	QuestionByID(id string) (Question, error)
}

type SubmissionSource interface {
	Submissions() ([]Submission, error)
	TestSubmissions(testID string) ([]TestSubmission, error)
}

type MemorySource struct {
	mu        sync.RWMutex
	questions map[string]Question
	order     []string
	subs      []Submission
	testSubs  map[string][]TestSubmission
}

// NewMemorySource returns an in-memory QuestionSource + SubmissionSource.
func NewMemorySource() *MemorySource {
	return &MemorySource{
		questions: map[string]Question{},
		testSubs:  map[string][]TestSubmission{},
	}
}

func (m *MemorySource) PutQuestion(q Question) error {
	if q.ID == "" {
		return errors.New("batch: question id required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.questions[q.ID]; !exists {
		m.order = append(m.order, q.ID)
	}
	m.questions[q.ID] = q
	return nil
}

func (m *MemorySource) AddSubmission(s Submission) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, s)
}

func (m *MemorySource) AddTestSubmission(testID string, s TestSubmission) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.testSubs[testID] = append(m.testSubs[testID], s)
}

func (m *MemorySource) Questions() ([]Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Question, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.questions[id])
	}
	return out, nil
}

func (m *MemorySource) QuestionByID(id string) (Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.questions[id]
	if !ok {
		return Question{}, errors.New("batch: question not found")
	}
	return q, nil
}

func (m *MemorySource) Submissions() ([]Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Submission, len(m.subs))
	copy(out, m.subs)
	return out, nil
}

func (m *MemorySource) TestSubmissions(testID string) ([]TestSubmission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]TestSubmission, len(m.testSubs[testID]))
	copy(out, m.testSubs[testID])
	return out, nil
}
