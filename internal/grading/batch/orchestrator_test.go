package batch

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumate/autograder/internal/grading"
)

// sameEncoder pins cosine similarity to 1 so semantic rules always match
// and scoring is exact.
type sameEncoder struct{}

func (sameEncoder) Dimension() int { return 4 }

func (sameEncoder) Embed(_ context.Context, _ string) ([]float32, error) {
	return []float32{1, 1, 1, 1}, nil
}

// slowEncoder verifies concurrent access stays race-free.
type slowEncoder struct {
	mu    sync.Mutex
	calls int
}

func (s *slowEncoder) Dimension() int { return 4 }

func (s *slowEncoder) Embed(_ context.Context, _ string) ([]float32, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return []float32{1, 1, 1, 1}, nil
}

func physicsQuestion() Question {
	return Question{
		ID:           "q1",
		Text:         "State and explain Newton's second law.",
		SampleAnswer: "Newton's second law: F=ma, force is mass times acceleration.",
		MarkingScheme: []grading.Rule{
			{Text: "Mentions the formula F = ma.", Type: grading.ExactPhrase},
			{Text: "Explains the relationship between force, mass, and acceleration.", Type: grading.Semantic},
		},
	}
}

func newTestOrchestrator(t *testing.T, src *MemorySource) *Orchestrator {
	t.Helper()
	engine := grading.NewEngine(sameEncoder{})
	return NewOrchestrator(engine, src, src, WithWorkers(2))
}

func TestGradeAll(t *testing.T) {
	src := NewMemorySource()
	require.NoError(t, src.PutQuestion(physicsQuestion()))
	src.AddSubmission(Submission{
		StudentName: "Ada", StudentRollNo: "1", QuestionID: "q1",
		Answer: "f = ma shows force grows with mass and acceleration.",
	})
	src.AddSubmission(Submission{
		StudentName: "Ben", StudentRollNo: "2", QuestionID: "q1",
		Answer: "f = ma",
	})

	orch := newTestOrchestrator(t, src)
	results, summary, err := orch.GradeAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, Summary{Processed: 2, Skipped: 0}, summary)

	// submission order is preserved
	assert.Equal(t, "Ada", results[0].StudentName)
	assert.Equal(t, "Ben", results[1].StudentName)
	assert.Equal(t, "100.00%", results[0].Percent)
	assert.Equal(t, "A", results[0].Grade)
	assert.Len(t, results[0].MatchedRules, 2)
}

func TestGradeAllSkipsUnknownQuestion(t *testing.T) {
	src := NewMemorySource()
	require.NoError(t, src.PutQuestion(physicsQuestion()))
	src.AddSubmission(Submission{StudentRollNo: "1", QuestionID: "q1", Answer: "f = ma"})
	src.AddSubmission(Submission{StudentRollNo: "2", QuestionID: "missing", Answer: "anything"})

	orch := newTestOrchestrator(t, src)
	results, summary, err := orch.GradeAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, Summary{Processed: 1, Skipped: 1}, summary)
}

func TestGradeAllEmptyBatch(t *testing.T) {
	orch := newTestOrchestrator(t, NewMemorySource())
	results, summary, err := orch.GradeAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, Summary{}, summary)
}

func TestGradeAllParallel(t *testing.T) {
	src := NewMemorySource()
	require.NoError(t, src.PutQuestion(physicsQuestion()))
	for i := 0; i < 20; i++ {
		src.AddSubmission(Submission{
			StudentRollNo: "r", QuestionID: "q1",
			Answer: "f = ma is the second law",
		})
	}
	engine := grading.NewEngine(&slowEncoder{})
	orch := NewOrchestrator(engine, src, src, WithWorkers(8))
	results, summary, err := orch.GradeAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, results, 20)
	assert.Equal(t, 20, summary.Processed)
}
