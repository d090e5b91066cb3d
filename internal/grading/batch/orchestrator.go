package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/edumate/autograder/internal/grading"
)

// Orchestrator fans the answer scorer out over (question, submission)
// pairs. Pairs are independent and the engine is stateless per call, so
// they grade in parallel; ordering of the returned records follows the
// submission order regardless.
type Orchestrator struct {
	engine    *grading.Engine
	questions QuestionSource
	subs      SubmissionSource
	workers   int
	log       *slog.Logger
}

type OrchestratorOption func(*Orchestrator)

// WithWorkers caps grading concurrency. Values below 1 mean sequential.
func WithWorkers(n int) OrchestratorOption {
	return func(o *Orchestrator) {
		if n > 0 {
			o.workers = n
		}
	}
}

func WithOrchestratorLogger(l *slog.Logger) OrchestratorOption {
	return func(o *Orchestrator) { o.log = l }
}

func NewOrchestrator(engine *grading.Engine, questions QuestionSource, subs SubmissionSource, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		engine:    engine,
		questions: questions,
		subs:      subs,
		workers:   4,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// GradeAll grades every submission against its question. A pair whose
// grading fails is skipped and counted; it never aborts the batch.
func (o *Orchestrator) GradeAll(ctx context.Context) ([]StudentResult, Summary, error) {
	questions, err := o.questions.Questions()
	if err != nil {
		return nil, Summary{}, fmt.Errorf("batch: load questions: %w", err)
	}
	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	subs, err := o.subs.Submissions()
	if err != nil {
		return nil, Summary{}, fmt.Errorf("batch: load submissions: %w", err)
	}

	results := make([]*StudentResult, len(subs))
	var mu sync.Mutex
	skipped := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, sub := range subs {
		i, sub := i, sub
		g.Go(func() error {
			q, ok := byID[sub.QuestionID]
			if !ok {
				o.log.Warn("submission references unknown question",
					"question_id", sub.QuestionID,
					"student", sub.StudentRollNo,
				)
				mu.Lock()
				skipped++
				mu.Unlock()
				return nil
			}
			fb, err := o.engine.ScoreAnswer(gctx, sub.Answer, q.SampleAnswer, q.MarkingScheme)
			if err != nil {
				// context cancellation is terminal; anything else is
				// isolated to this pair
				if gctx.Err() != nil {
					return gctx.Err()
				}
				o.log.Warn("grading failed",
					"question_id", sub.QuestionID,
					"student", sub.StudentRollNo,
					"err", err,
				)
				mu.Lock()
				skipped++
				mu.Unlock()
				return nil
			}
			results[i] = &StudentResult{
				StudentName:   sub.StudentName,
				StudentRollNo: sub.StudentRollNo,
				StudentAnswer: sub.Answer,
				QuestionID:    sub.QuestionID,
				Score:         fb.Score,
				Percent:       fmt.Sprintf("%.2f%%", fb.Score*100),
				Grade:         fb.Grade,
				MatchedRules:  fb.MatchedRules,
				MissedRules:   fb.MissedRules,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Summary{}, err
	}

	out := make([]StudentResult, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, Summary{Processed: len(out), Skipped: skipped}, nil
}
