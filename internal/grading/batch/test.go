package batch

import (
	"context"
	"fmt"
	"math"
)

// ruleTexts flattens a marking scheme to its rule texts, for reporting a
// fully-missed question.
func ruleTexts(q Question) []string {
	out := make([]string, 0, len(q.MarkingScheme))
	for _, r := range q.MarkingScheme {
		if r.Text != "" {
			out = append(out, r.Text)
		}
	}
	return out
}

// GradeTest grades every student's submission for a multi-question test.
// Unanswered questions score zero with every rule missed; a student whose
// grading fails mid-test is skipped, not fatal.
func (o *Orchestrator) GradeTest(ctx context.Context, test Test) ([]TestResult, Summary, error) {
	questions := make([]Question, 0, len(test.QuestionIDs))
	for _, qid := range test.QuestionIDs {
		q, err := o.questions.QuestionByID(qid)
		if err != nil {
			o.log.Warn("test references unknown question", "test_id", test.ID, "question_id", qid)
			continue
		}
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return nil, Summary{}, fmt.Errorf("batch: test %s has no resolvable questions", test.ID)
	}

	subs, err := o.subs.TestSubmissions(test.ID)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("batch: load test submissions: %w", err)
	}

	var results []TestResult
	skipped := 0
	for _, sub := range subs {
		res, err := o.gradeTestSubmission(ctx, test, questions, sub)
		if err != nil {
			if ctx.Err() != nil {
				return nil, Summary{}, ctx.Err()
			}
			o.log.Warn("test grading failed", "test_id", test.ID, "student", sub.StudentRollNo, "err", err)
			skipped++
			continue
		}
		results = append(results, res)
	}
	return results, Summary{Processed: len(results), Skipped: skipped}, nil
}

func (o *Orchestrator) gradeTestSubmission(ctx context.Context, test Test, questions []Question, sub TestSubmission) (TestResult, error) {
	scores := make([]float64, 0, len(questions))
	grades := make([]string, 0, len(questions))
	details := make([]QuestionDetail, 0, len(questions))
	answered := 0

	for _, q := range questions {
		answer := sub.QuestionAnswers[q.ID]
		if answer == "" {
			scores = append(scores, 0)
			grades = append(grades, o.engine.Grade(0))
			details = append(details, QuestionDetail{
				QuestionID:   q.ID,
				Score:        0,
				Grade:        o.engine.Grade(0),
				MatchedRules: []string{},
				MissedRules:  ruleTexts(q),
			})
			continue
		}
		fb, err := o.engine.ScoreAnswer(ctx, answer, q.SampleAnswer, q.MarkingScheme)
		if err != nil {
			return TestResult{}, err
		}
		answered++
		scores = append(scores, fb.Score)
		grades = append(grades, fb.Grade)
		details = append(details, QuestionDetail{
			QuestionID:   q.ID,
			Score:        fb.Score,
			Grade:        fb.Grade,
			MatchedRules: fb.MatchedRules,
			MissedRules:  fb.MissedRules,
		})
	}

	overall := 0.0
	for _, s := range scores {
		overall += s
	}
	overall /= float64(len(scores))

	return TestResult{
		TestID:            test.ID,
		StudentName:       sub.StudentName,
		StudentRollNo:     sub.StudentRollNo,
		OverallScore:      overall,
		OverallPercent:    fmt.Sprintf("%.2f%%", overall*100),
		OverallGrade:      o.engine.Grade(overall),
		QuestionScores:    scores,
		QuestionGrades:    grades,
		QuestionDetails:   details,
		TotalQuestions:    len(questions),
		AnsweredQuestions: answered,
	}, nil
}

// TestStatistics aggregates graded test results: score spread, grade
// distribution and per-question averages. Returns nil for an empty batch.
func TestStatistics(results []TestResult) *TestStats {
	if len(results) == 0 {
		return nil
	}
	stats := &TestStats{
		TotalStudents:     len(results),
		MinScore:          math.Inf(1),
		MaxScore:          math.Inf(-1),
		GradeDistribution: map[string]int{},
		QuestionStats:     map[string]QuestionStat{},
	}
	sum := 0.0
	for _, r := range results {
		sum += r.OverallScore
		stats.MaxScore = math.Max(stats.MaxScore, r.OverallScore)
		stats.MinScore = math.Min(stats.MinScore, r.OverallScore)
		stats.GradeDistribution[r.OverallGrade]++
		for _, d := range r.QuestionDetails {
			qs := stats.QuestionStats[d.QuestionID]
			qs.Scores = append(qs.Scores, d.Score)
			stats.QuestionStats[d.QuestionID] = qs
		}
	}
	stats.AverageScore = sum / float64(len(results))
	stats.AveragePercent = stats.AverageScore * 100
	for qid, qs := range stats.QuestionStats {
		qsum := 0.0
		for _, s := range qs.Scores {
			qsum += s
		}
		qs.AvgScore = qsum / float64(len(qs.Scores))
		qs.AvgPercent = qs.AvgScore * 100
		stats.QuestionStats[qid] = qs
	}
	return stats
}
