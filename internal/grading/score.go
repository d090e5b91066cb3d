package grading

import (
	"context"
	"math"
	"strings"
)

const (
	bonusPivot  = 0.5
	bonusWeight = 0.2
)

// Grade maps a fractional score through the engine's threshold table.
func (e *Engine) Grade(score float64) string {
	return AssignGrade(score, e.grades)
}

// ScoreAnswer grades one student answer against a question's sample
// answer and marking scheme. The final score is rule-completion-rate
// based: rules are the instructor's explicit rubric, so discrete rule
// satisfaction dominates and holistic similarity to the sample answer
// only contributes a small capped bonus for exceptionally on-topic
// answers.
func (e *Engine) ScoreAnswer(ctx context.Context, answer, sampleAnswer string, rules []Rule) (AnswerFeedback, error) {
	matched := []string{}
	missed := []string{}
	scores := make([]float64, 0, len(rules))
	total := 0

	for _, r := range rules {
		if strings.TrimSpace(r.Text) == "" {
			// malformed rule: excluded from both lists, never counted
			// as a miss
			continue
		}
		total++
		res, err := e.MatchRule(ctx, answer, r)
		if err != nil {
			return AnswerFeedback{}, err
		}
		scores = append(scores, res.Score)
		if res.Matched {
			matched = append(matched, r.Text)
		} else {
			missed = append(missed, r.Text)
		}
	}

	ruleScore := 0.0
	if total > 0 {
		ruleScore = float64(len(matched)) / float64(total)
	}

	sampleSim := 0.0
	if strings.TrimSpace(answer) != "" && strings.TrimSpace(sampleAnswer) != "" {
		sim, err := e.scorer.Similarity(ctx, answer, sampleAnswer)
		if err != nil {
			return AnswerFeedback{}, err
		}
		sampleSim = sim
	}
	bonus := math.Max(0, (sampleSim-bonusPivot)*bonusWeight)
	score := math.Min(1.0, ruleScore+bonus)

	e.log.Debug("answer scored",
		"rules", total,
		"matched", len(matched),
		"rule_score", ruleScore,
		"sample_similarity", sampleSim,
		"bonus", bonus,
		"rule_scores", scores,
		"final", score,
	)

	return AnswerFeedback{
		Score:        score,
		Grade:        AssignGrade(score, e.grades),
		MatchedRules: matched,
		MissedRules:  missed,
	}, nil
}
