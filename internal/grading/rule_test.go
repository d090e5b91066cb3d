package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectRuleType(t *testing.T) {
	tests := []struct {
		text string
		want RuleType
	}{
		{"Mentions the formula F = ma.", ExactPhrase},
		{"contains protons, neutrons and electrons", ContainsKeywords},
		{"explains the relationship between force and acceleration", Semantic},
		{"F = ma", MathEquation},
		{"v = d/t", MathEquation},
		{"has a nucleus at the center", ContainsKeywords},
		{"includes DNA and RNA", ContainsKeywords},
		{"describes how plants convert sunlight into energy", Semantic},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectRuleType(tt.text))
		})
	}
}

func TestDetectRuleTypeDeterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		assert.Equal(t, ExactPhrase, DetectRuleType("Mentions the formula F = ma."))
	}
}

func TestResolveTypeHonorsDeclaredType(t *testing.T) {
	assert.Equal(t, Semantic, resolveType(Rule{Text: "F = ma", Type: Semantic}))
	assert.Equal(t, MathEquation, resolveType(Rule{Text: "F = ma"}))
	assert.Equal(t, Semantic, resolveType(Rule{Text: "anything", Type: RuleType("bogus")}))
}

func TestAssignGradeDefaults(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1.0, "A"}, {0.85, "A"}, {0.84, "B"}, {0.70, "B"},
		{0.55, "C"}, {0.40, "D"}, {0.39, "F"}, {0.0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AssignGrade(tt.score, nil), "score %v", tt.score)
	}
}

func TestAssignGradeMonotonic(t *testing.T) {
	rank := map[string]int{"A": 4, "B": 3, "C": 2, "D": 1, "F": 0}
	prev := -1
	for _, s := range []float64{0.0, 0.2, 0.41, 0.56, 0.71, 0.86, 1.0} {
		r := rank[AssignGrade(s, nil)]
		assert.GreaterOrEqual(t, r, prev, "score %v", s)
		prev = r
	}
}

func TestAssignGradeUnsortedTable(t *testing.T) {
	table := GradeThresholds{
		{Label: "pass", MinPercent: 50},
		{Label: "merit", MinPercent: 75},
	}
	assert.Equal(t, "merit", AssignGrade(0.8, table))
	assert.Equal(t, "pass", AssignGrade(0.6, table))
}

func TestAssignGradeNoCutoffMet(t *testing.T) {
	table := GradeThresholds{
		{Label: "A", MinPercent: 85},
		{Label: "B", MinPercent: 70},
	}
	// degenerate table: lowest-ranked label, never an error
	assert.Equal(t, "B", AssignGrade(0.1, table))
}
