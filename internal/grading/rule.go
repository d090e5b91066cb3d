package grading

import (
	"sort"
	"strings"

	"github.com/edumate/autograder/internal/mathexpr"
)

// RuleType is the closed set of matching strategies a marking rule can
// use.
type RuleType string

const (
	ExactPhrase      RuleType = "exact_phrase"
	ContainsKeywords RuleType = "contains_keywords"
	Semantic         RuleType = "semantic"
	MathEquation     RuleType = "math_equation"
)

// Rule is one instructor-authored marking criterion. Type may be empty,
// in which case it is inferred from the text before matching.
type Rule struct {
	Text string   `json:"text"`
	Type RuleType `json:"type,omitempty"`
}

// MatchResult is the per-rule outcome.
type MatchResult struct {
	Matched bool    `json:"matched"`
	Score   float64 `json:"score"`
}

// AnswerFeedback is the scored outcome for one (question, answer) pair.
// Immutable once returned.
type AnswerFeedback struct {
	Score        float64  `json:"score"`
	Grade        string   `json:"grade"`
	MatchedRules []string `json:"matched_rules"`
	MissedRules  []string `json:"missed_rules"`
}

var exactPhraseWords = []string{"formula", "equation", "mention"}
var keywordWords = []string{"contain", "has", "include"}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// DetectRuleType infers the matching strategy from rule text. It is a
// pure classifier: the same text always yields the same type. A bare
// expression ("F = ma") is a math rule; once instructional phrasing wraps
// it ("Mentions the formula F = ma.") the rule asks for textual presence,
// so the keyword checks win over the math check.
func DetectRuleType(text string) RuleType {
	lower := strings.ToLower(text)
	instructional := containsAny(lower, exactPhraseWords) || containsAny(lower, keywordWords)
	if !instructional && mathexpr.IsMathExpression(text) {
		return MathEquation
	}
	if containsAny(lower, exactPhraseWords) {
		return ExactPhrase
	}
	if containsAny(lower, keywordWords) {
		return ContainsKeywords
	}
	return Semantic
}

// resolveType returns the effective strategy for a rule, auto-detecting
// when the declared type is absent or unknown.
func resolveType(r Rule) RuleType {
	switch r.Type {
	case ExactPhrase, ContainsKeywords, Semantic, MathEquation:
		return r.Type
	}
	return DetectRuleType(r.Text)
}

// Band is one grade cutoff: scores at or above MinPercent earn Label.
type Band struct {
	Label      string  `json:"label"`
	MinPercent float64 `json:"min_percent"`
}

// GradeThresholds maps scores to letter grades, descending by cutoff.
type GradeThresholds []Band

// DefaultThresholds is the built-in table used when the caller supplies
// none.
func DefaultThresholds() GradeThresholds {
	return GradeThresholds{
		{Label: "A", MinPercent: 85},
		{Label: "B", MinPercent: 70},
		{Label: "C", MinPercent: 55},
		{Label: "D", MinPercent: 40},
		{Label: "F", MinPercent: 0},
	}
}

// AssignGrade converts a fractional score to a letter grade. The table is
// sorted descending before use so malformed orderings still grade; if no
// cutoff is met the lowest-ranked label is returned rather than an error.
func AssignGrade(score float64, thresholds GradeThresholds) string {
	if len(thresholds) == 0 {
		thresholds = DefaultThresholds()
	}
	sorted := make(GradeThresholds, len(thresholds))
	copy(sorted, thresholds)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinPercent > sorted[j].MinPercent
	})
	percent := score * 100
	for _, b := range sorted {
		if percent >= b.MinPercent {
			return b.Label
		}
	}
	return sorted[len(sorted)-1].Label
}
