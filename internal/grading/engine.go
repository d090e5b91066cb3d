package grading

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/edumate/autograder/internal/mathexpr"
	"github.com/edumate/autograder/internal/semantic"
	"github.com/edumate/autograder/internal/textnorm"
)

// Engine matches student answers against typed marking rules and scores
// whole answers. It holds the injected encoder (via the semantic scorer)
// and is safe for concurrent use.
type Engine struct {
	scorer     *semantic.Scorer
	norm       *textnorm.Normalizer
	log        *slog.Logger
	threshold  float64
	grades     GradeThresholds
	strategies map[RuleType]strategy
}

type strategy func(ctx context.Context, answer string, rule Rule) (MatchResult, error)

type Option func(*Engine)

// WithThreshold overrides the semantic match threshold.
func WithThreshold(t float64) Option { return func(e *Engine) { e.threshold = t } }

// WithGradeThresholds sets the grade table used by ScoreAnswer.
func WithGradeThresholds(g GradeThresholds) Option { return func(e *Engine) { e.grades = g } }

// WithLogger enables diagnostic logging. Diagnostics never change
// returned values.
func WithLogger(l *slog.Logger) Option { return func(e *Engine) { e.log = l } }

// NewEngine builds an engine around an embedding encoder. The encoder is
// the only external capability; everything else is self-contained.
func NewEngine(enc semantic.Encoder, opts ...Option) *Engine {
	norm := textnorm.New()
	e := &Engine{
		scorer:    semantic.NewScorer(enc, norm),
		norm:      norm,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		threshold: semantic.DefaultRuleThreshold,
		grades:    DefaultThresholds(),
	}
	for _, o := range opts {
		o(e)
	}
	e.strategies = map[RuleType]strategy{
		ExactPhrase:      e.matchExactPhrase,
		ContainsKeywords: e.matchKeywords,
		Semantic:         e.matchSemantic,
		MathEquation:     e.matchMath,
	}
	return e
}

// MatchRule evaluates one rule against a student answer. The rule's type
// is auto-detected when absent. Errors are only returned for embedding
// backend failures; every per-rule degradation (parse failure, empty
// content) resolves internally.
func (e *Engine) MatchRule(ctx context.Context, answer string, rule Rule) (MatchResult, error) {
	if strings.TrimSpace(rule.Text) == "" {
		// malformed rule: fail closed, never error
		return MatchResult{}, nil
	}
	rt := resolveType(rule)
	s, ok := e.strategies[rt]
	if !ok {
		s = e.matchSemantic
	}
	res, err := s(ctx, answer, rule)
	if err != nil {
		return MatchResult{}, err
	}
	e.log.Debug("rule matched",
		"rule", rule.Text,
		"type", string(rt),
		"matched", res.Matched,
		"score", res.Score,
	)
	return res, nil
}

// matchExactPhrase requires literal case-insensitive presence of an
// extracted key phrase. Formulas and specific mentions need textual
// presence, not semantic closeness, so the score is binary.
func (e *Engine) matchExactPhrase(_ context.Context, answer string, rule Rule) (MatchResult, error) {
	phrases := extractPhrases(rule.Text, phrasePatterns)
	if len(phrases) == 0 {
		// no instructional phrasing to strip; use content words directly
		for w := range e.norm.ImportantContent(rule.Text) {
			phrases = append(phrases, w)
		}
	}
	hit, ok := anyPhrasePresent(answer, phrases)
	e.log.Debug("exact phrase", "rule", rule.Text, "candidates", phrases, "hit", hit)
	if ok {
		return MatchResult{Matched: true, Score: 1.0}, nil
	}
	return MatchResult{}, nil
}

// matchKeywords tries a precise phrase hit first, then lemma-set overlap
// with a tiered threshold: short rules need a high fractional bar, long
// rules an absolute floor of three overlapping lemmas.
func (e *Engine) matchKeywords(ctx context.Context, answer string, rule Rule) (MatchResult, error) {
	if phrase, ok := anyPhrasePresent(answer, extractPhrases(rule.Text, keywordPatterns)); ok {
		e.log.Debug("keyword phrase hit", "rule", rule.Text, "phrase", phrase)
		return MatchResult{Matched: true, Score: 1.0}, nil
	}

	ruleWords := e.norm.ImportantContent(rule.Text)
	if len(ruleWords) == 0 {
		return e.matchSemantic(ctx, answer, rule)
	}
	answerWords := e.norm.ImportantContent(answer)
	overlap := textnorm.Overlap(answerWords, ruleWords)
	score := float64(overlap) / float64(len(ruleWords))

	need := int(math.Ceil(0.8 * float64(len(ruleWords))))
	matched := overlap >= need || score >= 0.8 || overlap >= 3
	e.log.Debug("keyword overlap",
		"rule", rule.Text,
		"rule_words", len(ruleWords),
		"overlap", overlap,
		"score", score,
	)
	return MatchResult{Matched: matched, Score: score}, nil
}

// matchMath delegates to the symbolic equivalence checker; unparseable
// input degrades to semantic matching instead of failing the rule.
func (e *Engine) matchMath(ctx context.Context, answer string, rule Rule) (MatchResult, error) {
	matched, score, err := mathexpr.Compare(rule.Text, answer)
	if err != nil {
		var perr *mathexpr.ParseError
		if errors.As(err, &perr) {
			e.log.Debug("math parse failed, semantic fallback", "rule", rule.Text, "err", err)
			return e.matchSemantic(ctx, answer, rule)
		}
		return MatchResult{}, err
	}
	return MatchResult{Matched: matched, Score: score}, nil
}

func (e *Engine) matchSemantic(ctx context.Context, answer string, rule Rule) (MatchResult, error) {
	matched, score, err := e.scorer.Score(ctx, answer, rule.Text, e.threshold)
	if err != nil {
		return MatchResult{}, err
	}
	return MatchResult{Matched: matched, Score: score}, nil
}
