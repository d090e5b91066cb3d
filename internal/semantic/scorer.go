package semantic

import (
	"context"
	"sync"

	"github.com/edumate/autograder/internal/textnorm"
)

// Default thresholds: rules match on a low bar (the blended score is
// conservative), while the sample-answer baseline pivots at 0.5.
const (
	DefaultRuleThreshold   = 0.2
	DefaultSampleThreshold = 0.5
)

const (
	directWeight  = 0.7
	overlapWeight = 0.3
)

// Scorer blends embedding cosine similarity with concept overlap. The
// encoder is injected once; embeddings are cached for the scorer's
// lifetime so repeated rule texts in a batch are encoded once.
type Scorer struct {
	enc  Encoder
	norm *textnorm.Normalizer

	mu    sync.RWMutex
	cache map[string][]float32
}

func NewScorer(enc Encoder, norm *textnorm.Normalizer) *Scorer {
	return &Scorer{
		enc:   enc,
		norm:  norm,
		cache: map[string][]float32{},
	}
}

func (s *Scorer) embed(ctx context.Context, text string) ([]float32, error) {
	s.mu.RLock()
	v, ok := s.cache[text]
	s.mu.RUnlock()
	if ok {
		return v, nil
	}
	v, err := s.enc.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.cache[text] = v
	s.mu.Unlock()
	return v, nil
}

// Similarity returns the embedding cosine similarity of two texts.
func (s *Scorer) Similarity(ctx context.Context, a, b string) (float64, error) {
	va, err := s.embed(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, err := s.embed(ctx, b)
	if err != nil {
		return 0, err
	}
	return Cosine(va, vb), nil
}

// conceptOverlap is the fraction of the rule's key concepts present in the
// student answer, 0 when the rule has none.
func (s *Scorer) conceptOverlap(student, rule string) float64 {
	ruleConcepts := s.norm.KeyConcepts(rule)
	if len(ruleConcepts) == 0 {
		return 0
	}
	studentSet := map[string]struct{}{}
	for _, c := range s.norm.KeyConcepts(student) {
		studentSet[c] = struct{}{}
	}
	hit := 0
	for _, c := range ruleConcepts {
		if _, ok := studentSet[c]; ok {
			hit++
		}
	}
	return float64(hit) / float64(len(ruleConcepts))
}

// Score evaluates a semantic rule: 0.7 * cosine + 0.3 * concept overlap,
// matched iff the blend reaches threshold.
func (s *Scorer) Score(ctx context.Context, student, rule string, threshold float64) (bool, float64, error) {
	direct, err := s.Similarity(ctx, student, rule)
	if err != nil {
		return false, 0, err
	}
	score := directWeight*direct + overlapWeight*s.conceptOverlap(student, rule)
	return score >= threshold, score, nil
}
