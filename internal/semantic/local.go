package semantic

import (
	"context"
	"hash/fnv"
	"strings"
	"unicode"
)

const localDimension = 512

// LocalEncoder is a deterministic, dependency-free embedder used in
// offline mode and in tests. It hashes word unigrams, word bigrams and
// character trigrams into a fixed-size vector with signed random
// projection, which preserves enough lexical-overlap signal for grading
// thresholds tuned against transformer embeddings to remain usable.
type LocalEncoder struct {
	dimension int
}

func NewLocalEncoder() *LocalEncoder {
	return &LocalEncoder{dimension: localDimension}
}

func (e *LocalEncoder) Dimension() int { return e.dimension }

func (e *LocalEncoder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, e.dimension)
	tokens := localTokens(text)
	if len(tokens) == 0 {
		return vec, nil
	}

	// word unigrams
	for _, t := range tokens {
		e.project(vec, "w:"+t, 1.0)
	}
	// word bigrams
	for i := 0; i+1 < len(tokens); i++ {
		e.project(vec, "b:"+tokens[i]+"_"+tokens[i+1], 0.6)
	}
	// character trigrams, for morphology and misspellings
	joined := " " + strings.Join(tokens, " ") + " "
	for i := 0; i+3 <= len(joined); i++ {
		e.project(vec, "c:"+joined[i:i+3], 0.3)
	}
	return vec, nil
}

// project adds a signed unit contribution at two hashed positions, the
// usual feature-hashing trick to soften collisions.
func (e *LocalEncoder) project(vec []float32, feature string, weight float32) {
	h := fnv.New64a()
	h.Write([]byte(feature))
	sum := h.Sum64()
	for k := 0; k < 2; k++ {
		idx := int((sum >> (k * 17)) % uint64(e.dimension))
		sign := float32(1)
		if (sum>>(k*17+9))&1 == 1 {
			sign = -1
		}
		vec[idx] += sign * weight
	}
}

func localTokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
