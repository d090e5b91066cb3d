package semantic

import (
	"context"
	"math"
)

// Encoder embeds a text span into a dense vector. Implementations must be
// safe for concurrent use; they are constructed once and shared for the
// process lifetime.
type Encoder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimension() int
}

// Cosine returns the cosine similarity of two vectors, 0 for mismatched
// or zero-magnitude inputs.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
