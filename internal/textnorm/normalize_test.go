package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmptyInput(t *testing.T) {
	n := New()
	assert.Empty(t, n.Normalize(""))
	assert.Empty(t, n.ImportantContent(""))
	assert.Empty(t, n.KeyConcepts(""))
}

func TestNormalizeLowercasesAndTokenizes(t *testing.T) {
	n := New()
	got := n.Normalize("The Cell Membrane")
	assert.Contains(t, got, "cell")
	assert.Contains(t, got, "membrane")
	assert.Contains(t, got, "the")
}

func TestImportantContentDropsStopAndShortWords(t *testing.T) {
	n := New()
	got := n.ImportantContent("The answer contains an ion in the cell membrane")
	assert.NotContains(t, got, "the")
	assert.NotContains(t, got, "an")
	assert.NotContains(t, got, "contains")
	assert.NotContains(t, got, "contain")
	assert.NotContains(t, got, "answer")
	// "ion" survives the 3-rune floor, "in" does not
	assert.Contains(t, got, "ion")
	assert.NotContains(t, got, "in")
	assert.Contains(t, got, "cell")
	assert.Contains(t, got, "membrane")
}

func TestImportantContentFoldsPlurals(t *testing.T) {
	n := New()
	rule := n.ImportantContent("contains protons and neutrons")
	answer := n.ImportantContent("the nucleus holds every proton and neutron")
	assert.Equal(t, 2, Overlap(answer, rule))
}

func TestKeyConceptsPreservesOrderWithoutLemmas(t *testing.T) {
	n := New()
	got := n.KeyConcepts("Explains the relationship between force and acceleration")
	assert.Equal(t, []string{"relationship", "force", "acceleration"}, got)
}

func TestOverlapCountsIntersection(t *testing.T) {
	have := map[string]struct{}{"a": {}, "b": {}, "c": {}}
	want := map[string]struct{}{"b": {}, "c": {}, "d": {}}
	assert.Equal(t, 2, Overlap(have, want))
	assert.Equal(t, 0, Overlap(nil, want))
	assert.Equal(t, 0, Overlap(have, nil))
}
