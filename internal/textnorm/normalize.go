package textnorm

import (
	"regexp"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

var wordRe = regexp.MustCompile(`\w+`)

// Normalizer lowercases, tokenizes and lemmatizes free text. If the
// lemmatizer dictionary cannot be loaded it degrades to plain lowercasing
// and keeps working; callers never see an error from normalization.
type Normalizer struct {
	lem *golem.Lemmatizer
}

func New() *Normalizer {
	lem, err := golem.New(en.New())
	if err != nil {
		// degraded mode: tokens pass through lowercased
		return &Normalizer{}
	}
	return &Normalizer{lem: lem}
}

func (n *Normalizer) lemma(word string) string {
	if n.lem == nil {
		return word
	}
	if l := n.lem.Lemma(word); l != "" {
		return l
	}
	return word
}

// Normalize returns the set of lowercased lemmas in text.
func (n *Normalizer) Normalize(text string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, tok := range wordRe.FindAllString(strings.ToLower(text), -1) {
		out[n.lemma(tok)] = struct{}{}
	}
	return out
}

// ImportantContent is Normalize minus stop words, function words and
// instructional verbs ("mentions", "contains", ...), and minus tokens
// shorter than 3 runes. This is the lemma set both keyword matching and
// concept overlap operate on.
func (n *Normalizer) ImportantContent(text string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, tok := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if len([]rune(tok)) < 3 {
			continue
		}
		if _, skip := stopWords[tok]; skip {
			continue
		}
		l := n.lemma(tok)
		if _, skip := stopWords[l]; skip {
			continue
		}
		out[l] = struct{}{}
	}
	return out
}

// KeyConcepts returns the content words of text in input order, without
// lemmatization. Used only by the semantic concept-overlap term where the
// surface form matters less than ordering.
func (n *Normalizer) KeyConcepts(text string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, tok := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if len([]rune(tok)) < 3 {
			continue
		}
		if _, skip := stopWords[tok]; skip {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// Overlap counts how many elements of want are present in have.
func Overlap(have, want map[string]struct{}) int {
	n := 0
	for w := range want {
		if _, ok := have[w]; ok {
			n++
		}
	}
	return n
}
