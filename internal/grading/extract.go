package grading

import (
	"regexp"
	"strings"
)

// phrasePatterns pull the content clause out of instructional rule
// phrasing. All patterns run against the rule; every capture becomes a
// candidate phrase, so "Mentions the formula F = ma." yields both
// "formula F = ma" and "F = ma".
var phrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)mentions?\s+(?:the\s+)?(.+)`),
	regexp.MustCompile(`(?i)contains?\s+(?:the\s+)?(.+)`),
	regexp.MustCompile(`(?i)has\s+(?:the\s+)?(.+)`),
	regexp.MustCompile(`(?i)includes?\s+(?:the\s+)?(.+)`),
	regexp.MustCompile(`(?i)formula\s+(.+)`),
	regexp.MustCompile(`(?i)equation\s+(.+)`),
}

// keywordPatterns is the subset used by keyword rules, favoring precise
// multi-word terms over fragmented word-level matching.
var keywordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)contains?\s+(?:the\s+)?(.+)`),
	regexp.MustCompile(`(?i)has\s+(?:the\s+)?(.+)`),
	regexp.MustCompile(`(?i)includes?\s+(?:the\s+)?(.+)`),
	regexp.MustCompile(`(?i)keywords?\s+are\s+(.+)`),
	regexp.MustCompile(`(?i)terms?\s+are\s+(.+)`),
}

func extractPhrases(ruleText string, patterns []*regexp.Regexp) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, re := range patterns {
		m := re.FindStringSubmatch(ruleText)
		if len(m) < 2 {
			continue
		}
		phrase := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(m[1]), ".!?,;:"))
		if phrase == "" {
			continue
		}
		if _, dup := seen[phrase]; dup {
			continue
		}
		seen[phrase] = struct{}{}
		out = append(out, phrase)
	}
	return out
}

// anyPhrasePresent reports whether any candidate phrase appears verbatim
// (case-insensitively) in the answer, and which one.
func anyPhrasePresent(answer string, phrases []string) (string, bool) {
	lower := strings.ToLower(answer)
	for _, p := range phrases {
		if strings.Contains(lower, strings.ToLower(p)) {
			return p, true
		}
	}
	return "", false
}
