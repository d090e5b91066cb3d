package mathexpr

import "regexp"

// descriptionRes match rule texts that talk ABOUT a formula without
// containing one ("the formula for kinetic energy", "rate law", ...).
// These must never be routed into the expression parser, even when they
// also contain operator characters.
var descriptionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(formula for|equation for|formula of|equation of)\b`),
	regexp.MustCompile(`(?i)\b(change in|difference in|sum of|product of)\b`),
	regexp.MustCompile(`(?i)\b(rate law|theorem|law|principle)\b`),
	regexp.MustCompile(`(?i)\b(integral of|derivative of|limit of)\b`),
	regexp.MustCompile(`(?i)\bcould not parse\b`),
}

var (
	operatorRe     = regexp.MustCompile(`[=+\-*/^]`)
	mathSymbolRe   = regexp.MustCompile(`[=^*/π+\-]`)
	eqKeywordRe    = regexp.MustCompile(`(?i)\b(equals|times|divided|squared|cubed)\b`)
	formulaWordRe  = regexp.MustCompile(`(?i)\b(formula|equation)\b`)
	explainWordRe  = regexp.MustCompile(`(?i)\b(explains|describes|what|how|why|for|of)\b`)
	numberOpRe     = regexp.MustCompile(`\d+\s*[+\-*/^]\s*\d+`)
	variableOpRe   = regexp.MustCompile(`\b[a-zA-Z]\s*[=+\-*/]\s*[a-zA-Z0-9]`)
	mathPhraseRe   = regexp.MustCompile(`(?i)\b(equals|times|divided by|plus|minus|multiplied by)\b`)
)

// IsDescription reports whether text describes a formula rather than
// stating one.
func IsDescription(text string) bool {
	for _, re := range descriptionRes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// IsMathExpression classifies text as a symbolic/numeric expression versus
// prose. Descriptions lose outright; otherwise the text needs at least one
// operator character plus one corroborating signal. The conservative
// AND keeps rules like "the formula for kinetic energy" out of the parser.
func IsMathExpression(text string) bool {
	if IsDescription(text) {
		return false
	}
	if !operatorRe.MatchString(text) {
		return false
	}
	if mathSymbolRe.MatchString(text) {
		return true
	}
	if eqKeywordRe.MatchString(text) || mathPhraseRe.MatchString(text) {
		return true
	}
	if formulaWordRe.MatchString(text) && !explainWordRe.MatchString(text) {
		return true
	}
	if numberOpRe.MatchString(text) || variableOpRe.MatchString(text) {
		return true
	}
	return false
}
