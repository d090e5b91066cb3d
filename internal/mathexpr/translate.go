package mathexpr

import (
	"regexp"
	"strings"
)

// ConvertToSymbolic replaces natural-language phrases with symbolic tokens
// ("mass times acceleration" -> "m * a") using the default table.
func ConvertToSymbolic(text string) string {
	return DefaultTable().Convert(text)
}

func (t *SymbolTable) Convert(text string) string {
	for _, e := range t.entries {
		text = e.re.ReplaceAllString(text, e.symbol)
	}
	return text
}

// NormalizeInput cleans up glyph variants ahead of parsing: caret
// exponents, unicode multiplication/minus signs, the pi glyph.
func NormalizeInput(text string) string {
	r := strings.NewReplacer(
		"^", "**",
		"×", "*",
		"−", "-",
		"π", "pi",
	)
	return strings.TrimSpace(r.Replace(text))
}

var (
	spaceRe    = regexp.MustCompile(`\s+`)
	mulRe      = regexp.MustCompile(`([a-zA-Z0-9])\*([a-zA-Z0-9])`)
	divRe      = regexp.MustCompile(`([a-zA-Z0-9])/([a-zA-Z0-9])`)
	plusRe     = regexp.MustCompile(`([a-zA-Z0-9])\+([a-zA-Z0-9])`)
	minusRe    = regexp.MustCompile(`([a-zA-Z0-9])-([a-zA-Z0-9])`)
	openParRe  = regexp.MustCompile(`([a-zA-Z0-9])\(`)
	closeParRe = regexp.MustCompile(`\)([a-zA-Z0-9])`)
)

// PrepareForParser inserts unambiguous operator spacing and makes implicit
// multiplication explicit ("2(x)" -> "2 * (x)"), which expression parsers
// require.
func PrepareForParser(expr string) string {
	expr = spaceRe.ReplaceAllString(strings.TrimSpace(expr), " ")
	expr = mulRe.ReplaceAllString(expr, "$1 * $2")
	expr = divRe.ReplaceAllString(expr, "$1 / $2")
	expr = plusRe.ReplaceAllString(expr, "$1 + $2")
	expr = minusRe.ReplaceAllString(expr, "$1 - $2")
	expr = openParRe.ReplaceAllString(expr, "$1 * (")
	expr = closeParRe.ReplaceAllString(expr, ") * $1")
	return expr
}

// Translate runs the full text -> parser-ready pipeline.
func Translate(text string) string {
	return PrepareForParser(NormalizeInput(ConvertToSymbolic(text)))
}
