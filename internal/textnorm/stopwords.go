package textnorm

// stopWords covers articles, prepositions, auxiliaries and the
// instructional verbs that appear in marking rules ("mentions the
// formula ...") but carry no content of their own.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		// articles, determiners, pronouns
		"the", "and", "for", "are", "but", "not", "you", "all", "can",
		"her", "was", "one", "our", "out", "his", "has", "had", "have",
		"this", "that", "these", "those", "its", "it", "a", "an",
		"any", "some", "such", "own", "same", "other", "each", "every",
		// prepositions, conjunctions
		"about", "into", "through", "during", "before", "after",
		"above", "below", "between", "from", "with", "within",
		"because", "while", "where", "when", "which", "what", "how",
		"why", "who", "whom", "also", "than", "then", "there", "here",
		// auxiliaries and common verbs
		"is", "be", "been", "being", "were", "does", "did", "doing",
		"will", "would", "could", "should", "shall", "may", "might",
		"must", "do", "am",
		// instructional verbs used in rule phrasing
		"mention", "mentions", "mentioned", "contain", "contains",
		"contained", "containing", "include", "includes", "included",
		"including", "explain", "explains", "explained", "describe",
		"describes", "described", "state", "states", "stated", "give",
		"gives", "given", "show", "shows", "shown", "list", "lists",
		"listed", "define", "defines", "defined", "discuss",
		"discusses", "identify", "identifies", "use", "uses", "used",
		// rule scaffolding
		"student", "answer", "keyword", "keywords", "term", "terms",
		"following", "correct", "correctly", "must", "should",
	} {
		stopWords[w] = struct{}{}
	}
}
