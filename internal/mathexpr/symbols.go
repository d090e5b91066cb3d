package mathexpr

import (
	"regexp"
	"sort"
	"sync"
)

// PhraseTable is one named vocabulary of natural-language phrase ->
// symbolic token mappings. Tables are composed into a SymbolTable at
// construction time; adding a domain means adding a table, not touching
// the matching logic.
type PhraseTable struct {
	Name    string
	Entries map[string]string
}

func Operators() PhraseTable {
	return PhraseTable{Name: "operators", Entries: map[string]string{
		"is equal to":            "=",
		"equal to":               "=",
		"equals":                 "=",
		"multiplied by":          "*",
		"times":                  "*",
		"divided by":             "/",
		"over":                   "/",
		"plus":                   "+",
		"minus":                  "-",
		"squared":                "**2",
		"square":                 "**2",
		"cubed":                  "**3",
		"cube":                   "**3",
		"raised to the power of": "**",
		"raised to the power":    "**",
		"raised to the":          "**",
		"raised to":              "**",
	}}
}

func Numbers() PhraseTable {
	return PhraseTable{Name: "numbers", Entries: map[string]string{
		"zero": "0", "one": "1", "two": "2", "three": "3", "four": "4",
		"five": "5", "six": "6", "seven": "7", "eight": "8", "nine": "9",
		"ten": "10", "one half": "1/2", "one third": "1/3",
		"one quarter": "1/4",
	}}
}

func Physics() PhraseTable {
	return PhraseTable{Name: "physics", Entries: map[string]string{
		"force":                      "F",
		"net force":                  "F",
		"mass":                       "m",
		"acceleration":               "a",
		"velocity":                   "v",
		"speed":                      "v",
		"distance":                   "d",
		"displacement":               "d",
		"time":                       "t",
		"energy":                     "E",
		"kinetic energy":             "KE",
		"potential energy":           "PE",
		"work":                       "W",
		"power":                      "P",
		"momentum":                   "p",
		"height":                     "h",
		"gravitational acceleration": "g",
		"speed of light":             "c",
		"wavelength":                 "lambda",
		"frequency":                  "f",
		"voltage":                    "V",
		"current":                    "I",
		"resistance":                 "R",
	}}
}

func Chemistry() PhraseTable {
	return PhraseTable{Name: "chemistry", Entries: map[string]string{
		"number of moles": "n",
		"moles":           "n",
		"molarity":        "M",
		"volume":          "V",
		"pressure":        "P",
		"temperature":     "T",
		"gas constant":    "R",
		"rate constant":   "k",
		"concentration":   "c",
		"avogadro number": "NA",
	}}
}

func Greek() PhraseTable {
	return PhraseTable{Name: "greek", Entries: map[string]string{
		"alpha": "alpha", "beta": "beta", "gamma": "gamma",
		"delta": "delta", "theta": "theta", "lambda": "lambda",
		"mu": "mu", "pi": "pi", "rho": "rho", "sigma": "sigma",
		"omega": "omega", "phi": "phi",
	}}
}

func MathVocab() PhraseTable {
	return PhraseTable{Name: "math", Entries: map[string]string{
		"square root of":    "sqrt",
		"absolute value of": "abs",
		"natural log of":    "log",
		"log of":            "log",
	}}
}

type symbolEntry struct {
	re     *regexp.Regexp
	symbol string
}

// SymbolTable is the merged, longest-phrase-first substitution table.
type SymbolTable struct {
	entries []symbolEntry
}

// NewSymbolTable composes phrase tables into one lookup. Later tables win
// on duplicate phrases; longer phrases are always substituted before their
// prefixes ("raised to the power of" before "raised to").
func NewSymbolTable(tables ...PhraseTable) *SymbolTable {
	merged := map[string]string{}
	for _, t := range tables {
		for phrase, sym := range t.Entries {
			merged[phrase] = sym
		}
	}
	phrases := make([]string, 0, len(merged))
	for p := range merged {
		phrases = append(phrases, p)
	}
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return phrases[i] < phrases[j]
	})
	st := &SymbolTable{}
	for _, p := range phrases {
		st.entries = append(st.entries, symbolEntry{
			re:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p) + `\b`),
			symbol: merged[p],
		})
	}
	return st
}

var (
	defaultTableOnce sync.Once
	defaultTable     *SymbolTable
)

// DefaultTable returns the process-wide table covering all built-in
// domains.
func DefaultTable() *SymbolTable {
	defaultTableOnce.Do(func() {
		defaultTable = NewSymbolTable(
			Operators(), Numbers(), Physics(), Chemistry(), Greek(), MathVocab(),
		)
	})
	return defaultTable
}
