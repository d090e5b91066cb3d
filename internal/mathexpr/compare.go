package mathexpr

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ParseError reports that an input could not be parsed as an expression.
// The Rule Matcher maps it to the semantic fallback path.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

const (
	equivTrials  = 8
	equivEpsilon = 1e-9
)

var identRe = regexp.MustCompile(`\b[a-zA-Z_][a-zA-Z0-9_]*\b`)

// reserved names are bound to constants/functions, never sampled as free
// variables.
var reserved = map[string]struct{}{
	"pi": {}, "sqrt": {}, "abs": {}, "log": {}, "exp": {},
	"sin": {}, "cos": {}, "tan": {},
}

func freeVars(exprs ...string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, e := range exprs {
		for _, id := range identRe.FindAllString(e, -1) {
			if _, ok := reserved[strings.ToLower(id)]; ok {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

func baseEnv() map[string]interface{} {
	return map[string]interface{}{
		"pi":   math.Pi,
		"sqrt": math.Sqrt,
		"abs":  math.Abs,
		"log":  math.Log,
		"exp":  math.Exp,
		"sin":  math.Sin,
		"cos":  math.Cos,
		"tan":  math.Tan,
	}
}

// residual rewrites an equation "lhs = rhs" into the difference
// "(lhs) - (rhs)"; plain expressions pass through. Two equations are
// equivalent iff their residuals are the same function.
func residual(src string) (string, error) {
	parts := strings.Split(src, "=")
	switch len(parts) {
	case 1:
		return src, nil
	case 2:
		l, r := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if l == "" || r == "" {
			return "", fmt.Errorf("dangling equals sign")
		}
		return "(" + l + ") - (" + r + ")", nil
	default:
		return "", fmt.Errorf("multiple equals signs")
	}
}

func compile(src string) (*vm.Program, error) {
	return expr.Compile(src, expr.AllowUndefinedVariables())
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Equivalent tests algebraic equality of two parser-ready expressions by
// evaluating both at deterministically sampled variable assignments. This
// is probabilistic CAS-style equality: identical polynomials agree
// everywhere, distinct ones disagree almost everywhere. Returns a
// *ParseError when either side fails to compile.
func Equivalent(a, b string) (bool, error) {
	ra, err := residual(a)
	if err != nil {
		return false, &ParseError{Input: a, Err: err}
	}
	rb, err := residual(b)
	if err != nil {
		return false, &ParseError{Input: b, Err: err}
	}
	pa, err := compile(ra)
	if err != nil {
		return false, &ParseError{Input: a, Err: err}
	}
	pb, err := compile(rb)
	if err != nil {
		return false, &ParseError{Input: b, Err: err}
	}

	vars := freeVars(ra, rb)
	rng := rand.New(rand.NewSource(42)) // fixed seed: comparisons are pure
	ok := 0
	for trial := 0; trial < equivTrials; trial++ {
		env := baseEnv()
		for _, v := range vars {
			env[v] = 0.5 + 2.0*rng.Float64()
		}
		va, errA := vm.Run(pa, env)
		vb, errB := vm.Run(pb, env)
		if errA != nil || errB != nil {
			// singular point (division by zero etc); try another sample
			continue
		}
		fa, okA := toFloat(va)
		fb, okB := toFloat(vb)
		if !okA || !okB {
			return false, &ParseError{Input: a, Err: fmt.Errorf("non-numeric result")}
		}
		scale := math.Max(1, math.Max(math.Abs(fa), math.Abs(fb)))
		if math.Abs(fa-fb)/scale > equivEpsilon {
			return false, nil
		}
		ok++
	}
	if ok == 0 {
		return false, &ParseError{Input: a, Err: fmt.Errorf("no evaluable sample points")}
	}
	return true, nil
}

var stripSpaceRe = regexp.MustCompile(`\s+`)

// Compare checks whether a rule's expression and a student's expression
// are mathematically equivalent. Description-like inputs are rejected
// outright. On parse failure it degrades to a whitespace- and
// case-insensitive comparison of the prepared strings; if that also fails
// the returned *ParseError signals the caller to fall back to semantic
// matching. Score is binary: math rules earn full credit or none.
func Compare(ruleText, studentText string) (bool, float64, error) {
	if IsDescription(ruleText) || IsDescription(studentText) {
		return false, 0, nil
	}
	rulePrep := Translate(ruleText)
	studentPrep := Translate(studentText)

	eq, err := Equivalent(rulePrep, studentPrep)
	if err == nil {
		if eq {
			return true, 1.0, nil
		}
		return false, 0, nil
	}

	// string fallback over the prepared forms
	rs := strings.ToLower(stripSpaceRe.ReplaceAllString(rulePrep, ""))
	ss := strings.ToLower(stripSpaceRe.ReplaceAllString(studentPrep, ""))
	if rs != "" && rs == ss {
		return true, 1.0, nil
	}
	return false, 0, err
}
