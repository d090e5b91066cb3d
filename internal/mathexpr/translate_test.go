package mathexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToSymbolic(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"mass times acceleration", "m * a"},
		{"force equals mass times acceleration", "F = m * a"},
		{"velocity squared", "v **2"},
		{"energy divided by time", "E / t"},
		{"two plus two", "2 + 2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ConvertToSymbolic(tt.in), "input %q", tt.in)
	}
}

func TestConvertToSymbolicLongestPhraseWins(t *testing.T) {
	// "raised to the power of" must not be partially consumed by
	// "raised to"
	got := ConvertToSymbolic("two raised to the power of three")
	assert.Equal(t, "2 ** 3", got)
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "E = m*c**2", NormalizeInput(" E = m×c^2 "))
	assert.Equal(t, "2*pi*r", NormalizeInput("2*π*r"))
	assert.Equal(t, "a - b", NormalizeInput("a − b"))
}

func TestPrepareForParser(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"m*a", "m * a"},
		{"a/b", "a / b"},
		{"2(x)", "2 * (x)"},
		{"(x)2", "(x) * 2"},
		{"x**2", "x**2"},
		{"  a   +   b ", "a + b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PrepareForParser(tt.in), "input %q", tt.in)
	}
}

func TestNewSymbolTableComposesDomains(t *testing.T) {
	st := NewSymbolTable(Operators(), PhraseTable{
		Name:    "custom",
		Entries: map[string]string{"spring constant": "k"},
	})
	assert.Equal(t, "k * x", st.Convert("spring constant times x"))
}
