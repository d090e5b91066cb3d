package mathexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMathExpression(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain equation", "F = ma", true},
		{"spelled operators", "force equals mass times acceleration", true},
		{"numeric expression", "3 + 4 * 2", true},
		{"variable pattern", "v = d/t", true},
		{"exponent", "E = mc^2", true},
		{"description with formula word", "the formula for kinetic energy", false},
		{"rate law description", "rate law = k[A][B]", false},
		{"derivative description", "the derivative of position", false},
		{"prose", "explains the relationship between force and acceleration", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMathExpression(tt.text))
		})
	}
}

func TestIsMathExpressionDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.True(t, IsMathExpression("F = ma"))
		assert.False(t, IsMathExpression("the formula for kinetic energy"))
	}
}

func TestIsDescription(t *testing.T) {
	assert.True(t, IsDescription("formula for momentum"))
	assert.True(t, IsDescription("the sum of internal angles"))
	assert.True(t, IsDescription("Pythagorean theorem"))
	assert.False(t, IsDescription("F = ma"))
}
