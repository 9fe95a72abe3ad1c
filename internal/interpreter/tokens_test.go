package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokens(t *testing.T) {
	tok, ok := ParseTokens("What is 25 times 4?")
	require.True(t, ok)
	assert.Equal(t, MathTokens{
		Operator:      "*",
		Operands:      []float64{25, 4},
		RawExpression: "25 times 4?",
		Confidence:    ConfidenceHigh,
	}, tok)
	assert.Equal(t, "25 * 4", tok.Expression())
	assert.Equal(t, "25 times 4", tok.Explain())
	assert.True(t, tok.Validate())

	v, ok := tok.Value()
	require.True(t, ok)
	assert.Equal(t, 100.0, v)
}

func TestParseTokensOperators(t *testing.T) {
	tests := []struct {
		input      string
		operator   string
		confidence Confidence
		explain    string
		value      float64
	}{
		{"five plus three", "+", ConfidenceHigh, "5 plus 3", 8},
		{"10 - 4", "-", ConfidenceHigh, "10 minus 4", 6},
		{"12 divided by 4", "/", ConfidenceHigh, "12 divided by 4", 3},
		{"20 percent of 50", "%", ConfidenceHigh, "20 percent 50", 10},
		{"2 to the power of 8", "^", ConfidenceMedium, "2 to the power of 8", 256},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok, ok := ParseTokens(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.operator, tok.Operator)
			assert.Equal(t, tt.confidence, tok.Confidence)
			assert.Equal(t, tt.explain, tok.Explain())

			v, ok := tok.Value()
			require.True(t, ok)
			assert.InDelta(t, tt.value, v, 1e-9)
		})
	}
}

func TestParseTokensRejects(t *testing.T) {
	for _, input := range []string{"", "five", "add 5", "hello world", "4 and 5"} {
		_, ok := ParseTokens(input)
		assert.False(t, ok, input)
	}
}

func TestMathTokensValidate(t *testing.T) {
	div, ok := ParseTokens("divide 10 by 0")
	require.True(t, ok)
	assert.False(t, div.Validate())
	_, ok = div.Value()
	assert.False(t, ok)

	big := MathTokens{Operator: "+", Operands: []float64{1e16, 1}}
	assert.False(t, big.Validate())

	zeroFirst := MathTokens{Operator: "/", Operands: []float64{0, 5}}
	assert.True(t, zeroFirst.Validate())
}

func TestMathTokensExpressionWithoutOperator(t *testing.T) {
	tok := MathTokens{RawExpression: "just words"}
	assert.Equal(t, "just words", tok.Expression())
	assert.Equal(t, "just words", tok.Explain())
}
