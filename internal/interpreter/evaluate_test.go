package interpreter

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input string
		want  Result
	}{
		{"What is 25 times 4?", Result{"100", "25 × 4 = 100", "multiplication"}},
		{"Convert 5 feet to meters", Result{"1.524", "5 Feet is approximately 1.524 Meters", "unit_conversion"}},
		{"convert 5 furlongs to meters", Result{"0", "Please specify valid units for conversion", "unit_conversion"}},
		{"sine of 30 degrees", Result{"0.5", "sin(30°) = 0.5", "sine"}},
		{"cos 90", Result{"0", "cos(90°) = 0", "cosine"}},
		{"tan 45", Result{"1", "tan(45°) = 1", "tangent"}},
		{"10-4", Result{"6", "10 - 4 = 6", "subtraction"}},
		{"subtract 4 from 10 and 3", Result{"-9", "4 - 10 - 3 = -9", "subtraction"}},
		{"divide 10 by 0", Result{"∞", "Cannot divide by zero", "division"}},
		{"divide 10 by 4", Result{"2.5", "10 ÷ 4 = 2.5", "division"}},
		{"square root of -4", Result{"NaN", "Cannot take square root of negative number", "square_root"}},
		{"square root of negative 4", Result{"NaN", "Cannot take square root of negative number", "square_root"}},
		{"log of negative 5", Result{"NaN", "Logarithm undefined for non-positive numbers", "logarithm"}},
		{"factorial of negative 3", Result{"NaN", "Factorial undefined for negative numbers", "factorial"}},
		{"10 minus negative 3", Result{"13", "10 - -3 = 13", "subtraction"}},
		{"09 apples - 3", Result{"6", "9 - 3 = 6", "expression"}},
		{"square root of 16", Result{"4", "√16 = 4", "square_root"}},
		{"square root of 2", Result{"1.414214", "√2 = 1.414214", "square_root"}},
		{"five squared", Result{"25", "5² = 25", "power"}},
		{"3 cubed", Result{"27", "3³ = 27", "power"}},
		{"2 to the power of 10", Result{"1024", "2^10 = 1024", "power"}},
		{"power", Result{"0", "Please provide numbers for power calculation", "power"}},
		{"log of 100", Result{"2.000000", "log(100) = 2.000000", "logarithm"}},
		{"log of 0", Result{"NaN", "Logarithm undefined for non-positive numbers", "logarithm"}},
		{"natural log of 1", Result{"0.000000", "ln(1) = 0.000000", "natural_logarithm"}},
		{"ln of -1", Result{"NaN", "Natural logarithm undefined for non-positive numbers", "natural_logarithm"}},
		{"factorial of 5", Result{"120", "5! = 120", "factorial"}},
		{"5.7!", Result{"120", "5! = 120", "factorial"}},
		{"factorial of -3", Result{"NaN", "Factorial undefined for negative numbers", "factorial"}},
		{"factorial of 171", Result{"∞", "Factorial too large to calculate", "factorial"}},
		{"pi", Result{"3.141593", "π = 3.141593", "pi"}},
		{"2 pi", Result{"6.283185", "π × 2 = 6.283185", "pi"}},
		{"pi times 2", Result{"2", "Number: 2", "multiplication"}},
		{"e", Result{"2.718282", "e = 2.718282", "euler"}},
		{"20 percent of 50", Result{"10", "20% of 50 = 10", "percentage"}},
		{"15 percent", Result{"0.15", "15% = 0.15", "percentage"}},
		{"add", Result{"0", "Please provide numbers to add", "addition"}},
		{"add 7", Result{"7", "Number: 7", "addition"}},
		{"twenty five plus seventeen", Result{"42", "25 + 17 = 42", "addition"}},
		{"5 and 10", Result{"15", "Sum of numbers: 5 + 10 = 15", "sum"}},
		{"just 42", Result{"42", "Number: 42", "sum"}},
		{"hello there", Result{"0", "No numbers found in input", "unrecognized"}},
		{"", Result{"0", "No numbers found in input", "unrecognized"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.input))
		})
	}
}

func TestEvaluateAddition(t *testing.T) {
	pairs := [][2]int{{0, 0}, {1, 2}, {25, 17}, {-3, 5}, {3, -5}, {1000000, 999999}, {7, 7}}

	for _, p := range pairs {
		input := fmt.Sprintf("what is %d plus %d", p[0], p[1])
		t.Run(input, func(t *testing.T) {
			got := Evaluate(input)
			assert.Equal(t, strconv.Itoa(p[0]+p[1]), got.Value)
		})
	}
}

func TestEvaluateFactorialBoundary(t *testing.T) {
	got := Evaluate("factorial of 170")
	require.False(t, got.Sentinel())
	v, err := strconv.ParseFloat(got.Value, 64)
	require.NoError(t, err)
	assert.InEpsilon(t, 7.257415615307994e306, v, 1e-12)

	assert.Equal(t, Infinity, Evaluate("factorial of 171").Value)
}

func TestDispatchFallbackExpression(t *testing.T) {
	got := Dispatch(OpFallback, "(2 + 3) * 4")
	assert.Equal(t, Result{"20", "(2 + 3) * 4 = 20", "expression"}, got)

	got = Dispatch(OpFallback, "what about (1 + 1) ^ 3 apples")
	assert.Equal(t, "8", got.Value)
	assert.Equal(t, "expression", got.Tool)

	// Unparseable expressions drop to the sum of numbers.
	got = Dispatch(OpFallback, "5 3 +")
	assert.Equal(t, Result{"8", "Sum of numbers: 5 + 3 = 8", "sum"}, got)
}

func TestResultSentinel(t *testing.T) {
	assert.True(t, Result{Value: Infinity}.Sentinel())
	assert.True(t, Result{Value: "-" + Infinity}.Sentinel())
	assert.True(t, Result{Value: NotANumber}.Sentinel())
	assert.True(t, Result{Value: ErrorValue}.Sentinel())
	assert.True(t, Result{Value: Zero, Tool: "unrecognized"}.Sentinel())
	assert.False(t, Result{Value: Zero, Tool: "addition"}.Sentinel())
	assert.False(t, Result{Value: "42", Tool: "sum"}.Unrecognized())
}
