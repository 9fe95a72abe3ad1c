package interpreter

import (
	"math"
	"regexp"
	"strings"
)

// Tool names reported by MathTools.
const (
	ToolFactorial   = "factorial"
	ToolCombination = "combination"
	ToolPermutation = "permutation"
	ToolAdvanced    = "advanced"
	ToolBasic       = "basic"
)

// maxExactFactorial keeps combinatorics results exact in a float64.
const maxExactFactorial = 20

var (
	toolFactorialPattern   = regexp.MustCompile(`factorial`)
	toolCombinationPattern = regexp.MustCompile(`combination|choose`)
	toolPermutationPattern = regexp.MustCompile(`permutation`)
	toolDerivativePattern  = regexp.MustCompile(`derivative`)
	toolIntegralPattern    = regexp.MustCompile(`integral`)
)

// MathTools is the strict combinatorics tool set. Unlike Evaluate it reports
// out-of-range input as "Error" and caps factorials at 20!.
func MathTools(input string) Result {
	text := ConvertNumberWords(strings.ToLower(strings.TrimSpace(input)))

	switch {
	case toolFactorialPattern.MatchString(text):
		return toolFactorial(text)
	case toolCombinationPattern.MatchString(text):
		return toolChoose(text, ToolCombination, "C", combinations)
	case toolPermutationPattern.MatchString(text):
		return toolChoose(text, ToolPermutation, "P", permutations)
	case toolDerivativePattern.MatchString(text):
		return toolResult(ToolAdvanced, ErrorValue, "Derivative calculations require symbolic math")
	case toolIntegralPattern.MatchString(text):
		return toolResult(ToolAdvanced, ErrorValue, "Integral calculations require symbolic math")
	}
	return toolResult(ToolBasic, ErrorValue, "Advanced calculation not supported in local mode")
}

func toolResult(tool, value, explanation string) Result {
	return Result{Value: value, Explanation: explanation, Tool: tool}
}

func toolFactorial(text string) Result {
	nums := ExtractNumbers(text)
	if len(nums) == 0 {
		return toolResult(ToolFactorial, ErrorValue, "Please provide a number for factorial")
	}

	n := math.Floor(nums[0])
	switch {
	case n < 0:
		return toolResult(ToolFactorial, ErrorValue, "Factorial of negative numbers is undefined")
	case n > maxExactFactorial:
		return toolResult(ToolFactorial, ErrorValue, "Factorial too large (max 20)")
	}

	v := FormatNumber(factorial(int(n)))
	return toolResult(ToolFactorial, v, FormatNumber(n)+"! = "+v)
}

func toolChoose(text, tool, symbol string, fn func(n, r int) float64) Result {
	nums := ExtractNumbers(text)
	if len(nums) < 2 {
		return toolResult(tool, ErrorValue, "Please provide n and r for "+tool)
	}

	n, r := math.Floor(nums[0]), math.Floor(nums[1])
	if r > n || r < 0 || n < 0 || n > maxFactorial {
		return toolResult(tool, ErrorValue, "Invalid "+tool+" parameters")
	}

	v := FormatNumber(fn(int(n), int(r)))
	return toolResult(tool, v, symbol+"("+FormatNumber(n)+","+FormatNumber(r)+") = "+v)
}

// combinations computes n!/(r!(n-r)!) as a running product so intermediate
// values stay small.
func combinations(n, r int) float64 {
	r = min(r, n-r)
	result := 1.0
	for i := 1; i <= r; i++ {
		result = result * float64(n-r+i) / float64(i)
	}
	return math.Round(result)
}

// permutations computes n!/(n-r)!.
func permutations(n, r int) float64 {
	result := 1.0
	for i := n - r + 1; i <= n; i++ {
		result *= float64(i)
	}
	return result
}
