package interpreter

import (
	"math"

	"voice-calculator/internal/units"
)

type handler func(text string) Result

var handlers = map[Operation]handler{
	OpConversion:       handleConversion,
	OpAddition:         handleAddition,
	OpSubtraction:      handleSubtraction,
	OpMultiplication:   handleMultiplication,
	OpDivision:         handleDivision,
	OpPower:            handlePower,
	OpSquareRoot:       handleSquareRoot,
	OpSine:             trigHandler(OpSine, "sin", "sine", math.Sin),
	OpCosine:           trigHandler(OpCosine, "cos", "cosine", math.Cos),
	OpTangent:          trigHandler(OpTangent, "tan", "tangent", math.Tan),
	OpNaturalLogarithm: handleNaturalLogarithm,
	OpLogarithm:        handleLogarithm,
	OpFactorial:        handleFactorial,
	OpPi:               constantHandler(OpPi, "π", math.Pi),
	OpEuler:            constantHandler(OpEuler, "e", math.E),
	OpPercentage:       handlePercentage,
	OpFallback:         handleFallback,
}

// fold combines operands left to right, seeding with the first one.
func fold(op Operation, text, symbol, verb string, combine func(acc, x float64) float64) Result {
	nums := ExtractNumbers(text)
	switch len(nums) {
	case 0:
		return newResult(op, Zero, "Please provide numbers to "+verb)
	case 1:
		return single(op, nums[0])
	}

	acc := nums[0]
	for _, n := range nums[1:] {
		acc = combine(acc, n)
	}
	v := FormatNumber(acc)
	return newResult(op, v, joinNumbers(nums, symbol)+" = "+v)
}

func single(op Operation, n float64) Result {
	v := FormatNumber(n)
	return newResult(op, v, "Number: "+v)
}

func handleAddition(text string) Result {
	return fold(OpAddition, text, " + ", "add", func(a, b float64) float64 { return a + b })
}

func handleSubtraction(text string) Result {
	return fold(OpSubtraction, text, " - ", "subtract", func(a, b float64) float64 { return a - b })
}

func handleMultiplication(text string) Result {
	return fold(OpMultiplication, text, " × ", "multiply", func(a, b float64) float64 { return a * b })
}

func handleDivision(text string) Result {
	nums := ExtractNumbers(text)
	for _, d := range nums[min(1, len(nums)):] {
		if d == 0 {
			return newResult(OpDivision, Infinity, "Cannot divide by zero")
		}
	}
	return fold(OpDivision, text, " ÷ ", "divide", func(a, b float64) float64 { return a / b })
}

// handlePower reads "n squared" and "n cubed" before the general
// "base to the power of exponent" form.
func handlePower(text string) Result {
	nums := ExtractNumbers(text)
	if len(nums) == 0 {
		return newResult(OpPower, Zero, "Please provide numbers for power calculation")
	}

	cue := withoutSquareRoot(text)
	base := FormatNumber(nums[0])
	switch {
	case squaredPattern.MatchString(cue):
		v := formatWhole(nums[0] * nums[0])
		return newResult(OpPower, v, base+"² = "+v)
	case cubedPattern.MatchString(cue):
		v := formatWhole(nums[0] * nums[0] * nums[0])
		return newResult(OpPower, v, base+"³ = "+v)
	case len(nums) >= 2:
		v := formatWhole(math.Pow(nums[0], nums[1]))
		return newResult(OpPower, v, base+"^"+FormatNumber(nums[1])+" = "+v)
	}
	return single(OpPower, nums[0])
}

func handleSquareRoot(text string) Result {
	nums := ExtractNumbers(text)
	if len(nums) == 0 {
		return newResult(OpSquareRoot, Zero, "Please provide a number for square root")
	}
	if nums[0] < 0 {
		return newResult(OpSquareRoot, NotANumber, "Cannot take square root of negative number")
	}
	v := formatWhole(math.Sqrt(nums[0]))
	return newResult(OpSquareRoot, v, "√"+FormatNumber(nums[0])+" = "+v)
}

// handlePercentage reads "a percent of b" as (a/100)*b and a lone "a
// percent" as a/100.
func handlePercentage(text string) Result {
	nums := ExtractNumbers(text)
	switch len(nums) {
	case 0:
		return newResult(OpPercentage, Zero, "Please provide numbers for percentage calculation")
	case 1:
		v := FormatNumber(nums[0] / 100)
		return newResult(OpPercentage, v, FormatNumber(nums[0])+"% = "+v)
	}
	v := FormatNumber(nums[0] / 100 * nums[1])
	return newResult(OpPercentage, v, FormatNumber(nums[0])+"% of "+FormatNumber(nums[1])+" = "+v)
}

func handleConversion(text string) Result {
	spec, ok := units.ParsePhrase(text)
	if !ok {
		return newResult(OpConversion, Zero, "Please specify valid units for conversion")
	}
	conv, ok := units.Convert(spec)
	if !ok {
		return newResult(OpConversion, Zero, "Please specify valid units for conversion")
	}
	return newResult(OpConversion, FormatNumber(conv.Value), conv.Explanation)
}

// handleFallback tries the text as a plain arithmetic expression, then sums
// every number it can find.
func handleFallback(text string) Result {
	if expr, ok := CleanExpression(text); ok {
		if v, err := EvalExpression(expr); err == nil {
			s := FormatNumber(v)
			return newResult(OpExpression, s, expr+" = "+s)
		}
	}

	nums := ExtractNumbers(text)
	switch len(nums) {
	case 0:
		return newResult(OpUnrecognized, Zero, "No numbers found in input")
	case 1:
		return single(OpSum, nums[0])
	}

	var sum float64
	for _, n := range nums {
		sum += n
	}
	v := FormatNumber(sum)
	return newResult(OpSum, v, "Sum of numbers: "+joinNumbers(nums, " + ")+" = "+v)
}
