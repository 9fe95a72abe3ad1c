package interpreter

import (
	"math"
)

// maxFactorial is the largest n whose factorial fits in a float64.
const maxFactorial = 170

// trigHandler evaluates fn on the first number, read in degrees.
func trigHandler(op Operation, short, name string, fn func(float64) float64) handler {
	return func(text string) Result {
		nums := ExtractNumbers(text)
		if len(nums) == 0 {
			return newResult(op, Zero, "Please provide an angle for "+name)
		}

		degrees := nums[0]
		v := formatClean(fn(degrees * math.Pi / 180))
		return newResult(op, v, short+"("+FormatNumber(degrees)+"°) = "+v)
	}
}

func handleLogarithm(text string) Result {
	nums := ExtractNumbers(text)
	if len(nums) == 0 {
		return newResult(OpLogarithm, Zero, "Please provide a number for logarithm")
	}
	if nums[0] <= 0 {
		return newResult(OpLogarithm, NotANumber, "Logarithm undefined for non-positive numbers")
	}
	v := formatFixed(math.Log10(nums[0]))
	return newResult(OpLogarithm, v, "log("+FormatNumber(nums[0])+") = "+v)
}

func handleNaturalLogarithm(text string) Result {
	nums := ExtractNumbers(text)
	if len(nums) == 0 {
		return newResult(OpNaturalLogarithm, Zero, "Please provide a number for natural logarithm")
	}
	if nums[0] <= 0 {
		return newResult(OpNaturalLogarithm, NotANumber, "Natural logarithm undefined for non-positive numbers")
	}
	v := formatFixed(math.Log(nums[0]))
	return newResult(OpNaturalLogarithm, v, "ln("+FormatNumber(nums[0])+") = "+v)
}

// handleFactorial floors its argument and overflows to ∞ past 170!.
func handleFactorial(text string) Result {
	nums := ExtractNumbers(text)
	if len(nums) == 0 {
		return newResult(OpFactorial, Zero, "Please provide a number for factorial")
	}

	n := math.Floor(nums[0])
	switch {
	case n < 0:
		return newResult(OpFactorial, NotANumber, "Factorial undefined for negative numbers")
	case n > maxFactorial:
		return newResult(OpFactorial, Infinity, "Factorial too large to calculate")
	}

	v := FormatNumber(factorial(int(n)))
	return newResult(OpFactorial, v, FormatNumber(n)+"! = "+v)
}

func factorial(n int) float64 {
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}

// constantHandler reports the constant, or its product with the first number
// when one is present.
func constantHandler(op Operation, symbol string, value float64) handler {
	return func(text string) Result {
		nums := ExtractNumbers(text)
		if len(nums) == 0 {
			v := formatFixed(value)
			return newResult(op, v, symbol+" = "+v)
		}

		v := formatFixed(value * nums[0])
		return newResult(op, v, symbol+" × "+FormatNumber(nums[0])+" = "+v)
	}
}
