package interpreter

import (
	"regexp"

	"voice-calculator/internal/units"
)

// Operation names the handler chosen for a phrase.
type Operation int

const (
	OpUnrecognized Operation = iota
	OpConversion
	OpAddition
	OpSubtraction
	OpMultiplication
	OpDivision
	OpPower
	OpSquareRoot
	OpSine
	OpCosine
	OpTangent
	OpNaturalLogarithm
	OpLogarithm
	OpFactorial
	OpPi
	OpEuler
	OpPercentage
	OpFallback
	OpExpression
	OpSum
)

var operationNames = [...]string{
	OpUnrecognized:     "unrecognized",
	OpConversion:       "unit_conversion",
	OpAddition:         "addition",
	OpSubtraction:      "subtraction",
	OpMultiplication:   "multiplication",
	OpDivision:         "division",
	OpPower:            "power",
	OpSquareRoot:       "square_root",
	OpSine:             "sine",
	OpCosine:           "cosine",
	OpTangent:          "tangent",
	OpNaturalLogarithm: "natural_logarithm",
	OpLogarithm:        "logarithm",
	OpFactorial:        "factorial",
	OpPi:               "pi",
	OpEuler:            "euler",
	OpPercentage:       "percentage",
	OpFallback:         "fallback",
	OpExpression:       "expression",
	OpSum:              "sum",
}

// String returns the tool name reported in Result.Tool.
func (op Operation) String() string {
	if op < 0 || int(op) >= len(operationNames) {
		return operationNames[OpUnrecognized]
	}
	return operationNames[op]
}

var (
	additionPattern       = regexp.MustCompile(`\bplus\b|\badd(?:s|ed|ing|ition)?\b|\+`)
	subtractionPattern    = regexp.MustCompile(`\bminus\b|\bsubtract(?:s|ed|ing|ion)?\b|[\d.)]\s*-`)
	multiplicationPattern = regexp.MustCompile(`\btimes\b|\bmultipl(?:y|ied|ies|ying|ication)\b|×|\*`)
	divisionPattern       = regexp.MustCompile(`\bdivid(?:e|ed|es|ing)\b|\bdivision\b|÷|/`)
	squareRootPattern     = regexp.MustCompile(`\bsquare roots?\b|\bsqrt\b|√`)
	squaredPattern        = regexp.MustCompile(`\bsquared?\b|²`)
	cubedPattern          = regexp.MustCompile(`\bcube[ds]?\b|³`)
	powerPattern          = regexp.MustCompile(`\bpower\b|\^`)
	sinePattern           = regexp.MustCompile(`\bsine?\b`)
	cosinePattern         = regexp.MustCompile(`\bcos(?:ine)?\b`)
	tangentPattern        = regexp.MustCompile(`\btan(?:gent)?\b`)
	naturalLogPattern     = regexp.MustCompile(`\bnatural log(?:arithm)?\b|\bln\b`)
	logPattern            = regexp.MustCompile(`\blog(?:arithm|10)?\b`)
	factorialPattern      = regexp.MustCompile(`\bfactorial\b|!`)
	piPattern             = regexp.MustCompile(`\bpi\b|π`)
	eulerPattern          = regexp.MustCompile(`\beuler'?s?\b|\be\b`)
	percentPattern        = regexp.MustCompile(`\bpercent(?:age)?\b|%`)
)

type rule struct {
	op    Operation
	match func(string) bool
}

// rules are evaluated in order and the first match wins. Operator words
// come before function words. Conversion phrases come first of all because
// unit names such as "km/h" contain operator symbols.
var rules = []rule{
	{OpConversion, units.IsPhrase},
	{OpAddition, additionPattern.MatchString},
	{OpSubtraction, subtractionPattern.MatchString},
	{OpMultiplication, multiplicationPattern.MatchString},
	{OpDivision, divisionPattern.MatchString},
	{OpPower, isPower},
	{OpSquareRoot, squareRootPattern.MatchString},
	{OpSine, sinePattern.MatchString},
	{OpCosine, cosinePattern.MatchString},
	{OpTangent, tangentPattern.MatchString},
	{OpNaturalLogarithm, naturalLogPattern.MatchString},
	{OpLogarithm, logPattern.MatchString},
	{OpFactorial, factorialPattern.MatchString},
	{OpPi, piPattern.MatchString},
	{OpEuler, eulerPattern.MatchString},
	{OpPercentage, percentPattern.MatchString},
}

// Classify picks the operation for a normalized phrase. Phrases matching no
// rule get OpFallback.
func Classify(normalized string) Operation {
	for _, r := range rules {
		if r.match(normalized) {
			return r.op
		}
	}
	return OpFallback
}

// withoutSquareRoot hides "square root" so its "square" is not read as a
// power cue.
func withoutSquareRoot(text string) string {
	return squareRootPattern.ReplaceAllString(text, " ")
}

func isPower(text string) bool {
	text = withoutSquareRoot(text)
	return squaredPattern.MatchString(text) || cubedPattern.MatchString(text) || powerPattern.MatchString(text)
}
