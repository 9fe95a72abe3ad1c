package interpreter

import (
	"math"
	"regexp"
	"strings"
)

// Confidence grades how sure ParseTokens is about the operator it found.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// maxOperand is the largest magnitude Validate accepts.
const maxOperand = 1e15

// MathTokens is a flat operator-and-operands reading of a phrase.
type MathTokens struct {
	Operator      string     `json:"operator" yaml:"operator"`
	Operands      []float64  `json:"operands" yaml:"operands"`
	RawExpression string     `json:"raw_expression" yaml:"raw_expression"`
	Confidence    Confidence `json:"confidence" yaml:"confidence"`
}

var tokenOperators = []struct {
	pattern    *regexp.Regexp
	operator   string
	word       string
	confidence Confidence
}{
	{regexp.MustCompile(`plus|add|\+`), "+", "plus", ConfidenceHigh},
	{regexp.MustCompile(`minus|subtract|[\d.)]\s*-`), "-", "minus", ConfidenceHigh},
	{regexp.MustCompile(`times|multipl|×|\*`), "*", "times", ConfidenceHigh},
	{regexp.MustCompile(`divide|÷|/`), "/", "divided by", ConfidenceHigh},
	{regexp.MustCompile(`percent|%`), "%", "percent", ConfidenceHigh},
	{regexp.MustCompile(`power|squared|cubed|\^`), "^", "to the power of", ConfidenceMedium},
}

// ParseTokens reads a phrase as one operator applied to two or more
// operands. ok is false when no operator or fewer than two numbers are found.
func ParseTokens(input string) (MathTokens, bool) {
	cleaned := Normalize(ConvertNumberWords(strings.ToLower(input)))

	for _, op := range tokenOperators {
		if !op.pattern.MatchString(cleaned) {
			continue
		}

		operands := ExtractNumbers(cleaned)
		if len(operands) < 2 {
			return MathTokens{}, false
		}
		return MathTokens{
			Operator:      op.operator,
			Operands:      operands,
			RawExpression: cleaned,
			Confidence:    op.confidence,
		}, true
	}
	return MathTokens{}, false
}

// Expression joins the operands with the operator symbol.
func (t MathTokens) Expression() string {
	if t.Operator == "" || len(t.Operands) < 2 {
		return t.RawExpression
	}
	return joinNumbers(t.Operands, " "+t.Operator+" ")
}

// Explain joins the operands with the spoken operator word.
func (t MathTokens) Explain() string {
	if t.Operator == "" {
		return t.RawExpression
	}
	for _, op := range tokenOperators {
		if op.operator == t.Operator {
			return joinNumbers(t.Operands, " "+op.word+" ")
		}
	}
	return joinNumbers(t.Operands, " "+t.Operator+" ")
}

// Validate rejects non-finite or oversized operands and zero divisors.
func (t MathTokens) Validate() bool {
	for _, n := range t.Operands {
		if math.IsNaN(n) || math.IsInf(n, 0) || math.Abs(n) > maxOperand {
			return false
		}
	}
	if t.Operator == "/" {
		for _, d := range t.Operands[min(1, len(t.Operands)):] {
			if d == 0 {
				return false
			}
		}
	}
	return true
}

// Value computes the tokens. "%" reads the first two operands as "a percent
// of b"; every other operator goes through EvalExpression.
func (t MathTokens) Value() (float64, bool) {
	if !t.Validate() || len(t.Operands) < 2 {
		return 0, false
	}
	if t.Operator == "%" {
		v := t.Operands[0] / 100 * t.Operands[1]
		return v, !math.IsInf(v, 0) && !math.IsNaN(v)
	}

	v, err := EvalExpression(t.Expression())
	if err != nil {
		return 0, false
	}
	return v, true
}
