package interpreter

import "strings"

var spokenSymbols = strings.NewReplacer(
	"×", " times ",
	"*", " times ",
	"÷", " divided by ",
	"/", " divided by ",
	"+", " plus ",
	" - ", " minus ",
	"^", " to the power of ",
	"√", " square root of ",
	"°", " degrees",
	"=", " equals ",
	"π", " pi ",
	"²", " squared",
	"³", " cubed",
	"%", " percent",
	"(", " ",
	")", " ",
)

// SpeechText renders a result as a sentence for a speech synthesizer:
// symbols in the explanation are spoken as words and the value is repeated
// at the end.
func SpeechText(r Result) string {
	explanation := strings.Join(strings.Fields(spokenSymbols.Replace(r.Explanation)), " ")
	explanation = strings.TrimSuffix(explanation, ".")

	answer := "The answer is " + spokenValue(r.Value) + "."
	if explanation == "" {
		return answer
	}
	return explanation + ". " + answer
}

func spokenValue(v string) string {
	switch v {
	case Infinity:
		return "infinity"
	case "-" + Infinity:
		return "negative infinity"
	case NotANumber:
		return "not a number"
	case ErrorValue:
		return "an error"
	}
	if rest, ok := strings.CutPrefix(v, "-"); ok {
		return "minus " + rest
	}
	return v
}
