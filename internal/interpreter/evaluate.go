package interpreter

import "strings"

// Evaluate interprets a spoken or typed phrase. It never fails: unusable
// input yields a Result for which Unrecognized reports true.
func Evaluate(input string) Result {
	text := Normalize(ConvertNumberWords(strings.ToLower(input)))
	return Dispatch(Classify(text), text)
}

// Dispatch runs the handler for op on already normalized text.
func Dispatch(op Operation, text string) Result {
	h, ok := handlers[op]
	if !ok {
		h = handleFallback
	}
	return h(text)
}
