package interpreter

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// fillerPattern matches politeness and question words that carry no
// arithmetic meaning. Longer phrases come first so "what's" wins over "what".
var fillerPattern = regexp.MustCompile(`\b(?:can you|could you|tell me|show me|give me|what's|what|is|are|the|an|a|please|calculate|compute|find|solve)\b`)

// numberPattern matches signed or unsigned decimal numerals.
var numberPattern = regexp.MustCompile(`-?\d+\.?\d*|\d*\.?\d+`)

// Normalize lowercases the phrase, strips filler words, collapses
// immediately repeated words and squeezes whitespace. The steps repeat until
// the text stops changing, which makes Normalize idempotent.
//
// Repeated-word collapsing is blunt: "5 5" becomes "5".
func Normalize(input string) string {
	s := input
	for {
		next := normalizeOnce(s)
		if next == s {
			return next
		}
		s = next
	}
}

func normalizeOnce(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = fillerPattern.ReplaceAllString(s, "")

	fields := strings.Fields(s)
	out := fields[:0]
	for _, f := range fields {
		if n := len(out); n > 0 && out[n-1] == f && isWordToken(f) {
			continue
		}
		out = append(out, f)
	}
	return strings.Join(out, " ")
}

func isWordToken(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return s != ""
}

// ExtractNumbers returns every finite numeral in text, left to right. A
// leading minus directly after a digit, '.' or ')' is read as the
// subtraction operator rather than a sign, so "10-4" yields [10 4].
func ExtractNumbers(text string) []float64 {
	locs := numberPattern.FindAllStringIndex(text, -1)
	nums := make([]float64, 0, len(locs))

	for _, loc := range locs {
		tok := text[loc[0]:loc[1]]
		if strings.HasPrefix(tok, "-") && loc[0] > 0 && endsOperand(text[loc[0]-1]) {
			tok = tok[1:]
		}

		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		nums = append(nums, v)
	}

	return nums
}

func endsOperand(c byte) bool {
	return '0' <= c && c <= '9' || c == '.' || c == ')'
}
