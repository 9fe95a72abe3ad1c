package interpreter

import (
	"regexp"
	"strconv"
	"strings"
)

// Spoken English cardinal words. Ordinals and homophones ("to", "for") are
// left alone because they are common words in calculation phrases.
var (
	unitWords = map[string]int64{
		"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
		"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	}
	teenWords = map[string]int64{
		"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
		"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	}
	tensWords = map[string]int64{
		"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
		"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	}
	scaleWords = map[string]int64{
		"thousand": 1_000, "million": 1_000_000, "billion": 1_000_000_000,
	}
)

// numeralPattern matches an unsigned numeral already written in digits.
var numeralPattern = regexp.MustCompile(`^\d*\.?\d+$`)

type wordKind int

const (
	kindNone wordKind = iota
	kindZero
	kindUnit
	kindTeen
	kindTens
	kindHundred
	kindScale
)

// ConvertNumberWords replaces runs of English number words with digits:
// "twenty five" becomes "25", "three point one four" becomes "3.14" and
// "negative five" becomes "-5". Adjacent numbers that cannot form one
// cardinal stay separate, so "five five" becomes "5 5". Whitespace is
// squeezed to single spaces.
func ConvertNumberWords(text string) string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))

	for i := 0; i < len(fields); {
		number, consumed := parseNumberWords(fields[i:])
		if consumed == 0 {
			out = append(out, fields[i])
			i++
			continue
		}
		out = append(out, number)
		i += consumed
	}

	return strings.Join(out, " ")
}

// parseNumberWords reads one spoken number from the front of words. It
// returns the digits, followed by any trailing punctuation of the last word,
// and the number of words consumed. consumed is zero when words does not
// start with a number.
func parseNumberWords(words []string) (string, int) {
	i := 0
	negative := false
	if core, punct := splitPunct(words[0]); strings.EqualFold(core, "negative") {
		if punct != "" || len(words) < 2 {
			return "", 0
		}
		// "negative 4", as recognizers often write the digits themselves
		if numeral, punct := splitPunct(words[1]); numeralPattern.MatchString(numeral) {
			return "-" + numeral + punct, 2
		}
		if classifyWord(words[1]) == kindNone {
			return "", 0
		}
		negative = true
		i = 1
	}

	var (
		total, current int64
		last           = kindNone
		consumed       int
		suffix         string
	)

scan:
	for i < len(words) {
		core, punct := splitPunct(words[i])
		w := strings.ToLower(core)
		kind := classifyWord(w)

		// "one hundred and five"
		if w == "and" && punct == "" && (last == kindHundred || last == kindScale) && i+1 < len(words) {
			next := classifyWord(words[i+1])
			if next == kindUnit || next == kindTeen || next == kindTens {
				i++
				continue
			}
		}

		if !follows(last, kind) {
			break
		}

		switch kind {
		case kindUnit:
			current += unitWords[w]
		case kindTeen:
			current += teenWords[w]
		case kindTens:
			current += tensWords[w]
		case kindHundred:
			current *= 100
		case kindScale:
			total += current * scaleWords[w]
			current = 0
		}

		last = kind
		i++
		consumed = i
		suffix = punct
		if punct != "" || kind == kindZero {
			break scan
		}
	}

	if last == kindNone {
		return "", 0
	}

	digits := strconv.FormatInt(total+current, 10)

	// "three point one four"
	if suffix == "" && consumed+1 < len(words) {
		if core, punct := splitPunct(words[consumed]); punct == "" && strings.EqualFold(core, "point") {
			var b strings.Builder
			j := consumed + 1
			fracSuffix := ""
			for j < len(words) {
				core, punct := splitPunct(words[j])
				w := strings.ToLower(core)
				if !isDigitWord(w) {
					break
				}
				b.WriteString(strconv.FormatInt(unitWords[w], 10))
				j++
				fracSuffix = punct
				if punct != "" {
					break
				}
			}
			if b.Len() > 0 {
				digits += "." + b.String()
				consumed = j
				suffix = fracSuffix
			}
		}
	}

	if negative {
		digits = "-" + digits
	}
	return digits + suffix, consumed
}

// follows reports whether a word of kind next may extend a number whose
// last word was of kind prev.
func follows(prev, next wordKind) bool {
	switch next {
	case kindZero:
		return prev == kindNone
	case kindUnit:
		return prev == kindNone || prev == kindTens || prev == kindHundred || prev == kindScale
	case kindTeen, kindTens:
		return prev == kindNone || prev == kindHundred || prev == kindScale
	case kindHundred:
		return prev == kindUnit || prev == kindTeen
	case kindScale:
		return prev == kindUnit || prev == kindTeen || prev == kindTens || prev == kindHundred
	}
	return false
}

func classifyWord(word string) wordKind {
	w, _ := splitPunct(strings.ToLower(word))
	switch {
	case w == "zero":
		return kindZero
	case unitWords[w] > 0:
		return kindUnit
	case teenWords[w] > 0:
		return kindTeen
	case tensWords[w] > 0:
		return kindTens
	case w == "hundred":
		return kindHundred
	case scaleWords[w] > 0:
		return kindScale
	}
	return kindNone
}

func isDigitWord(word string) bool {
	k := classifyWord(word)
	return k == kindUnit || k == kindZero
}

// splitPunct separates trailing sentence punctuation from a word.
func splitPunct(word string) (string, string) {
	core := strings.TrimRight(word, "?,.!;:")
	return core, word[len(core):]
}
