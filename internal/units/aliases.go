package units

import (
	"regexp"
	"strconv"
	"strings"
)

var aliases = map[string]string{
	// temperature
	"celsius": "celsius", "c": "celsius", "c°": "celsius", "°c": "celsius",
	"fahrenheit": "fahrenheit", "f": "fahrenheit", "f°": "fahrenheit", "°f": "fahrenheit",
	"kelvin": "kelvin", "k": "kelvin",

	// length
	"meter": "meters", "meters": "meters", "metre": "meters", "metres": "meters", "m": "meters",
	"feet": "feet", "foot": "feet", "ft": "feet",
	"inch": "inches", "inches": "inches", "in": "inches",
	"cm": "centimeters", "centimeter": "centimeters", "centimeters": "centimeters",
	"km": "kilometers", "kilometer": "kilometers", "kilometers": "kilometers",
	"kilometre": "kilometers", "kilometres": "kilometers",
	"mile": "miles", "miles": "miles", "mi": "miles",

	// weight
	"kg": "kilograms", "kilogram": "kilograms", "kilograms": "kilograms",
	"pound": "pounds", "pounds": "pounds", "lb": "pounds", "lbs": "pounds",
	"g": "grams", "gram": "grams", "grams": "grams",
	"mg": "milligrams", "milligram": "milligrams", "milligrams": "milligrams",
	"oz": "ounces", "ounce": "ounces", "ounces": "ounces",
	"ton": "tons", "tons": "tons",

	// volume
	"liter": "liters", "liters": "liters", "litre": "liters", "litres": "liters", "l": "liters",
	"gallon": "gallons_us", "gallons": "gallons_us", "gal": "gallons_us",
	"ml": "milliliters", "milliliter": "milliliters", "milliliters": "milliliters",
	"millilitre": "milliliters", "millilitres": "milliliters",
	"cup": "cups", "cups": "cups",
	"fl oz": "fluid_ounces", "fluid oz": "fluid_ounces",
	"fluid ounce": "fluid_ounces", "fluid ounces": "fluid_ounces",

	// speed
	"kmh": "kmh", "km/h": "kmh",
	"mph": "mph", "mi/h": "mph",
	"ms": "ms", "m/s": "ms",
	"knots": "knots", "knot": "knots",
}

// Resolve maps a spoken or abbreviated unit to its canonical name. Unknown
// names pass through trimmed and lowercased.
func Resolve(raw string) string {
	u := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := aliases[u]; ok {
		return canonical
	}
	return u
}

var phrasePattern = regexp.MustCompile(`(?i)convert\s+(-?[\d.]+)\s*([a-z°/\s]+?)\s+to\s+([a-z°/\s]+)`)

// Spec is a parsed conversion request.
type Spec struct {
	Value  float64 `json:"value" yaml:"value"`
	Source string  `json:"source_unit" yaml:"source_unit"`
	Target string  `json:"target_unit" yaml:"target_unit"`
}

// ParsePhrase reads "convert <number> <unit> to <unit>" anywhere in text and
// resolves both units through the alias table.
func ParsePhrase(text string) (Spec, bool) {
	m := phrasePattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(text)))
	if m == nil {
		return Spec{}, false
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Spec{}, false
	}

	src, dst := Resolve(m[2]), Resolve(m[3])
	if src == "" || dst == "" {
		return Spec{}, false
	}
	return Spec{Value: v, Source: src, Target: dst}, true
}

// IsPhrase reports whether text looks like a conversion request.
func IsPhrase(text string) bool {
	return phrasePattern.MatchString(text)
}

func normalizeUnit(u string) string {
	return strings.Join(strings.Fields(strings.ToLower(u)), "_")
}

func conversionKey(src, dst string) string {
	return normalizeUnit(src) + "_to_" + normalizeUnit(dst)
}

func splitKey(key string) (string, string) {
	src, dst, _ := strings.Cut(key, "_to_")
	return src, dst
}
