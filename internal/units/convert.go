package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Conversion is the outcome of a successful Convert.
type Conversion struct {
	Value       float64 `json:"value" yaml:"value"`
	Result      string  `json:"result" yaml:"result"`
	Formula     string  `json:"formula" yaml:"formula"`
	Explanation string  `json:"explanation" yaml:"explanation"`
	Category    string  `json:"category" yaml:"category"`
}

// formulas hold display templates for the pairs with a well-known factor.
// %s is replaced by the input value.
var formulas = map[string]string{
	"kilograms_to_pounds":   "%s × 2.20462",
	"pounds_to_kilograms":   "%s × 0.453592",
	"celsius_to_fahrenheit": "%s × 9/5 + 32",
	"fahrenheit_to_celsius": "(%s - 32) × 5/9",
	"meters_to_feet":        "%s × 3.28084",
	"feet_to_meters":        "%s × 0.3048",
	"kilometers_to_miles":   "%s × 0.621371",
	"miles_to_kilometers":   "%s × 1.60934",
	"liters_to_gallons_us":  "%s × 0.264172",
	"gallons_us_to_liters":  "%s × 3.78541",
}

// Convert applies the directional conversion for spec and rounds to four
// decimals. ok is false when the pair is not in the table or the result is
// not finite.
func Convert(spec Spec) (Conversion, bool) {
	key := conversionKey(spec.Source, spec.Target)
	e, ok := index[key]
	if !ok {
		return Conversion{}, false
	}

	raw := e.fn(spec.Value)
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return Conversion{}, false
	}
	rounded := math.Round(raw*10000) / 10000

	in, out := formatValue(spec.Value), formatValue(rounded)
	src, dst := displayName(spec.Source), displayName(spec.Target)

	tmpl, ok := formulas[key]
	if !ok {
		tmpl = "%s × custom"
	}

	return Conversion{
		Value:       rounded,
		Result:      fmt.Sprintf("%s %s = %s %s", in, src, out, dst),
		Formula:     fmt.Sprintf(tmpl, in) + " = " + out,
		Explanation: fmt.Sprintf("%s %s is approximately %s %s", in, src, out, dst),
		Category:    e.category,
	}, true
}

// displayName turns "gallons_us" into "Gallons Us".
func displayName(unit string) string {
	words := strings.Fields(strings.ReplaceAll(unit, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func formatValue(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
