// Package units converts quantities between a fixed set of units.
//
// Conversions are directional: "feet_to_meters" existing says nothing about
// "meters_to_feet" or "feet_to_miles". Pairs missing from the table fail
// even when the reverse or a chain through other units exists.
package units

// Func converts one value from a source unit to a target unit.
type Func func(float64) float64

type conversion struct {
	key string
	fn  Func
}

type category struct {
	name        string
	conversions []conversion
}

// table is ordered so listings are stable. It is never mutated after
// package initialization.
var table = []category{
	{name: "temperature", conversions: []conversion{
		{"celsius_to_fahrenheit", func(v float64) float64 { return v*9/5 + 32 }},
		{"fahrenheit_to_celsius", func(v float64) float64 { return (v - 32) * 5 / 9 }},
		{"celsius_to_kelvin", func(v float64) float64 { return v + 273.15 }},
		{"kelvin_to_celsius", func(v float64) float64 { return v - 273.15 }},
		{"fahrenheit_to_kelvin", func(v float64) float64 { return (v-32)*5/9 + 273.15 }},
		{"kelvin_to_fahrenheit", func(v float64) float64 { return (v-273.15)*9/5 + 32 }},
	}},
	{name: "length", conversions: []conversion{
		{"meters_to_feet", func(v float64) float64 { return v * 3.28084 }},
		{"feet_to_meters", func(v float64) float64 { return v * 0.3048 }},
		{"meters_to_inches", func(v float64) float64 { return v * 39.3701 }},
		{"inches_to_meters", func(v float64) float64 { return v * 0.0254 }},
		{"meters_to_centimeters", func(v float64) float64 { return v * 100 }},
		{"centimeters_to_meters", func(v float64) float64 { return v / 100 }},
		{"kilometers_to_miles", func(v float64) float64 { return v * 0.621371 }},
		{"miles_to_kilometers", func(v float64) float64 { return v * 1.60934 }},
		{"centimeters_to_inches", func(v float64) float64 { return v / 2.54 }},
		{"inches_to_centimeters", func(v float64) float64 { return v * 2.54 }},
		{"feet_to_centimeters", func(v float64) float64 { return v * 30.48 }},
		{"centimeters_to_feet", func(v float64) float64 { return v / 30.48 }},
	}},
	{name: "weight", conversions: []conversion{
		{"kilograms_to_pounds", func(v float64) float64 { return v * 2.20462 }},
		{"pounds_to_kilograms", func(v float64) float64 { return v / 2.20462 }},
		{"kilograms_to_grams", func(v float64) float64 { return v * 1000 }},
		{"grams_to_kilograms", func(v float64) float64 { return v / 1000 }},
		{"grams_to_ounces", func(v float64) float64 { return v * 0.035274 }},
		{"ounces_to_grams", func(v float64) float64 { return v * 28.3495 }},
		{"pounds_to_ounces", func(v float64) float64 { return v * 16 }},
		{"ounces_to_pounds", func(v float64) float64 { return v / 16 }},
		{"tons_to_kilograms", func(v float64) float64 { return v * 1000 }},
		{"kilograms_to_tons", func(v float64) float64 { return v / 1000 }},
	}},
	{name: "volume", conversions: []conversion{
		{"liters_to_gallons_us", func(v float64) float64 { return v * 0.264172 }},
		{"gallons_us_to_liters", func(v float64) float64 { return v * 3.78541 }},
		{"liters_to_milliliters", func(v float64) float64 { return v * 1000 }},
		{"milliliters_to_liters", func(v float64) float64 { return v / 1000 }},
		{"liters_to_cups", func(v float64) float64 { return v * 4.22675 }},
		{"cups_to_liters", func(v float64) float64 { return v / 4.22675 }},
		{"milliliters_to_fluid_ounces", func(v float64) float64 { return v * 0.033814 }},
		{"fluid_ounces_to_milliliters", func(v float64) float64 { return v * 29.5735 }},
		{"gallons_us_to_milliliters", func(v float64) float64 { return v * 3785.41 }},
		{"milliliters_to_gallons_us", func(v float64) float64 { return v / 3785.41 }},
	}},
	{name: "speed", conversions: []conversion{
		{"kmh_to_mph", func(v float64) float64 { return v * 0.621371 }},
		{"mph_to_kmh", func(v float64) float64 { return v * 1.60934 }},
		{"ms_to_kmh", func(v float64) float64 { return v * 3.6 }},
		{"kmh_to_ms", func(v float64) float64 { return v / 3.6 }},
		{"knots_to_kmh", func(v float64) float64 { return v * 1.852 }},
		{"kmh_to_knots", func(v float64) float64 { return v / 1.852 }},
	}},
}

type entry struct {
	fn       Func
	category string
}

var index = buildIndex()

func buildIndex() map[string]entry {
	idx := make(map[string]entry)
	for _, c := range table {
		for _, conv := range c.conversions {
			idx[conv.key] = entry{fn: conv.fn, category: c.name}
		}
	}
	return idx
}

// Categories returns the category names in table order.
func Categories() []string {
	names := make([]string, len(table))
	for i, c := range table {
		names[i] = c.name
	}
	return names
}

// Units returns the canonical unit names appearing in a category, in order
// of first appearance. Unknown categories yield nil.
func Units(categoryName string) []string {
	for _, c := range table {
		if c.name != categoryName {
			continue
		}

		seen := make(map[string]bool)
		var out []string
		for _, conv := range c.conversions {
			src, dst := splitKey(conv.key)
			for _, u := range [...]string{src, dst} {
				if u != "" && !seen[u] {
					seen[u] = true
					out = append(out, u)
				}
			}
		}
		return out
	}
	return nil
}

// Lookup finds the directional conversion from src to dst. Unit names are
// lowercased and inner whitespace becomes "_" before the lookup.
func Lookup(src, dst string) (Func, string, bool) {
	e, ok := index[conversionKey(src, dst)]
	if !ok {
		return nil, "", false
	}
	return e.fn, e.category, true
}
