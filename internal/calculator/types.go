package calculator

import (
	"voice-calculator/internal/interpreter"
	"voice-calculator/internal/session"
	"voice-calculator/internal/units"
)

// CalculateRequest is the JSON body for POST /api/calculate and /api/math-tools.
type CalculateRequest struct {
	Input string `json:"input"`
}

// ConvertRequest is the JSON body for POST /api/convert.
type ConvertRequest struct {
	Value      *float64 `json:"value"`
	SourceUnit string   `json:"source_unit"`
	TargetUnit string   `json:"target_unit"`
}

// ConvertResponse is the JSON response for POST /api/convert.
type ConvertResponse struct {
	units.Conversion
	SourceUnit string `json:"source_unit"`
	TargetUnit string `json:"target_unit"`
}

// UnitCategory lists the units of one category.
type UnitCategory struct {
	Name  string   `json:"name"`
	Units []string `json:"units"`
}

// UnitsResponse is the JSON response for GET /api/units.
type UnitsResponse struct {
	Categories []UnitCategory `json:"categories"`
}

// ParseResponse is the JSON response for POST /api/parse. Value is present
// only when the tokens evaluate to a finite number.
type ParseResponse struct {
	Tokens      interpreter.MathTokens `json:"tokens"`
	Expression  string                 `json:"expression"`
	Explanation string                 `json:"explanation"`
	Valid       bool                   `json:"valid"`
	Value       *string                `json:"value,omitempty"`
}

// BatchRequest is the JSON body for POST /api/batch.
type BatchRequest struct {
	Inputs []string `json:"inputs"`
}

// BatchResult is one evaluated phrase.
type BatchResult struct {
	Input string `json:"input"`
	interpreter.Result
}

// BatchResponse is the JSON response for POST /api/batch.
type BatchResponse struct {
	Results []BatchResult `json:"results"`
}

// HistoryResponse is the JSON response for GET /api/history.
type HistoryResponse struct {
	SessionID string          `json:"session_id"`
	Entries   []session.Entry `json:"entries"`
}

// RephraseResult is returned when a request cannot be understood at all.
func RephraseResult() interpreter.Result {
	return interpreter.Result{Value: interpreter.Zero, Explanation: "Please try rephrasing your calculation"}
}

// OfflineResult is the canned answer clients show when the service cannot
// be reached.
func OfflineResult() interpreter.Result {
	return interpreter.Result{Value: interpreter.Zero, Explanation: "Offline - please try again when connected"}
}
