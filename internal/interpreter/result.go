// Package interpreter turns free-form spoken or typed arithmetic phrases into
// a value and a human-readable explanation.
//
// Every exported entry point is a pure function of its input string plus the
// static unit table in package units. User phrases never produce Go errors:
// exceptional outcomes are reported through sentinel values.
package interpreter

// Sentinel values reported in Result.Value.
const (
	Zero       = "0"
	Infinity   = "∞"
	NotANumber = "NaN"
	ErrorValue = "Error"
)

// Result is the outcome of interpreting one phrase.
type Result struct {
	Value       string `json:"value" yaml:"value"`
	Explanation string `json:"explanation" yaml:"explanation"`
	Tool        string `json:"tool,omitempty" yaml:"tool,omitempty"`
}

// Unrecognized reports whether no number could be found anywhere in the
// phrase. It is the only hard failure of Evaluate.
func (r Result) Unrecognized() bool {
	return r.Tool == OpUnrecognized.String()
}

// Sentinel reports whether Value is one of the reserved exceptional values.
func (r Result) Sentinel() bool {
	switch r.Value {
	case Infinity, "-" + Infinity, NotANumber, ErrorValue:
		return true
	}
	return r.Unrecognized()
}

func newResult(op Operation, value, explanation string) Result {
	return Result{Value: value, Explanation: explanation, Tool: op.String()}
}
