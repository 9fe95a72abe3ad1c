package calculator

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-calculator/internal/interpreter"
	"voice-calculator/internal/session"
	"voice-calculator/internal/testutil"
)

func newTestRouter(t *testing.T) (http.Handler, *session.Store) {
	t.Helper()

	store := session.NewStore(16, time.Minute, 5)
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(NewService(nil), store))
	return r, store
}

func TestCalculate(t *testing.T) {
	h, _ := newTestRouter(t)

	tests := []struct {
		input string
		want  interpreter.Result
	}{
		{"What is 25 times 4?", interpreter.Result{Value: "100", Explanation: "25 × 4 = 100", Tool: "multiplication"}},
		{"ten divided by zero", interpreter.Result{Value: interpreter.Infinity, Explanation: "Cannot divide by zero", Tool: "division"}},
		{"hello there", interpreter.Result{Value: interpreter.Zero, Explanation: "No numbers found in input", Tool: "unrecognized"}},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			body, err := json.Marshal(CalculateRequest{Input: tc.input})
			require.NoError(t, err)

			w := testutil.PostJSON(h, "/api/calculate", string(body))
			testutil.CheckResponseCode(t, http.StatusOK, w.Code)

			var got interpreter.Result
			testutil.DecodeJSONBody(t, w.Body, &got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalculateBadBodyAsksToRephrase(t *testing.T) {
	h, _ := newTestRouter(t)

	w := testutil.PostJSON(h, "/api/calculate", `{"input":`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var got interpreter.Result
	testutil.DecodeJSONBody(t, w.Body, &got)
	assert.Equal(t, RephraseResult(), got)
}

func TestCalculateRecordsSessionHistory(t *testing.T) {
	h, store := newTestRouter(t)

	first := testutil.PostJSON(h, "/api/calculate", `{"input":"2 plus 3"}`)
	id := first.Result().Header.Get(session.HeaderName)
	require.NotEmpty(t, id)

	testutil.PostJSON(h, "/api/calculate", `{"input":"6 times 7"}`, session.HeaderName, id)

	hist, ok := store.Lookup(id)
	require.True(t, ok)
	entries := hist.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "6 times 7", entries[0].Input)
	assert.Equal(t, "42", entries[0].Value)
	assert.Equal(t, "2 plus 3", entries[1].Input)

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	req.Header.Set(session.HeaderName, id)
	w := testutil.ExecuteRequest(req, h)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp HistoryResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)
	assert.Equal(t, id, resp.SessionID)
	assert.Len(t, resp.Entries, 2)

	req = httptest.NewRequest(http.MethodDelete, "/api/history", nil)
	req.Header.Set(session.HeaderName, id)
	w = testutil.ExecuteRequest(req, h)
	testutil.CheckResponseCode(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, hist.Len())
}

func TestMathTools(t *testing.T) {
	h, _ := newTestRouter(t)

	w := testutil.PostJSON(h, "/api/math-tools", `{"input":"5 choose 2"}`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var got interpreter.Result
	testutil.DecodeJSONBody(t, w.Body, &got)
	assert.Equal(t, "10", got.Value)
	assert.Equal(t, interpreter.ToolCombination, got.Tool)

	w = testutil.PostJSON(h, "/api/math-tools", `not json`)
	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
}

func TestConvert(t *testing.T) {
	h, _ := newTestRouter(t)

	w := testutil.PostJSON(h, "/api/convert", `{"value":100,"source_unit":"celsius","target_unit":"fahrenheit"}`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var got ConvertResponse
	testutil.DecodeJSONBody(t, w.Body, &got)
	assert.Equal(t, 212.0, got.Value)
	assert.Equal(t, "temperature", got.Category)
	assert.Equal(t, "celsius", got.SourceUnit)
	assert.Equal(t, "fahrenheit", got.TargetUnit)
	assert.Equal(t, "100 Celsius = 212 Fahrenheit", got.Result)
}

func TestConvertErrors(t *testing.T) {
	h, _ := newTestRouter(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed", `{"value":`, http.StatusBadRequest},
		{"missing value", `{"source_unit":"celsius","target_unit":"fahrenheit"}`, http.StatusBadRequest},
		{"missing unit", `{"value":1,"source_unit":"celsius"}`, http.StatusBadRequest},
		{"unknown pair", `{"value":1,"source_unit":"celsius","target_unit":"miles"}`, http.StatusUnprocessableEntity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := testutil.PostJSON(h, "/api/convert", tc.body)
			testutil.CheckResponseCode(t, tc.want, w.Code)

			var body map[string]string
			testutil.DecodeJSONBody(t, w.Body, &body)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestUnits(t *testing.T) {
	h, _ := newTestRouter(t)

	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/api/units", nil), h)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var got UnitsResponse
	testutil.DecodeJSONBody(t, w.Body, &got)
	require.NotEmpty(t, got.Categories)
	assert.Equal(t, "temperature", got.Categories[0].Name)
	assert.Contains(t, got.Categories[0].Units, "celsius")
}

func TestParse(t *testing.T) {
	h, _ := newTestRouter(t)

	w := testutil.PostJSON(h, "/api/parse", `{"input":"five plus three"}`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var got ParseResponse
	testutil.DecodeJSONBody(t, w.Body, &got)
	assert.Equal(t, "+", got.Tokens.Operator)
	assert.Equal(t, []float64{5, 3}, got.Tokens.Operands)
	assert.Equal(t, "5 + 3", got.Expression)
	assert.Equal(t, "5 plus 3", got.Explanation)
	assert.True(t, got.Valid)
	require.NotNil(t, got.Value)
	assert.Equal(t, "8", *got.Value)

	w = testutil.PostJSON(h, "/api/parse", `{"input":"just 7"}`)
	testutil.CheckResponseCode(t, http.StatusUnprocessableEntity, w.Code)
}

func TestParseDivisionByZeroHasNoValue(t *testing.T) {
	h, _ := newTestRouter(t)

	w := testutil.PostJSON(h, "/api/parse", `{"input":"8 divided by 0"}`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var got ParseResponse
	testutil.DecodeJSONBody(t, w.Body, &got)
	assert.False(t, got.Valid)
	assert.Nil(t, got.Value)
}

func TestBatch(t *testing.T) {
	h, _ := newTestRouter(t)

	w := testutil.PostJSON(h, "/api/batch", `{"inputs":["2 plus 2","square root of 81","what"]}`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var got BatchResponse
	testutil.DecodeJSONBody(t, w.Body, &got)
	require.Len(t, got.Results, 3)
	assert.Equal(t, "2 plus 2", got.Results[0].Input)
	assert.Equal(t, "4", got.Results[0].Value)
	assert.Equal(t, "9", got.Results[1].Value)
	assert.True(t, got.Results[2].Unrecognized())
}

func TestBatchLimits(t *testing.T) {
	h, _ := newTestRouter(t)

	w := testutil.PostJSON(h, "/api/batch", `{"inputs":[]}`)
	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

	inputs := make([]string, maxBatchInputs+1)
	for i := range inputs {
		inputs[i] = "1 plus 1"
	}
	body, err := json.Marshal(BatchRequest{Inputs: inputs})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/batch", bytes.NewReader(body))
	w = testutil.ExecuteRequest(req, h)
	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
}

func TestRecovererAnswersWithRephrase(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodPost, "/api/calculate", nil), h)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var got interpreter.Result
	testutil.DecodeJSONBody(t, w.Body, &got)
	assert.Equal(t, RephraseResult(), got)
}
