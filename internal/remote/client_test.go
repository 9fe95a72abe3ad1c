package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"voice-calculator/internal/interpreter"
)

func newTestClient(t *testing.T, url string, maxFailures uint32) *Client {
	t.Helper()
	c, err := NewClient(Config{
		BaseURL:      url + "/",
		Timeout:      time.Second,
		MaxFailures:  maxFailures,
		ResetTimeout: time.Minute,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	return c
}

func TestClientEvaluate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, calculatePath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req calculateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "seven dwarves plus snow white", req.Input)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value":"8","explanation":"7 + 1 = 8","tool":"addition"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	got, err := c.Evaluate(context.Background(), "seven dwarves plus snow white")
	require.NoError(t, err)
	assert.Equal(t, interpreter.Result{Value: "8", Explanation: "7 + 1 = 8", Tool: "addition"}, got)
	assert.Equal(t, "closed", c.State())
}

func TestClientAcceptsLegacyFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"10","explanation":"C(5,2) = 10","toolUsed":"combination"}`))
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL, 3).Evaluate(context.Background(), "5 choose 2")
	require.NoError(t, err)
	assert.Equal(t, interpreter.Result{Value: "10", Explanation: "C(5,2) = 10", Tool: "combination"}, got)
}

func TestClientDefaultsTool(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"value":"0","explanation":"Offline"}`))
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL, 3).Evaluate(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, defaultTool, got.Tool)
}

func TestClientRejectsMissingValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"explanation":"nothing"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL, 3).Evaluate(context.Background(), "x")
	assert.Error(t, err)
}

func TestClientBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 2)
	for i := 0; i < 2; i++ {
		_, err := c.Evaluate(context.Background(), "x")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnavailable)
	}

	_, err := c.Evaluate(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, "open", c.State())
}

func TestNewClientRequiresURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "  "}, nil)
	assert.Error(t, err)
}
