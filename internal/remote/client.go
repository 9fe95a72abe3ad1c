// Package remote calls another calculator service when local evaluation
// cannot make sense of a phrase.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"voice-calculator/internal/interpreter"
)

// ErrUnavailable is returned while the circuit breaker refuses calls.
var ErrUnavailable = errors.New("remote evaluator unavailable")

const (
	calculatePath   = "/api/calculate"
	maxResponseSize = 64 << 10
	defaultTool     = "remote"
)

type Config struct {
	BaseURL      string
	Timeout      time.Duration
	MaxFailures  uint32
	ResetTimeout time.Duration
}

// Client evaluates phrases on a remote calculator service.
type Client struct {
	endpoint string
	http     *http.Client
	breaker  *gobreaker.CircuitBreaker[interpreter.Result]
	logger   *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("remote evaluator base URL is empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 5
	}

	c := &Client{
		endpoint: base + calculatePath,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}

	maxFailures := cfg.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[interpreter.Result](gobreaker.Settings{
		Name:    "remote-evaluator",
		Timeout: cfg.ResetTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return c, nil
}

type calculateRequest struct {
	Input string `json:"input"`
}

// calculateResponse accepts both the current "value"/"tool" fields and the
// older "result"/"toolUsed" names.
type calculateResponse struct {
	Value       *string `json:"value"`
	Result      *string `json:"result"`
	Explanation string  `json:"explanation"`
	Tool        string  `json:"tool"`
	ToolUsed    string  `json:"toolUsed"`
}

// Evaluate posts input to the remote service.
func (c *Client) Evaluate(ctx context.Context, input string) (interpreter.Result, error) {
	res, err := c.breaker.Execute(func() (interpreter.Result, error) {
		return c.call(ctx, input)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return interpreter.Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return res, err
}

// State reports the breaker state: "closed", "half-open" or "open".
func (c *Client) State() string {
	return c.breaker.State().String()
}

func (c *Client) call(ctx context.Context, input string) (interpreter.Result, error) {
	body, err := json.Marshal(calculateRequest{Input: input})
	if err != nil {
		return interpreter.Result{}, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return interpreter.Result{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return interpreter.Result{}, fmt.Errorf("calling remote evaluator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return interpreter.Result{}, fmt.Errorf("remote evaluator returned status %d", resp.StatusCode)
	}

	var out calculateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&out); err != nil {
		return interpreter.Result{}, fmt.Errorf("decoding response: %w", err)
	}

	value := out.Value
	if value == nil {
		value = out.Result
	}
	if value == nil {
		return interpreter.Result{}, errors.New("remote evaluator response has no value")
	}

	tool := out.Tool
	if tool == "" {
		tool = out.ToolUsed
	}
	if tool == "" {
		tool = defaultTool
	}

	c.logger.Debug("remote evaluation", zap.String("value", *value), zap.String("tool", tool))
	return interpreter.Result{Value: *value, Explanation: out.Explanation, Tool: tool}, nil
}
