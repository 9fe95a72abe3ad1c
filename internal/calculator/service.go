package calculator

import (
	"context"
	"math"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"voice-calculator/internal/interpreter"
	"voice-calculator/internal/observability"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// RemoteEvaluator answers phrases the local interpreter cannot.
type RemoteEvaluator interface {
	Evaluate(ctx context.Context, input string) (interpreter.Result, error)
}

// Service evaluates phrases locally and, when configured, asks a remote
// evaluator about phrases that contain no usable numbers.
type Service struct {
	remote RemoteEvaluator
}

// NewService returns a service. remote may be nil.
func NewService(remote RemoteEvaluator) *Service {
	return &Service{remote: remote}
}

// Evaluate never fails. Remote errors are logged and the local result kept.
func (s *Service) Evaluate(ctx context.Context, input string) interpreter.Result {
	ctx, span := tracer.Start(ctx, "calculator.evaluate",
		trace.WithAttributes(attribute.Int("calculator.input.length", len(input))),
	)
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	start := time.Now()
	result := interpreter.Evaluate(input)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if result.Unrecognized() && s.remote != nil {
		result = s.fallback(ctx, span, logger, input, result)
	}

	attrs := metric.WithAttributes(attribute.String("tool", result.Tool))
	evaluationsCounter.Add(ctx, 1, attrs)
	durationHistogram.Record(ctx, elapsed, attrs)

	if result.Sentinel() {
		sentinelCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("tool", result.Tool),
			attribute.String("value", result.Value),
		))
	} else if v, err := strconv.ParseFloat(result.Value, 64); err == nil && !math.IsInf(v, 0) {
		resultGauge.Record(ctx, v, attrs)
	}

	span.AddEvent("evaluation.complete", trace.WithAttributes(
		attribute.String("value", result.Value),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(
		attribute.String("calculator.tool", result.Tool),
		attribute.String("calculator.value", result.Value),
	)
	span.SetStatus(codes.Ok, "")

	logger.Debug("phrase evaluated",
		zap.String("tool", result.Tool),
		zap.String("value", result.Value),
		zap.Float64("duration_ms", elapsed),
	)

	return result
}

func (s *Service) fallback(ctx context.Context, span trace.Span, logger *zap.Logger, input string, local interpreter.Result) interpreter.Result {
	remote, err := s.remote.Evaluate(ctx, input)
	if err != nil {
		span.RecordError(err)
		fallbackCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "error")))
		logger.Warn("remote evaluation failed", zap.Error(err))
		return local
	}

	if remote.Unrecognized() {
		fallbackCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "unrecognized")))
		return local
	}

	fallbackCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "ok")))
	span.AddEvent("remote.fallback", trace.WithAttributes(attribute.String("tool", remote.Tool)))
	return remote
}
