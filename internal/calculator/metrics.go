package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric instruments. They are no-ops until InitMetrics runs so the service
// stays usable outside the HTTP server.
var (
	evaluationsCounter metric.Int64Counter     = noop.Int64Counter{}
	durationHistogram  metric.Float64Histogram = noop.Float64Histogram{}
	sentinelCounter    metric.Int64Counter     = noop.Int64Counter{}
	errorCounter       metric.Int64Counter     = noop.Int64Counter{}
	fallbackCounter    metric.Int64Counter     = noop.Int64Counter{}
	resultGauge        metric.Float64Gauge     = noop.Float64Gauge{}
)

// InitMetrics registers custom OTel metric instruments for the calculator domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	evaluationsCounter, err = meter.Int64Counter("calculator.evaluations.total",
		metric.WithDescription("Total number of phrases evaluated, by tool"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return fmt.Errorf("creating evaluations counter: %w", err)
	}

	durationHistogram, err = meter.Float64Histogram("calculator.evaluation.duration",
		metric.WithDescription("Duration of phrase evaluation in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50),
	)
	if err != nil {
		return fmt.Errorf("creating duration histogram: %w", err)
	}

	sentinelCounter, err = meter.Int64Counter("calculator.sentinel_results.total",
		metric.WithDescription("Evaluations that ended in ∞, NaN, Error or no numbers"),
		metric.WithUnit("{result}"),
	)
	if err != nil {
		return fmt.Errorf("creating sentinel counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of calculator request errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	fallbackCounter, err = meter.Int64Counter("calculator.remote_fallbacks.total",
		metric.WithDescription("Phrases handed to the remote evaluator, by outcome"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return fmt.Errorf("creating fallback counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("calculator.last_result",
		metric.WithDescription("The numeric value of the last successful evaluation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	return nil
}
