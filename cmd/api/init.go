package main

import (
	"context"
	"errors"

	"voice-calculator/internal/calculator"
	"voice-calculator/internal/config"
	"voice-calculator/internal/observability"
	"voice-calculator/internal/remote"
	"voice-calculator/internal/session"
)

// initTelemetry initialises metric, trace and log providers plus the
// application-specific metric instruments. OTLP exporters are only created
// when OTEL_ENABLED is set; Prometheus metrics are always served.
// Add new domain InitMetrics calls here as the project grows.
func initTelemetry(ctx context.Context, cfg config.Config) (func(context.Context) error, error) {
	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	metricShutdown, err := observability.InitMetrics(ctx, cfg.ServiceName, cfg.OTelEnabled)
	if err != nil {
		return nil, err
	}
	shutdowns = append(shutdowns, metricShutdown)

	if err := calculator.InitMetrics(); err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}

	if !cfg.OTelEnabled {
		return shutdown, nil
	}

	traceShutdown, err := observability.InitTracing(ctx, cfg.ServiceName)
	if err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}
	shutdowns = append(shutdowns, traceShutdown)

	logShutdown, err := observability.InitLogging(ctx, cfg.ServiceName)
	if err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}
	shutdowns = append(shutdowns, logShutdown)

	return shutdown, nil
}

// newHandler wires the calculator service, its optional remote fallback and
// the session store.
func newHandler(cfg config.Config) (*calculator.Handler, error) {
	var service *calculator.Service
	if cfg.Remote.URL == "" {
		service = calculator.NewService(nil)
	} else {
		client, err := remote.NewClient(remote.Config{
			BaseURL:      cfg.Remote.URL,
			Timeout:      cfg.Remote.Timeout,
			MaxFailures:  cfg.Remote.MaxFailures,
			ResetTimeout: cfg.Remote.ResetTimeout,
		}, observability.Logger)
		if err != nil {
			return nil, err
		}
		service = calculator.NewService(client)
	}

	sessions := session.NewStore(cfg.SessionCapacity, cfg.SessionTTL, cfg.HistorySize)
	return calculator.NewHandler(service, sessions), nil
}
