package calculator

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"voice-calculator/internal/handlers"
	"voice-calculator/internal/observability"
)

// Recoverer turns a panic in a calculator handler into the "please rephrase"
// answer instead of a dropped connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			ctx := r.Context()
			err := fmt.Errorf("panic: %v", rec)

			span := trace.SpanFromContext(ctx)
			span.RecordError(err)
			span.SetStatus(codes.Error, "recovered from panic")
			errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "panic")))

			observability.LoggerWithTrace(ctx).Error("calculator handler panicked",
				zap.Error(err),
				zap.String("path", r.URL.Path),
				zap.String("request_id", observability.RequestIDFromContext(ctx)),
				zap.Stack("stack"),
			)

			handlers.WriteJSON(w, http.StatusOK, RephraseResult())
		}()

		next.ServeHTTP(w, r)
	})
}
