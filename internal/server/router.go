package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"voice-calculator/internal/calculator"
	"voice-calculator/internal/handlers"
	"voice-calculator/internal/observability"
)

func NewRouter(calc *calculator.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	calculator.RegisterRoutes(r, calc)

	return r
}
