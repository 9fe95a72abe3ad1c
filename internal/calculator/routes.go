package calculator

import (
	"github.com/go-chi/chi/v5"

	"voice-calculator/internal/session"
)

// RegisterRoutes mounts all calculator endpoints onto the given router
// under the /api prefix.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Use(Recoverer)
		r.Use(session.Middleware)

		r.Post("/calculate", h.Calculate)
		r.Post("/math-tools", h.MathTools)
		r.Post("/convert", h.Convert)
		r.Get("/units", h.Units)
		r.Post("/parse", h.Parse)
		r.Post("/batch", h.Batch)
		r.Get("/history", h.History)
		r.Delete("/history", h.ClearHistory)
	})
}
