package dossier

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the dossier flow routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/dossier/evaluer", h.Evaluate)
	r.Get("/dossier/taux", h.Rates)
}
