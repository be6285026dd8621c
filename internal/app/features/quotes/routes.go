// internal/app/features/quotes/routes.go
package quotes

import (
	"github.com/empoderata/academy/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
)

// Routes serves POST /api/submit-quote, mounted at that path.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.MethodNotAllowed(respond.MethodNotAllowed)
	r.Post("/", h.Submit)
	return r
}

// SaveRoutes serves POST /api/save-quote, mounted at that path.
func SaveRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.MethodNotAllowed(respond.MethodNotAllowed)
	r.Post("/", h.Save)
	return r
}
