// internal/app/features/health/routes.go
package health

import (
	"github.com/empoderata/academy/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter that serves the health endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.MethodNotAllowed(respond.MethodNotAllowed)
	r.Get("/", h.Serve) // mounted under /api/health
	return r
}
