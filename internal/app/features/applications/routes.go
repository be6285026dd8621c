// internal/app/features/applications/routes.go
package applications

import (
	"github.com/empoderata/academy/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
)

// Routes serves POST /api/submit-application, mounted at that path.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.MethodNotAllowed(respond.MethodNotAllowed)
	r.Post("/", h.Submit)
	return r
}
