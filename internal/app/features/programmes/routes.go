// internal/app/features/programmes/routes.go
package programmes

import (
	"github.com/empoderata/academy/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.MethodNotAllowed(respond.MethodNotAllowed)
	r.Get("/", h.List)
	r.Get("/{slug}", h.Detail)
	r.Get("/{slug}/quote", h.Quote)
	return r
}
