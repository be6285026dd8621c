// internal/app/features/programmes/handler.go
package programmes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/empoderata/academy/internal/app/catalogue"
	"github.com/empoderata/academy/internal/app/system/respond"
	"github.com/empoderata/academy/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the read-only programme catalogue.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

type listResponse struct {
	Programmes []models.Programme `json:"programmes"`
}

// List handles GET /api/programmes[?category=learnership].
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list := catalogue.Featured(r.URL.Query().Get("category"))
	respond.JSON(w, r, http.StatusOK, listResponse{Programmes: list})
}

// Detail handles GET /api/programmes/{slug}.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	p, ok := catalogue.BySlug(chi.URLParam(r, "slug"))
	if !ok {
		respond.Error(w, r, http.StatusNotFound, "Programme not found")
		return
	}
	respond.JSON(w, r, http.StatusOK, p)
}

// Quote handles GET /api/programmes/{slug}/quote?learners=N and returns the
// indicative estimate for N learners.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	p, ok := catalogue.BySlug(chi.URLParam(r, "slug"))
	if !ok {
		respond.Error(w, r, http.StatusNotFound, "Programme not found")
		return
	}

	n, err := strconv.Atoi(r.URL.Query().Get("learners"))
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "learners must be a whole number")
		return
	}
	est, err := catalogue.Quote(p, n)
	if errors.Is(err, catalogue.ErrLearnersOutOfRange) {
		respond.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}
	respond.JSON(w, r, http.StatusOK, est)
}
