package draft

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns draft router. All routes require authentication.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Discard)
	r.Put("/{id}/schedule", h.SetSchedule)
	r.Put("/{id}/lines", h.SetLine)
	r.Delete("/{id}/lines/{kind}/{refId}", h.RemoveLine)
	r.Post("/{id}/promotion", h.ApplyPromotion)
	r.Delete("/{id}/promotion", h.RemovePromotion)
	r.Post("/{id}/submit", h.Submit)

	return r
}
