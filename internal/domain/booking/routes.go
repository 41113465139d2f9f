package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns booking router.
func (h *Handler) Routes(authMiddleware, staffOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/my", h.ListMine)
		r.Get("/{id}", h.Get)
		r.Get("/{id}/receipt", h.Receipt)
		r.Patch("/{id}/cancel", h.Cancel)
		r.Post("/{id}/refund", h.RequestRefund)
	})

	r.Group(func(r chi.Router) {
		r.Use(staffOnly)
		r.Get("/", h.List)
		r.Patch("/{id}/status", h.UpdateStatus)
		r.Patch("/{id}/refund/approve", h.ApproveRefund)
		r.Patch("/{id}/refund/reject", h.RejectRefund)
	})

	return r
}
