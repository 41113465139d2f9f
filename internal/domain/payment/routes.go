package payment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns payment router.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// Public
	r.Get("/qr", h.QR)
	r.Get("/return", h.Success)
	r.Get("/cancel", h.Cancel)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
		r.Get("/booking/{bookingId}", h.ListByBooking)
		r.Get("/{id}", h.Get)
	})

	return r
}
