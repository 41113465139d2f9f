package customdesign

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns custom design router.
func (h *Handler) Routes(authMiddleware, staffOnly, adminOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
		r.Get("/my", h.ListMine)
		r.Get("/{id}", h.Get)
	})

	r.Group(func(r chi.Router) {
		r.Use(staffOnly)
		r.Get("/", h.List)
		r.Patch("/{id}/status", h.UpdateStatus)
		r.Post("/{id}/convert", h.Convert)
	})

	r.Group(func(r chi.Router) {
		r.Use(adminOnly)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
