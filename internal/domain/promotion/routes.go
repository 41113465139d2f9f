package promotion

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns promotion router.
func (h *Handler) Routes(optionalAuth, adminOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(optionalAuth)
		r.Get("/active", h.ListActive)
		r.Post("/apply", h.Apply)
	})

	r.Group(func(r chi.Router) {
		r.Use(adminOnly)
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Patch("/{id}/toggle", h.Toggle)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
