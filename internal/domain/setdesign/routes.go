package setdesign

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns set design router.
func (h *Handler) Routes(optionalAuth, authMiddleware, adminOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(optionalAuth)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
	})

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/ai-chat", h.Chat)
		r.Post("/ai-generate-design", h.Generate)
	})

	r.Group(func(r chi.Router) {
		r.Use(adminOnly)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
