package customer

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splus/splus-api/internal/middleware"
	"github.com/splus/splus-api/internal/pkg/errorhandler"
	"github.com/splus/splus-api/internal/pkg/response"
	"github.com/splus/splus-api/internal/pkg/studioapi"
	"github.com/splus/splus-api/internal/pkg/validator"
)

// Handler handles customer HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates customer handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/admin/customers
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), middleware.GetToken(r.Context()), studioapi.QueryFromRequest(r, "search", "isActive", "sort"))
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.WithMeta(w, page.Items, response.NewMeta(page.Total, page.Page, page.Limit))
}

// Get handles GET /api/v1/admin/customers/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, c)
}

// UpdateStatus handles PATCH /api/v1/admin/customers/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if !decode(w, r, &req) {
		return
	}
	c, err := h.service.UpdateStatus(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, c)
}

// Me handles GET /api/v1/users/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Me(r.Context(), middleware.GetToken(r.Context()))
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.OK(w, c)
}

// UpdateMe handles PUT /api/v1/users/me
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if !decode(w, r, &req) {
		return
	}
	c, err := h.service.UpdateMe(r.Context(), middleware.GetToken(r.Context()), &req)
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.OK(w, c)
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrCustomerNotFound) {
		response.NotFound(w, "Customer not found")
		return
	}
	errorhandler.HandleError(r.Context(), w, err)
}

func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return false
	}
	if errs := validator.Validate(dst); errs != nil {
		errorhandler.LogValidationError(r.Context(), errs)
		response.ValidationError(w, errs)
		return false
	}
	return true
}

// AdminRoutes returns the staff customer router.
func (h *Handler) AdminRoutes(staffOnly, adminOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(staffOnly)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
	})

	r.Group(func(r chi.Router) {
		r.Use(adminOnly)
		r.Patch("/{id}/status", h.UpdateStatus)
	})

	return r
}

// ProfileRoutes returns the current user router.
func (h *Handler) ProfileRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)
	r.Get("/me", h.Me)
	r.Put("/me", h.UpdateMe)
	return r
}
