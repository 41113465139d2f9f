package studio

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

// Handler handles studio HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new studio handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/studios
// Public endpoint.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := studioapi.QueryFromRequest(r, "search", "location", "status", "minPrice", "maxPrice", "sort")

	page, err := h.service.List(r.Context(), middleware.GetToken(r.Context()), q)
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}

	response.WithMeta(w, page.Items, response.NewMeta(page.Total, page.Page, page.Limit))
}

// Get handles GET /api/v1/studios/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.service.Get(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, st)
}

// Create handles POST /api/v1/studios (admin)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		errorhandler.LogValidationError(r.Context(), errs)
		response.ValidationError(w, errs)
		return
	}

	st, err := h.service.Create(r.Context(), middleware.GetToken(r.Context()), &req)
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.Created(w, st)
}

// Update handles PUT /api/v1/studios/{id} (admin)
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		errorhandler.LogValidationError(r.Context(), errs)
		response.ValidationError(w, errs)
		return
	}

	st, err := h.service.Update(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, st)
}

// Delete handles DELETE /api/v1/studios/{id} (admin)
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}
	response.NoContent(w)
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrStudioNotFound) {
		response.NotFound(w, "Studio not found")
		return
	}
	errorhandler.HandleError(r.Context(), w, err)
}
