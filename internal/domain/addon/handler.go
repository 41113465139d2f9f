package addon

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splus/splus-api/internal/middleware"
	"github.com/splus/splus-api/internal/pkg/errorhandler"
	"github.com/splus/splus-api/internal/pkg/response"
	"github.com/splus/splus-api/internal/pkg/studioapi"
	"github.com/splus/splus-api/internal/pkg/validator"
)

// Handler handles add-on service HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new add-on service handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/services
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := studioapi.QueryFromRequest(r, "search", "active")
	page, err := h.service.List(r.Context(), middleware.GetToken(r.Context()), q)
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.WithMeta(w, page.Items, response.NewMeta(page.Total, page.Page, page.Limit))
}

// Get handles GET /api/v1/services/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.service.Get(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.OK(w, e)
}

// Create handles POST /api/v1/services (admin)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeUpsert(w, r)
	if !ok {
		return
	}
	e, err := h.service.Create(r.Context(), middleware.GetToken(r.Context()), req)
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.Created(w, e)
}

// Update handles PUT /api/v1/services/{id} (admin)
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeUpsert(w, r)
	if !ok {
		return
	}
	e, err := h.service.Update(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"), req)
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.OK(w, e)
}

// Delete handles DELETE /api/v1/services/{id} (admin)
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id")); err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.NoContent(w)
}

func decodeUpsert(w http.ResponseWriter, r *http.Request) (*UpsertRequest, bool) {
	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return nil, false
	}
	if errs := validator.Validate(&req); errs != nil {
		errorhandler.LogValidationError(r.Context(), errs)
		response.ValidationError(w, errs)
		return nil, false
	}
	return &req, true
}
