package setdesign

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

// Handler handles set design HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new set design handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/set-designs
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := studioapi.QueryFromRequest(r, "search", "category", "minPrice", "maxPrice", "sort")
	page, err := h.service.List(r.Context(), middleware.GetToken(r.Context()), q)
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.WithMeta(w, page.Items, response.NewMeta(page.Total, page.Page, page.Limit))
}

// Get handles GET /api/v1/set-designs/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sd, err := h.service.Get(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, sd)
}

// Create handles POST /api/v1/set-designs (admin)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req UpsertRequest
	if !decode(w, r, &req) {
		return
	}
	sd, err := h.service.Create(r.Context(), middleware.GetToken(r.Context()), &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.Created(w, sd)
}

// Update handles PUT /api/v1/set-designs/{id} (admin)
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpsertRequest
	if !decode(w, r, &req) {
		return
	}
	sd, err := h.service.Update(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, sd)
}

// Delete handles DELETE /api/v1/set-designs/{id} (admin)
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}
	response.NoContent(w)
}

// Chat handles POST /api/v1/set-designs/ai-chat
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !decode(w, r, &req) {
		return
	}
	reply, err := h.service.Chat(r.Context(), middleware.GetToken(r.Context()), &req)
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.OK(w, reply)
}

// Generate handles POST /api/v1/set-designs/ai-generate-design
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if !decode(w, r, &req) {
		return
	}
	reply, err := h.service.Generate(r.Context(), middleware.GetToken(r.Context()), &req)
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.OK(w, reply)
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrSetDesignNotFound) {
		response.NotFound(w, "Set design not found")
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
