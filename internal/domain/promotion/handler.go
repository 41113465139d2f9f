package promotion

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

// Handler handles promotion HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new promotion handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListActive handles GET /api/v1/promotions/active
func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListActive(r.Context(), middleware.GetToken(r.Context()), studioapi.QueryFromRequest(r))
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.WithMeta(w, page.Items, response.NewMeta(page.Total, page.Page, page.Limit))
}

// Apply handles POST /api/v1/promotions/apply
// Prices a code against an order value without touching any draft.
func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	result, err := h.service.Apply(r.Context(), middleware.GetToken(r.Context()), req.Code, req.OrderValue)
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}

	discount, estimated := result.Discount(req.OrderValue)
	response.OK(w, map[string]interface{}{
		"promotionId":    result.ID(),
		"code":           result.Code,
		"discountAmount": discount,
		"estimated":      estimated,
		"promotion":      result.Promotion,
	})
}

// List handles GET /api/v1/promotions (admin)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), middleware.GetToken(r.Context()), studioapi.QueryFromRequest(r, "search", "isActive"))
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.WithMeta(w, page.Items, response.NewMeta(page.Total, page.Page, page.Limit))
}

// Get handles GET /api/v1/promotions/{id} (admin)
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	rule, err := h.service.Get(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, rule)
}

// Create handles POST /api/v1/promotions (admin)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeUpsert(w, r)
	if !ok {
		return
	}
	rule, err := h.service.Create(r.Context(), middleware.GetToken(r.Context()), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.Created(w, rule)
}

// Update handles PUT /api/v1/promotions/{id} (admin)
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeUpsert(w, r)
	if !ok {
		return
	}
	rule, err := h.service.Update(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, rule)
}

// Toggle handles PATCH /api/v1/promotions/{id}/toggle (admin)
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	rule, err := h.service.Toggle(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, rule)
}

// Delete handles DELETE /api/v1/promotions/{id} (admin)
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}
	response.NoContent(w)
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrPromotionNotFound):
		response.NotFound(w, "Promotion not found")
	case errors.Is(err, ErrInvalidDateRange):
		response.ValidationError(w, map[string]string{"endDate": err.Error()})
	default:
		errorhandler.HandleError(r.Context(), w, err)
	}
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
