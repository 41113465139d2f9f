package draft

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splus/splus-api/internal/domain/studio"
	"github.com/splus/splus-api/internal/middleware"
	"github.com/splus/splus-api/internal/pkg/errorhandler"
	"github.com/splus/splus-api/internal/pkg/response"
	"github.com/splus/splus-api/internal/pkg/validator"
	"github.com/splus/splus-api/internal/pricing"
)

// Handler handles booking draft HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new draft handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/v1/drafts
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid JSON body")
			return
		}
	}

	ctx := r.Context()
	view, err := h.service.Create(ctx, middleware.GetToken(ctx), middleware.GetUserID(ctx), &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.Created(w, view)
}

// Get handles GET /api/v1/drafts/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	view, err := h.service.Get(ctx, middleware.GetToken(ctx), middleware.GetUserID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, view)
}

// SetSchedule handles PUT /api/v1/drafts/{id}/schedule
func (h *Handler) SetSchedule(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if !decode(w, r, &req) {
		return
	}

	ctx := r.Context()
	view, err := h.service.SetSchedule(ctx, middleware.GetToken(ctx), middleware.GetUserID(ctx), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, view)
}

// SetLine handles PUT /api/v1/drafts/{id}/lines
func (h *Handler) SetLine(w http.ResponseWriter, r *http.Request) {
	var req LineRequest
	if !decode(w, r, &req) {
		return
	}

	ctx := r.Context()
	view, err := h.service.SetLine(ctx, middleware.GetToken(ctx), middleware.GetUserID(ctx), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, view)
}

// RemoveLine handles DELETE /api/v1/drafts/{id}/lines/{kind}/{refId}
func (h *Handler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	kind := pricing.LineKind(chi.URLParam(r, "kind"))
	if kind != pricing.KindEquipment && kind != pricing.KindService {
		response.BadRequest(w, "kind must be equipment or service")
		return
	}

	ctx := r.Context()
	view, err := h.service.RemoveLine(ctx, middleware.GetToken(ctx), middleware.GetUserID(ctx), chi.URLParam(r, "id"), kind, chi.URLParam(r, "refId"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, view)
}

// ApplyPromotion handles POST /api/v1/drafts/{id}/promotion
func (h *Handler) ApplyPromotion(w http.ResponseWriter, r *http.Request) {
	var req PromotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	ctx := r.Context()
	view, err := h.service.ApplyPromotion(ctx, middleware.GetToken(ctx), middleware.GetUserID(ctx), chi.URLParam(r, "id"), req.Code)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, view)
}

// RemovePromotion handles DELETE /api/v1/drafts/{id}/promotion
func (h *Handler) RemovePromotion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	view, err := h.service.RemovePromotion(ctx, middleware.GetToken(ctx), middleware.GetUserID(ctx), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, view)
}

// Submit handles POST /api/v1/drafts/{id}/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if r.ContentLength != 0 && !decode(w, r, &req) {
		return
	}

	ctx := r.Context()
	b, err := h.service.Submit(ctx, middleware.GetToken(ctx), middleware.GetUserID(ctx), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.Created(w, b)
}

// Discard handles DELETE /api/v1/drafts/{id}
func (h *Handler) Discard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.service.Discard(ctx, middleware.GetUserID(ctx), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}
	response.NoContent(w)
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrDraftNotFound):
		response.NotFound(w, "Draft not found")
	case errors.Is(err, studio.ErrStudioNotFound):
		response.NotFound(w, "Studio not found")
	case errors.Is(err, ErrOfferNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrInvalidTimeRange):
		response.ValidationError(w, map[string]string{"endTime": err.Error()})
	case errors.Is(err, ErrStartInPast):
		response.ValidationError(w, map[string]string{"startTime": err.Error()})
	case errors.Is(err, ErrPartialSchedule):
		response.ValidationError(w, map[string]string{"studioId": err.Error()})
	case errors.Is(err, ErrIncompleteDraft):
		response.ValidationError(w, map[string]string{"schedule": err.Error()})
	case errors.Is(err, ErrOfferUnavailable), errors.Is(err, studio.ErrStudioUnavailable):
		response.Conflict(w, err.Error())
	default:
		errorhandler.HandleError(r.Context(), w, err)
	}
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
