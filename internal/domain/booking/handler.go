package booking

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

// Handler handles booking HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new booking handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListMine handles GET /api/v1/bookings/my
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	q := studioapi.QueryFromRequest(r, "status")
	page, err := h.service.ListMine(r.Context(), middleware.GetToken(r.Context()), q)
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.WithMeta(w, page.Items, response.NewMeta(page.Total, page.Page, page.Limit))
}

// List handles GET /api/v1/bookings (staff)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := studioapi.QueryFromRequest(r, "status", "studioId", "userId", "from", "to", "search")
	page, err := h.service.List(r.Context(), middleware.GetToken(r.Context()), q)
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.WithMeta(w, page.Items, response.NewMeta(page.Total, page.Page, page.Limit))
}

// Get handles GET /api/v1/bookings/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, b)
}

// Cancel handles PATCH /api/v1/bookings/{id}/cancel
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req CancelRequest
	if r.ContentLength != 0 {
		if !decode(w, r, &req) {
			return
		}
	}
	b, err := h.service.Cancel(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, b)
}

// UpdateStatus handles PATCH /api/v1/bookings/{id}/status (staff)
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if !decode(w, r, &req) {
		return
	}
	b, err := h.service.UpdateStatus(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, b)
}

// RequestRefund handles POST /api/v1/bookings/{id}/refund
func (h *Handler) RequestRefund(w http.ResponseWriter, r *http.Request) {
	var req RefundRequest
	if !decode(w, r, &req) {
		return
	}
	b, err := h.service.RequestRefund(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, b)
}

// ApproveRefund handles PATCH /api/v1/bookings/{id}/refund/approve (staff)
func (h *Handler) ApproveRefund(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.ApproveRefund(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, b)
}

// RejectRefund handles PATCH /api/v1/bookings/{id}/refund/reject (staff)
func (h *Handler) RejectRefund(w http.ResponseWriter, r *http.Request) {
	var req RefundDecision
	if r.ContentLength != 0 {
		if !decode(w, r, &req) {
			return
		}
	}
	b, err := h.service.RejectRefund(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, b)
}

// Receipt handles GET /api/v1/bookings/{id}/receipt
func (h *Handler) Receipt(w http.ResponseWriter, r *http.Request) {
	b, pdf, err := h.service.Receipt(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.Inline(w, "splus-booking-"+b.ID+".pdf", "application/pdf", pdf)
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		response.NotFound(w, "Booking not found")
	case errors.Is(err, ErrNotRefundable):
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
