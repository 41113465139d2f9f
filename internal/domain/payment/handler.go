package payment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/splus/splus-api/internal/middleware"
	"github.com/splus/splus-api/internal/pkg/errorhandler"
	"github.com/splus/splus-api/internal/pkg/qr"
	"github.com/splus/splus-api/internal/pkg/response"
	"github.com/splus/splus-api/internal/pkg/validator"
)

// Handler handles payment HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates payment handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/v1/payments
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		errorhandler.LogValidationError(r.Context(), errs)
		response.ValidationError(w, errs)
		return
	}

	checkout, err := h.service.Create(r.Context(), middleware.GetToken(r.Context()), &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.Created(w, checkout)
}

// Get handles GET /api/v1/payments/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, p)
}

// ListByBooking handles GET /api/v1/payments/booking/{bookingId}
func (h *Handler) ListByBooking(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListByBooking(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "bookingId"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, items)
}

// QR handles GET /api/v1/payments/qr?data=...&size=...
func (h *Handler) QR(w http.ResponseWriter, r *http.Request) {
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	png, err := h.service.QR(r.URL.Query().Get("data"), size)
	if err != nil {
		if errors.Is(err, qr.ErrEmptyContent) {
			response.BadRequest(w, "data is required")
			return
		}
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	response.Binary(w, "image/png", png)
}

// Success handles GET /api/v1/payments/return
func (h *Handler) Success(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.service.Landing(r.Context(), r.URL.Query(), false))
}

// Cancel handles GET /api/v1/payments/cancel
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.service.Landing(r.Context(), r.URL.Query(), true))
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrPaymentNotFound):
		response.NotFound(w, "Payment not found")
	case errors.Is(err, ErrAlreadyPaid):
		response.Conflict(w, "Booking is already paid")
	case errors.Is(err, ErrNoCheckoutURL):
		response.Error(w, http.StatusBadGateway, "PAYMENT_UNAVAILABLE", "Payment gateway did not return a checkout link")
	default:
		errorhandler.HandleError(r.Context(), w, err)
	}
}
