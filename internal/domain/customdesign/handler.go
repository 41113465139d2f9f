package customdesign

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/splus/splus-api/internal/domain/upload"
	"github.com/splus/splus-api/internal/middleware"
	"github.com/splus/splus-api/internal/pkg/errorhandler"
	"github.com/splus/splus-api/internal/pkg/response"
	"github.com/splus/splus-api/internal/pkg/studioapi"
	"github.com/splus/splus-api/internal/pkg/validator"
)

// Handler handles custom design HTTP requests.
type Handler struct {
	service  *Service
	maxBytes int64
}

// NewHandler creates a new custom design handler. maxBytes bounds each image.
func NewHandler(service *Service, maxBytes int64) *Handler {
	return &Handler{service: service, maxBytes: maxBytes}
}

// Create handles POST /api/v1/custom-designs
// Accepts multipart/form-data with referenceImages, or plain JSON without images.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	var files []upload.RawFile

	if isMultipart(r) {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes*upload.MaxFiles)
		var err error
		files, err = upload.ReadFiles(r, h.maxBytes, "referenceImages", "images")
		if err != nil {
			upload.WriteError(w, r, err)
			return
		}
		if err := formRequest(r, &req); err != nil {
			response.ValidationError(w, map[string]string{err.field: err.msg})
			return
		}
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		errorhandler.LogValidationError(r.Context(), errs)
		response.ValidationError(w, errs)
		return
	}

	created, err := h.service.Create(r.Context(), middleware.GetToken(r.Context()), &req, files)
	if err != nil {
		upload.WriteError(w, r, err)
		return
	}
	response.Created(w, created)
}

// ListMine handles GET /api/v1/custom-designs/my
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListMine(r.Context(), middleware.GetToken(r.Context()), studioapi.QueryFromRequest(r, "status"))
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.WithMeta(w, page.Items, response.NewMeta(page.Total, page.Page, page.Limit))
}

// List handles GET /api/v1/custom-designs (staff)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), middleware.GetToken(r.Context()), studioapi.QueryFromRequest(r, "status", "search", "category"))
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.WithMeta(w, page.Items, response.NewMeta(page.Total, page.Page, page.Limit))
}

// Get handles GET /api/v1/custom-designs/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	req, err := h.service.Get(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, req)
}

// UpdateStatus handles PATCH /api/v1/custom-designs/{id}/status (staff)
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if !decode(w, r, &req) {
		return
	}
	updated, err := h.service.UpdateStatus(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.OK(w, updated)
}

// Convert handles POST /api/v1/custom-designs/{id}/convert (staff)
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if r.ContentLength != 0 && !decode(w, r, &req) {
		return
	}
	result, err := h.service.Convert(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	response.Created(w, result)
}

// Delete handles DELETE /api/v1/custom-designs/{id} (admin)
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), middleware.GetToken(r.Context()), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}
	response.NoContent(w)
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrRequestNotFound) {
		response.NotFound(w, "Custom design request not found")
		return
	}
	errorhandler.HandleError(r.Context(), w, err)
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

type fieldError struct {
	field, msg string
}

func formRequest(r *http.Request, req *CreateRequest) *fieldError {
	req.Name = r.FormValue("name")
	req.Email = r.FormValue("email")
	req.Phone = r.FormValue("phone")
	req.Description = r.FormValue("description")
	req.Category = r.FormValue("category")

	if v := r.FormValue("budget"); v != "" {
		budget, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return &fieldError{"budget", "must be a number"}
		}
		req.Budget = budget
	}
	if v := r.FormValue("preferredDate"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			if t, err = time.Parse("2006-01-02", v); err != nil {
				return &fieldError{"preferredDate", "must be a date"}
			}
		}
		req.PreferredDate = &t
	}
	return nil
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
