package upload

import (
	"errors"
	"net/http"

	"github.com/splus/splus-api/internal/middleware"
	"github.com/splus/splus-api/internal/pkg/errorhandler"
	"github.com/splus/splus-api/internal/pkg/imaging"
	"github.com/splus/splus-api/internal/pkg/response"
)

// Handler handles upload HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates upload handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Images handles POST /api/v1/upload/images
// Accepts files under "images" or "image".
func (h *Handler) Images(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.service.Processor().MaxBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes*MaxFiles)

	files, err := ReadFiles(r, maxBytes, "images", "image")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	images, err := h.service.UploadImages(r.Context(), middleware.GetToken(r.Context()), r.FormValue("folder"), files)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	response.Created(w, map[string]interface{}{
		"images": images,
		"urls":   URLs(images),
	})
}

// WriteError maps upload and imaging errors onto responses.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNoFiles), errors.Is(err, ErrInvalidUpload):
		response.BadRequest(w, err.Error())
	case errors.Is(err, ErrTooManyFiles):
		response.ValidationError(w, map[string]string{"images": "at most 10 files"})
	case errors.Is(err, imaging.ErrTooLarge):
		response.Error(w, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
	case errors.Is(err, imaging.ErrUnsupportedType):
		response.Error(w, http.StatusUnsupportedMediaType, "UNSUPPORTED_TYPE", err.Error())
	default:
		errorhandler.HandleError(r.Context(), w, err)
	}
}
