package report

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splus/splus-api/internal/middleware"
	"github.com/splus/splus-api/internal/pkg/errorhandler"
	"github.com/splus/splus-api/internal/pkg/response"
)

// Handler handles report HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates report handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get handles GET /api/v1/reports/{kind}?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	rep, err := h.service.Get(r.Context(), middleware.GetToken(r.Context()), Kind(chi.URLParam(r, "kind")), r.URL.Query())
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownKind):
			response.NotFound(w, "Report not found")
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidRange), errors.Is(err, ErrRangeTooLong):
			response.ValidationError(w, map[string]string{"range": err.Error()})
		default:
			errorhandler.HandleError(r.Context(), w, err)
		}
		return
	}
	response.OK(w, rep)
}

// Routes returns report router. All reports are staff only.
func (h *Handler) Routes(staffOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(staffOnly)
	r.Get("/{kind}", h.Get)
	return r
}
