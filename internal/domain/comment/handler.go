package comment

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

// Handler handles comment HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates comment handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/v1/comments
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	c, err := h.service.Create(r.Context(), middleware.GetToken(r.Context()), &req)
	if err != nil {
		errorhandler.HandleError(r.Context(), w, err)
		return
	}
	response.Created(w, c)
}

// ListByTarget handles GET /api/v1/comments?targetType=studio&targetId=X
func (h *Handler) ListByTarget(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, summary, err := h.service.List(r.Context(), TargetType(q.Get("targetType")), q.Get("targetId"), studioapi.QueryFromRequest(r))
	if err != nil {
		if errors.Is(err, ErrInvalidTarget) {
			response.BadRequest(w, "targetType (studio|setDesign) and targetId are required")
			return
		}
		errorhandler.HandleError(r.Context(), w, err)
		return
	}

	response.OK(w, map[string]interface{}{
		"items":   page.Items,
		"summary": summary,
		"meta":    response.NewMeta(page.Total, page.Page, page.Limit),
	})
}

// Delete handles DELETE /api/v1/comments/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	err := h.service.Delete(ctx, middleware.GetToken(ctx), middleware.GetUserID(ctx), middleware.GetRole(ctx), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		response.NoContent(w)
	case errors.Is(err, ErrCommentNotFound):
		response.NotFound(w, "Comment not found")
	case errors.Is(err, ErrNotAuthor):
		response.Forbidden(w, ErrNotAuthor.Error())
	default:
		errorhandler.HandleError(ctx, w, err)
	}
}

// Routes returns comment routes.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListByTarget)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
