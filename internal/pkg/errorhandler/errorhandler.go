package errorhandler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/splus/splus-api/internal/pkg/logger"
	"github.com/splus/splus-api/internal/pkg/response"
	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// HandleError writes err using the client error taxonomy and logs it.
// Errors that are not *studioapi.Error are reported as 500.
func HandleError(ctx context.Context, w http.ResponseWriter, err error) {
	apiErr, ok := studioapi.AsError(err)
	if !ok {
		logger.FromContext(ctx).Error().Err(err).Msg("Request error")
		response.InternalError(w)
		return
	}

	status, code := StatusFor(apiErr)

	event := logger.FromContext(ctx).Warn()
	if apiErr.Kind == studioapi.KindNetwork {
		event = logger.FromContext(ctx).Error()
	}
	event.
		Str("error_kind", string(apiErr.Kind)).
		Str("error_code", code).
		Str("error_message", apiErr.Message).
		Int("status_code", status).
		Int("upstream_status", apiErr.Status).
		Err(apiErr.Err).
		Msg("Request error")

	response.ErrorInfoResponse(w, status, &response.ErrorInfo{
		Code:    code,
		Kind:    string(apiErr.Kind),
		Message: apiErr.Message,
		Details: apiErr.Details,
	})
}

// StatusFor maps an error kind onto the gateway's HTTP status and code.
func StatusFor(apiErr *studioapi.Error) (int, string) {
	switch apiErr.Kind {
	case studioapi.KindValidation:
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR"
	case studioapi.KindAuth:
		return http.StatusUnauthorized, "UNAUTHORIZED"
	case studioapi.KindNetwork:
		if apiErr.Timeout {
			return http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT"
		}
		return http.StatusBadGateway, "UPSTREAM_UNAVAILABLE"
	default:
		code := apiErr.Code
		if code == "" {
			code = "BUSINESS_RULE"
		}
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			return apiErr.Status, code
		}
		if apiErr.Status == 0 {
			return http.StatusUnprocessableEntity, code
		}
		return http.StatusBadGateway, code
	}
}

// LogValidationError logs validation errors with details
func LogValidationError(ctx context.Context, fieldErrors map[string]string) {
	errJSON, _ := json.Marshal(fieldErrors)
	logger.FromContext(ctx).Warn().
		RawJSON("validation_errors", errJSON).
		Msg("Validation error")
}
