package errorhandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/splus/splus-api/internal/pkg/response"
	"github.com/splus/splus-api/internal/pkg/studioapi"
)

func TestHandleErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", studioapi.Validation("empty code", nil), http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"auth", &studioapi.Error{Kind: studioapi.KindAuth, Status: 401, Message: "expired"}, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"timeout", &studioapi.Error{Kind: studioapi.KindNetwork, Timeout: true, Message: "slow"}, http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT"},
		{"unreachable", &studioapi.Error{Kind: studioapi.KindNetwork, Message: "down"}, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE"},
		{"business 4xx", &studioapi.Error{Kind: studioapi.KindBusinessRule, Status: 409, Code: "OVERBOOKING", Message: "taken"}, http.StatusConflict, "OVERBOOKING"},
		{"business 5xx", &studioapi.Error{Kind: studioapi.KindBusinessRule, Status: 500, Message: "boom"}, http.StatusBadGateway, "BUSINESS_RULE"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleError(context.Background(), w, tc.err)

			if w.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, w.Code)
			}
			var body response.Response
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if body.Success || body.Error == nil || body.Error.Code != tc.code {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}
}

func TestHandleErrorKeepsBackendMessage(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(context.Background(), w, &studioapi.Error{Kind: studioapi.KindBusinessRule, Status: 400, Message: "Mã khuyến mãi đã hết hạn"})

	var body response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Error.Message != "Mã khuyến mãi đã hết hạn" || body.Error.Kind != "business_rule" {
		t.Fatalf("expected verbatim message, got %#v", body.Error)
	}
}
