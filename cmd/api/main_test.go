package main

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/splus/splus-api/internal/config"
	"github.com/splus/splus-api/internal/pkg/jwt"
)

const testSecret = "test-secret"

func testRouter(t *testing.T) (http.Handler, *int32) {
	t.Helper()
	var calls int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"success":true,"data":[{"_id":"s1","name":"Studio A","basePricePerHour":500000}]}`))
	}))
	t.Cleanup(backend.Close)

	cfg := &config.Config{
		Env:                   "test",
		JWTSecret:             testSecret,
		AllowedOrigins:        []string{"http://localhost:3000"},
		BackendBaseURL:        backend.URL + "/api",
		BackendTimeoutSeconds: 2,
		MessageLocale:         "en",
		CatalogRefresh:        time.Minute,
		DraftTTL:              time.Hour,
		PublicURL:             "http://localhost:8080",
		QRSize:                256,
	}
	router, _ := newRouter(cfg, nil)
	return router, &calls
}

func token(t *testing.T, role string) string {
	t.Helper()
	tok, err := jwt.NewService(testSecret, time.Hour).Sign("u1", role, "")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return "Bearer " + tok
}

func TestRoutes(t *testing.T) {
	router, calls := testRouter(t)

	cases := []struct {
		name   string
		method string
		path   string
		auth   string
		want   int
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"public studios", http.MethodGet, "/api/v1/studios", "", http.StatusOK},
		{"drafts need auth", http.MethodPost, "/api/v1/drafts", "", http.StatusUnauthorized},
		{"staff booking list as customer", http.MethodGet, "/api/v1/bookings", token(t, jwt.RoleCustomer), http.StatusForbidden},
		{"staff booking list as staff", http.MethodGet, "/api/v1/bookings", token(t, jwt.RoleStaff), http.StatusOK},
		{"admin customer status as staff", http.MethodPatch, "/api/v1/admin/customers/u2/status", token(t, jwt.RoleStaff), http.StatusForbidden},
		{"payment qr is public", http.MethodGet, "/api/v1/payments/qr?data=hello", "", http.StatusOK},
		{"reports need auth", http.MethodGet, "/api/v1/reports/revenue", "", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rr.Code, rr.Body.String())
			}
		})
	}

	if atomic.LoadInt32(calls) == 0 {
		t.Fatal("expected backend to be called for proxied routes")
	}
}
