package studioapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type studio struct {
	ID               string  `json:"_id"`
	Name             string  `json:"name"`
	BasePricePerHour float64 `json:"basePricePerHour"`
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/api", time.Second, "SPlus/1.0 test", Messages("en"))
}

func TestDoUnwrapsEnvelopeAndAttachesToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/studios/s1" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Header.Get("User-Agent") != "SPlus/1.0 test" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"_id":"s1","name":"Studio A","basePricePerHour":500000}}`))
	})

	var out studio
	err := client.Do(context.Background(), Request{Path: "/studios/s1", Token: "test-token", Module: "studios"}, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != "s1" || out.BasePricePerHour != 500000 {
		t.Fatalf("unexpected payload: %#v", out)
	}
}

func TestDoOmitsAuthorizationWhenAnonymous(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"_id":"s1","name":"bare"}`))
	})

	var out studio
	if err := client.Do(context.Background(), Request{Path: "/studios/s1"}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Name != "bare" {
		t.Fatalf("expected unwrapped bare body, got %#v", out)
	}
}

func TestDoSendsJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if !strings.Contains(string(body), `"code":"SALE10"`) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})

	err := client.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/promotions/apply",
		Body:   map[string]any{"code": "SALE10"},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestErrorMessageFromBackendBody(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		kind    Kind
		message string
	}{
		{"message field", http.StatusBadRequest, `{"success":false,"message":"Mã đã hết hạn"}`, KindBusinessRule, "Mã đã hết hạn"},
		{"error object", http.StatusConflict, `{"success":false,"error":{"code":"OVERBOOKING","message":"slot taken"}}`, KindBusinessRule, "slot taken"},
		{"error string", http.StatusForbidden, `{"error":"forbidden"}`, KindBusinessRule, "forbidden"},
		{"unauthorized", http.StatusUnauthorized, `{"message":"jwt expired"}`, KindAuth, "jwt expired"},
		{"no body", http.StatusInternalServerError, ``, KindBusinessRule, "Invalid promotion code"},
		{"success false on 200", http.StatusOK, `{"success":false,"message":"usage limit reached"}`, KindBusinessRule, "usage limit reached"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			err := client.Do(context.Background(), Request{Path: "/promotions/apply", Module: "promotions"}, nil)
			apiErr, ok := AsError(err)
			if !ok {
				t.Fatalf("expected *Error, got %v", err)
			}
			if apiErr.Kind != tc.kind {
				t.Fatalf("expected kind %s, got %s", tc.kind, apiErr.Kind)
			}
			if apiErr.Message != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, apiErr.Message)
			}
		})
	}
}

func TestErrorCodeFromBackendBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"code":"OVERBOOKING","message":"slot taken","details":{"slot":"09:00"}}}`))
	})

	err := client.Do(context.Background(), Request{Path: "/bookings"}, nil)
	apiErr, _ := AsError(err)
	if apiErr == nil || apiErr.Code != "OVERBOOKING" || apiErr.Status != http.StatusConflict {
		t.Fatalf("unexpected error: %#v", apiErr)
	}
	if apiErr.Details["slot"] != "09:00" {
		t.Fatalf("expected details to survive, got %#v", apiErr.Details)
	}
}

func TestTimeoutClassifiedAsNetwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, 20*time.Millisecond, "", nil)
	err := client.Do(context.Background(), Request{Path: "/studios"}, nil)
	apiErr, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Kind != KindNetwork || !apiErr.Timeout {
		t.Fatalf("expected network timeout, got %#v", apiErr)
	}
}

func TestUnreachableBackendIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, time.Second, "", nil)
	err := client.Do(context.Background(), Request{Path: "/studios"}, nil)
	if !IsKind(err, KindNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
	apiErr, _ := AsError(err)
	if !IsNetworkError(apiErr.Err) {
		t.Fatalf("expected dial error to be recognised, got %v", apiErr.Err)
	}
}

func TestMultipartForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.FormValue("category") != "wedding" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		files := r.MultipartForm.File["images"]
		if len(files) != 1 || files[0].Filename != "ref.jpg" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})

	err := client.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/upload/images",
		Form: &Form{
			Fields: map[string]string{"category": "wedding"},
			Files:  []File{{Field: "images", Name: "ref.jpg", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8}}},
		},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
