package promotion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/splus/splus-api/internal/pkg/studioapi"
)

type applyBackend struct {
	calls int32
	last  ApplyRequest
}

func (b *applyBackend) client(t *testing.T) *studioapi.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/promotions/apply", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.calls, 1)
		_ = json.NewDecoder(r.Body).Decode(&b.last)
		switch b.last.Code {
		case "SUMMER10":
			_, _ = w.Write([]byte(`{"success":true,"data":{"promotionId":"p1","discountAmount":100000}}`))
		case "RULEONLY":
			_, _ = w.Write([]byte(`{"success":true,"data":{"promotion":{"_id":"p2","code":"RULEONLY","discountType":"fixed","discountValue":50000}}}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"success":false,"message":"Mã khuyến mãi đã hết hạn"}`))
		}
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return studioapi.NewClient(server.URL+"/api", time.Second, "", studioapi.Messages("en"))
}

func TestApplyNormalizesCode(t *testing.T) {
	backend := &applyBackend{}
	svc := NewService(NewRepository(backend.client(t)), nil)

	result, err := svc.Apply(context.Background(), "tok", "  summer10 ", 1_350_000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.last.Code != "SUMMER10" || backend.last.OrderValue != 1_350_000 {
		t.Fatalf("unexpected apply payload: %#v", backend.last)
	}
	if result.ID() != "p1" || result.Code != "SUMMER10" {
		t.Fatalf("unexpected result: %#v", result)
	}
	if amount, estimated := result.Discount(1_350_000); amount != 100000 || estimated {
		t.Fatalf("expected backend amount, got %v estimated=%v", amount, estimated)
	}
}

func TestApplyRejectsLocally(t *testing.T) {
	cases := []struct {
		name     string
		code     string
		subtotal float64
	}{
		{"empty code", "   ", 1000},
		{"zero subtotal", "SUMMER10", 0},
		{"negative subtotal", "SUMMER10", -5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backend := &applyBackend{}
			svc := NewService(NewRepository(backend.client(t)), nil)

			_, err := svc.Apply(context.Background(), "tok", tc.code, tc.subtotal)
			if !studioapi.IsKind(err, studioapi.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if atomic.LoadInt32(&backend.calls) != 0 {
				t.Fatal("expected no backend call")
			}
		})
	}
}

func TestApplySurfacesServerMessage(t *testing.T) {
	backend := &applyBackend{}
	svc := NewService(NewRepository(backend.client(t)), nil)

	_, err := svc.Apply(context.Background(), "tok", "EXPIRED", 1000)
	apiErr, ok := studioapi.AsError(err)
	if !ok {
		t.Fatalf("expected *studioapi.Error, got %v", err)
	}
	if apiErr.Kind != studioapi.KindBusinessRule || apiErr.Message != "Mã khuyến mãi đã hết hạn" {
		t.Fatalf("unexpected error: %#v", apiErr)
	}
}

func TestDiscountEstimatedFromRule(t *testing.T) {
	backend := &applyBackend{}
	svc := NewService(NewRepository(backend.client(t)), nil)

	result, err := svc.Apply(context.Background(), "", "ruleonly", 30000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ID() != "p2" {
		t.Fatalf("expected id from rule, got %q", result.ID())
	}
	amount, estimated := result.Discount(30000)
	if amount != 30000 || !estimated {
		t.Fatalf("expected fixed discount clamped to subtotal, got %v estimated=%v", amount, estimated)
	}
}

func TestCreateRejectsReversedDates(t *testing.T) {
	svc := NewService(nil, nil)
	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	if _, err := svc.Create(context.Background(), "tok", &UpsertRequest{Code: "x", StartDate: &start, EndDate: &end}); err != ErrInvalidDateRange {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}
