package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/splus/splus-api/internal/pkg/studioapi"
)

const paidBooking = `{"success":true,"data":{
	"_id":"b1",
	"userId":{"_id":"u1","fullName":"Nguyen Van A","email":"a@example.com"},
	"studioId":{"_id":"s1","name":"White Room"},
	"startTime":"2026-10-20T09:00:00Z","endTime":"2026-10-20T11:00:00Z",
	"equipment":[{"id":"e1","name":"Profoto B10","quantity":1,"unitPrice":100000}],
	"services":[{"id":"sv1","name":"Makeup","quantity":1,"unitPrice":150000}],
	"promoCode":"SUMMER10","subtotal":1350000,"discountAmount":100000,"finalAmount":1250000,
	"status":"confirmed","paymentStatus":"paid"}}`

func newBackend(t *testing.T, seen *[]string) *studioapi.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bookings/b1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(paidBooking))
	})
	mux.HandleFunc("/api/bookings/b2", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"_id":"b2","studioId":"s1","status":"pending","paymentStatus":"unpaid"}}`))
	})
	mux.HandleFunc("/api/bookings/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"Không tìm thấy"}`))
	})
	mux.HandleFunc("/api/bookings/b1/", func(w http.ResponseWriter, r *http.Request) {
		*seen = append(*seen, r.Method+" "+r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"data":{"_id":"b1","studioId":"s1","status":"cancelled"}}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return studioapi.NewClient(server.URL+"/api", time.Second, "", nil)
}

func TestRefRawIDAndPopulated(t *testing.T) {
	var b struct {
		A Ref `json:"a"`
		B Ref `json:"b"`
		C Ref `json:"c"`
	}
	raw := `{"a":"s1","b":{"_id":"s2","name":"Loft"},"c":null}`
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b.A.ID != "s1" || b.B.ID != "s2" || b.B.Name != "Loft" || b.C.ID != "" {
		t.Fatalf("unexpected refs: %#v", b)
	}
}

func TestSubPathsAreNotEscaped(t *testing.T) {
	var seen []string
	svc := NewService(NewRepository(newBackend(t, &seen)), "")

	if _, err := svc.ApproveRefund(context.Background(), "tok", "b1"); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := svc.Cancel(context.Background(), "tok", "b1", &CancelRequest{}); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := svc.RequestRefund(context.Background(), "tok", "b1", &RefundRequest{Reason: "sick"}); err != nil {
		t.Fatalf("refund: %v", err)
	}

	want := []string{
		"PATCH /api/bookings/b1/refund/approve",
		"PATCH /api/bookings/b1/cancel",
		"POST /api/bookings/b1/refund-request",
	}
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, seen)
		}
	}
}

func TestRequestRefundRequiresPayment(t *testing.T) {
	var seen []string
	svc := NewService(NewRepository(newBackend(t, &seen)), "")

	if _, err := svc.RequestRefund(context.Background(), "tok", "b2", &RefundRequest{}); !errors.Is(err, ErrNotRefundable) {
		t.Fatalf("expected ErrNotRefundable, got %v", err)
	}
}

func TestGetMapsNotFound(t *testing.T) {
	var seen []string
	svc := NewService(NewRepository(newBackend(t, &seen)), "")

	if _, err := svc.Get(context.Background(), "tok", "missing"); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestReceipt(t *testing.T) {
	var seen []string
	svc := NewService(NewRepository(newBackend(t, &seen)), "https://splus.example.com/")

	b, pdf, err := svc.Receipt(context.Background(), "tok", "b1")
	if err != nil {
		t.Fatalf("receipt: %v", err)
	}
	if b.Customer.Name != "Nguyen Van A" || b.Studio.Name != "White Room" {
		t.Fatalf("populated refs not decoded: %#v", b)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("expected PDF bytes")
	}
}

func TestBuildReceiptRoomLine(t *testing.T) {
	start := time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)
	rc := BuildReceipt(&Booking{
		ID:        "b1",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Equipment: []Item{{ID: "e1", Quantity: 1, UnitPrice: 100000}},
		Services:  []Item{{ID: "sv1", Name: "Makeup", Quantity: 1, UnitPrice: 150000}},
		Subtotal:  1_350_000,
	})

	if len(rc.Lines) != 3 {
		t.Fatalf("expected room plus two items, got %#v", rc.Lines)
	}
	if rc.Lines[0].Amount != 1_000_000 || rc.Lines[0].Label != "Studio room (2h)" {
		t.Fatalf("unexpected room line: %#v", rc.Lines[0])
	}
	if rc.Lines[1].Amount != 200_000 || rc.Lines[1].Label != "e1" {
		t.Fatalf("expected hourly equipment amount, got %#v", rc.Lines[1])
	}
	if rc.Lines[2].Amount != 150_000 {
		t.Fatalf("expected per-use service amount, got %#v", rc.Lines[2])
	}
}
