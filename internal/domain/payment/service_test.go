package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/splus/splus-api/internal/pkg/studioapi"
)

func newTestService(t *testing.T, body string, got *map[string]any) *Service {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/payments/create" {
			http.NotFound(w, r)
			return
		}
		if got != nil {
			_ = json.NewDecoder(r.Body).Decode(got)
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client := studioapi.NewClient(server.URL+"/api", time.Second, "", nil)
	return NewService(NewRepository(client), Config{
		PublicURL:   "https://api.splus.test/",
		FrontendURL: "https://splus.test",
		QRSize:      300,
	})
}

func TestCreateBuildsLocalQRURL(t *testing.T) {
	var sent map[string]any
	svc := newTestService(t,
		`{"success":true,"data":{"_id":"p1","bookingId":"b1","orderCode":"123","amount":1250000,"status":"PENDING","checkoutUrl":"https://pay.example/c/123"}}`,
		&sent)

	checkout, err := svc.Create(context.Background(), "tok", &CreateRequest{BookingID: "b1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	u, err := url.Parse(checkout.QRImageURL)
	if err != nil {
		t.Fatalf("parse qr url: %v", err)
	}
	if u.Host != "api.splus.test" || u.Path != QRPath {
		t.Fatalf("unexpected qr url %s", checkout.QRImageURL)
	}
	if u.Query().Get("data") != "https://pay.example/c/123" || u.Query().Get("size") != "300" {
		t.Fatalf("unexpected qr query %v", u.Query())
	}
	if sent["returnUrl"] != "https://splus.test/payment/success" || sent["cancelUrl"] != "https://splus.test/payment/cancel" {
		t.Fatalf("expected default landing urls, got %v", sent)
	}
}

func TestCreatePrefersGatewayQRPayload(t *testing.T) {
	svc := newTestService(t,
		`{"success":true,"data":{"_id":"p1","status":"pending","checkoutUrl":"https://pay.example/c/1","qrCode":"000201010212"}}`,
		nil)

	checkout, err := svc.Create(context.Background(), "tok", &CreateRequest{BookingID: "b1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	u, _ := url.Parse(checkout.QRImageURL)
	if u.Query().Get("data") != "000201010212" {
		t.Fatalf("expected qr payload, got %s", u.Query().Get("data"))
	}
}

func TestCreateFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"no checkout", `{"success":true,"data":{"_id":"p1","status":"pending"}}`, ErrNoCheckoutURL},
		{"already paid", `{"success":true,"data":{"_id":"p1","status":"PAID","checkoutUrl":"x"}}`, ErrAlreadyPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t, tc.body, nil)
			if _, err := svc.Create(context.Background(), "tok", &CreateRequest{BookingID: "b1"}); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestQRHandler(t *testing.T) {
	h := NewHandler(NewService(nil, Config{QRSize: 200}))

	rec := httptest.NewRecorder()
	h.QR(rec, httptest.NewRequest(http.MethodGet, "/qr?data=https%3A%2F%2Fpay.example%2Fc%2F1", nil))
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Header().Get("Content-Type"))
	}
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if img.Bounds().Dx() != 200 {
		t.Fatalf("expected configured size 200, got %d", img.Bounds().Dx())
	}

	rec = httptest.NewRecorder()
	h.QR(rec, httptest.NewRequest(http.MethodGet, "/qr", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without data, got %d", rec.Code)
	}
}

func TestLandingHandlers(t *testing.T) {
	h := NewHandler(NewService(nil, Config{}))

	rec := httptest.NewRecorder()
	h.Cancel(rec, httptest.NewRequest(http.MethodGet, "/cancel?orderCode=42", nil))

	var resp struct {
		Data struct {
			OrderCode string `json:"orderCode"`
			Status    string `json:"status"`
			Cancelled bool   `json:"cancelled"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.OrderCode != "42" || !resp.Data.Cancelled || resp.Data.Status != "cancelled" {
		t.Fatalf("unexpected outcome %#v", resp.Data)
	}
}
