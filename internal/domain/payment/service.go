package payment

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/splus/splus-api/internal/pkg/logger"
	gateway "github.com/splus/splus-api/internal/pkg/payment"
	"github.com/splus/splus-api/internal/pkg/qr"
	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// QRPath is where the gateway serves QR images, relative to the public URL.
const QRPath = "/api/v1/payments/qr"

// Config holds payment service settings.
type Config struct {
	PublicURL   string
	FrontendURL string
	QRSize      int
}

// Service creates payments and renders their QR codes.
type Service struct {
	repo   Repository
	config Config
}

// NewService creates payment service.
func NewService(repo Repository, config Config) *Service {
	config.PublicURL = strings.TrimRight(config.PublicURL, "/")
	config.FrontendURL = strings.TrimRight(config.FrontendURL, "/")
	config.QRSize = qr.ClampSize(config.QRSize)
	return &Service{repo: repo, config: config}
}

// Create asks the backend for a checkout and adds a QR image URL for it.
func (s *Service) Create(ctx context.Context, token string, req *CreateRequest) (*Checkout, error) {
	if req.ReturnURL == "" && s.config.FrontendURL != "" {
		req.ReturnURL = s.config.FrontendURL + "/payment/success"
	}
	if req.CancelURL == "" && s.config.FrontendURL != "" {
		req.CancelURL = s.config.FrontendURL + "/payment/cancel"
	}

	p, err := s.repo.Create(ctx, token, req)
	if err != nil {
		if studioapi.IsNotFound(err) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if p.IsPaid() {
		return nil, ErrAlreadyPaid
	}

	content := p.QRCode
	if content == "" {
		content = p.CheckoutURL
	}
	if content == "" {
		logger.LogWarn(ctx, "Payment created without checkout url", "booking_id", req.BookingID, "payment_id", p.ID)
		return nil, ErrNoCheckoutURL
	}

	logger.LogInfo(ctx, "Payment created", "booking_id", req.BookingID, "payment_id", p.ID, "amount", p.Amount)
	return &Checkout{Payment: p, QRImageURL: s.QRImageURL(content)}, nil
}

// QRImageURL points at this service's QR endpoint for content.
func (s *Service) QRImageURL(content string) string {
	q := url.Values{}
	q.Set("data", content)
	q.Set("size", strconv.Itoa(s.config.QRSize))
	return s.config.PublicURL + QRPath + "?" + q.Encode()
}

// QR renders content as PNG. size 0 uses the configured size.
func (s *Service) QR(content string, size int) ([]byte, error) {
	if size == 0 {
		size = s.config.QRSize
	}
	return qr.PNG(content, size)
}

// Get returns one payment.
func (s *Service) Get(ctx context.Context, token, id string) (*Payment, error) {
	p, err := s.repo.Get(ctx, token, id)
	if studioapi.IsNotFound(err) {
		return nil, ErrPaymentNotFound
	}
	return p, err
}

// ListByBooking returns all checkout attempts of a booking.
func (s *Service) ListByBooking(ctx context.Context, token, bookingID string) ([]Payment, error) {
	return s.repo.ListByBooking(ctx, token, bookingID)
}

// Landing interprets a return or cancel page query.
func (s *Service) Landing(ctx context.Context, q url.Values, cancelPage bool) gateway.Outcome {
	outcome := gateway.ParseLanding(q, cancelPage)
	logger.LogInfo(ctx, "Payment landing", "order_code", outcome.OrderCode, "status", outcome.Status)
	return outcome
}
