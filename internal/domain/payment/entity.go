package payment

import (
	"time"

	gateway "github.com/splus/splus-api/internal/pkg/payment"
)

// Payment is the backend record of a checkout attempt for one booking.
type Payment struct {
	ID          string     `json:"_id"`
	BookingID   string     `json:"bookingId"`
	OrderCode   string     `json:"orderCode,omitempty"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	CheckoutURL string     `json:"checkoutUrl,omitempty"`
	QRCode      string     `json:"qrCode,omitempty"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
}

// Key implements store.Identifiable.
func (p Payment) Key() string { return p.ID }

// IsPaid checks if payment is completed
func (p *Payment) IsPaid() bool {
	return gateway.MapStatus(p.Status) == gateway.StatusCompleted
}

// CreateRequest starts a checkout for a booking.
type CreateRequest struct {
	BookingID   string `json:"bookingId" validate:"required"`
	Description string `json:"description" validate:"max=255"`
	ReturnURL   string `json:"returnUrl,omitempty" validate:"omitempty,url"`
	CancelURL   string `json:"cancelUrl,omitempty" validate:"omitempty,url"`
}

// Checkout is returned to the SPA after creating a payment.
type Checkout struct {
	Payment    *Payment `json:"payment"`
	QRImageURL string   `json:"qrImageUrl,omitempty"`
}
