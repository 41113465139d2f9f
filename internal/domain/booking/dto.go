package booking

import "time"

// ItemRequest references one catalogue offer on a new booking.
type ItemRequest struct {
	ID       string  `json:"id" validate:"required"`
	Quantity int     `json:"quantity" validate:"gte=1"`
	Price    float64 `json:"price"`
}

// CreateRequest is the backend booking payload. Totals are the gateway's
// computation; the backend recomputes and is authoritative.
type CreateRequest struct {
	StudioID       string        `json:"studioId" validate:"required"`
	StartTime      time.Time     `json:"startTime" validate:"required"`
	EndTime        time.Time     `json:"endTime" validate:"required,gtfield=StartTime"`
	Equipment      []ItemRequest `json:"equipment,omitempty" validate:"dive"`
	Services       []ItemRequest `json:"services,omitempty" validate:"dive"`
	PromotionID    string        `json:"promotionId,omitempty"`
	PromoCode      string        `json:"promoCode,omitempty"`
	Notes          string        `json:"notes,omitempty" validate:"max=1000"`
	Subtotal       float64       `json:"subtotal"`
	DiscountAmount float64       `json:"discountAmount"`
	FinalAmount    float64       `json:"finalAmount"`
}

// CancelRequest is the body of a cancellation.
type CancelRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// StatusRequest is the staff status update body.
type StatusRequest struct {
	Status string `json:"status" validate:"required,booking_status"`
	Note   string `json:"note,omitempty" validate:"max=500"`
}

// RefundRequest is the customer refund request body.
type RefundRequest struct {
	Reason        string `json:"reason" validate:"required,min=5,max=1000"`
	BankName      string `json:"bankName" validate:"required,max=100"`
	AccountNumber string `json:"accountNumber" validate:"required,numeric,min=6,max=20"`
	AccountName   string `json:"accountName" validate:"required,max=100"`
}

// RefundDecision is the staff body for rejecting a refund.
type RefundDecision struct {
	Reason string `json:"reason" validate:"max=500"`
}
