package booking

import (
	"bytes"
	"encoding/json"
	"time"
)

// Status values as the backend reports them.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCheckedIn = "checked_in"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

// Refund status values.
const (
	RefundRequested = "requested"
	RefundApproved  = "approved"
	RefundRejected  = "rejected"
)

// Ref is a referenced record the backend returns either as a bare id or populated.
type Ref struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// UnmarshalJSON accepts "id" or {"_id": ..., "name"|"fullName": ..., "email": ...}.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}

	var obj struct {
		ID       string `json:"_id"`
		Name     string `json:"name"`
		FullName string `json:"fullName"`
		Email    string `json:"email"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.ID, r.Name, r.Email = obj.ID, obj.Name, obj.Email
	if r.Name == "" {
		r.Name = obj.FullName
	}
	return nil
}

// Item is one equipment or service row on a booking.
type Item struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Amount    float64 `json:"amount,omitempty"`
}

// Refund is the refund request attached to a booking.
type Refund struct {
	Status        string     `json:"status"`
	Reason        string     `json:"reason,omitempty"`
	Amount        float64    `json:"amount,omitempty"`
	BankName      string     `json:"bankName,omitempty"`
	AccountNumber string     `json:"accountNumber,omitempty"`
	AccountName   string     `json:"accountName,omitempty"`
	RejectReason  string     `json:"rejectReason,omitempty"`
	RequestedAt   *time.Time `json:"requestedAt,omitempty"`
	ProcessedAt   *time.Time `json:"processedAt,omitempty"`
}

// Booking is a confirmed or pending studio reservation.
type Booking struct {
	ID             string    `json:"_id"`
	Customer       Ref       `json:"userId"`
	Studio         Ref       `json:"studioId"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	Equipment      []Item    `json:"equipment,omitempty"`
	Services       []Item    `json:"services,omitempty"`
	PromotionID    string    `json:"promotionId,omitempty"`
	PromoCode      string    `json:"promoCode,omitempty"`
	Subtotal       float64   `json:"subtotal"`
	DiscountAmount float64   `json:"discountAmount"`
	FinalAmount    float64   `json:"finalAmount"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"paymentStatus,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Refund         *Refund   `json:"refund,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"`
}

// Key implements store.Identifiable.
func (b Booking) Key() string { return b.ID }

// DurationHours is the booked session length.
func (b *Booking) DurationHours() float64 {
	if !b.EndTime.After(b.StartTime) {
		return 0
	}
	return b.EndTime.Sub(b.StartTime).Hours()
}

// IsFinal reports whether no further status change is expected.
func (b *Booking) IsFinal() bool {
	switch b.Status {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}
