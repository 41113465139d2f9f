package booking

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/splus/splus-api/internal/pkg/logger"
	"github.com/splus/splus-api/internal/pkg/receipt"
	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// Service handles booking logic.
type Service struct {
	repo Repository
	// verifyBaseURL prefixes the booking link encoded in receipt QR codes.
	verifyBaseURL string
}

// NewService creates a new booking service.
func NewService(repo Repository, verifyBaseURL string) *Service {
	return &Service{repo: repo, verifyBaseURL: strings.TrimRight(verifyBaseURL, "/")}
}

// Create submits a new booking.
func (s *Service) Create(ctx context.Context, token string, req *CreateRequest) (*Booking, error) {
	b, err := s.repo.Create(ctx, token, req)
	if err != nil {
		return nil, err
	}
	logger.LogInfo(ctx, "Booking created",
		"booking_id", b.ID,
		"studio_id", req.StudioID,
		"final_amount", b.FinalAmount,
	)
	return b, nil
}

// Get returns a booking.
func (s *Service) Get(ctx context.Context, token, id string) (*Booking, error) {
	b, err := s.repo.Get(ctx, token, id)
	if studioapi.IsNotFound(err) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

// ListMine returns the caller's bookings.
func (s *Service) ListMine(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Booking], error) {
	return s.repo.ListMine(ctx, token, q)
}

// List returns all bookings (staff).
func (s *Service) List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Booking], error) {
	return s.repo.List(ctx, token, q)
}

// Cancel cancels a booking. Whether cancellation is allowed is decided by the backend.
func (s *Service) Cancel(ctx context.Context, token, id string, req *CancelRequest) (*Booking, error) {
	return s.mutate(ctx, "cancel", id, func() (*Booking, error) {
		return s.repo.Cancel(ctx, token, id, req)
	})
}

// UpdateStatus moves a booking to another status (staff).
func (s *Service) UpdateStatus(ctx context.Context, token, id string, req *StatusRequest) (*Booking, error) {
	return s.mutate(ctx, "status:"+req.Status, id, func() (*Booking, error) {
		return s.repo.UpdateStatus(ctx, token, id, req)
	})
}

// RequestRefund files a refund request for a paid booking.
func (s *Service) RequestRefund(ctx context.Context, token, id string, req *RefundRequest) (*Booking, error) {
	b, err := s.Get(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if b.PaymentStatus != "" && b.PaymentStatus != "paid" {
		return nil, ErrNotRefundable
	}
	return s.mutate(ctx, "refund-request", id, func() (*Booking, error) {
		return s.repo.RequestRefund(ctx, token, id, req)
	})
}

// ApproveRefund approves a pending refund (staff).
func (s *Service) ApproveRefund(ctx context.Context, token, id string) (*Booking, error) {
	return s.mutate(ctx, "refund-approve", id, func() (*Booking, error) {
		return s.repo.ApproveRefund(ctx, token, id)
	})
}

// RejectRefund rejects a pending refund (staff).
func (s *Service) RejectRefund(ctx context.Context, token, id string, req *RefundDecision) (*Booking, error) {
	return s.mutate(ctx, "refund-reject", id, func() (*Booking, error) {
		return s.repo.RejectRefund(ctx, token, id, req)
	})
}

// Receipt renders the booking receipt PDF.
func (s *Service) Receipt(ctx context.Context, token, id string) (*Booking, []byte, error) {
	b, err := s.Get(ctx, token, id)
	if err != nil {
		return nil, nil, err
	}

	rc := BuildReceipt(b)
	if s.verifyBaseURL != "" {
		rc.VerifyURL = s.verifyBaseURL + "/bookings/" + b.ID
	}

	pdf, err := receipt.Render(rc)
	if err != nil {
		return nil, nil, fmt.Errorf("booking %s: %w", id, err)
	}
	return b, pdf, nil
}

func (s *Service) mutate(ctx context.Context, action, id string, fn func() (*Booking, error)) (*Booking, error) {
	b, err := fn()
	if err != nil {
		if studioapi.IsNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	logger.LogInfo(ctx, "Booking updated", "booking_id", id, "action", action, "status", b.Status)
	return b, nil
}

// BuildReceipt projects a booking onto receipt lines. The room line absorbs
// whatever part of the subtotal the item rows do not explain.
func BuildReceipt(b *Booking) receipt.Receipt {
	hours := b.DurationHours()

	var lines []receipt.Line
	var itemsTotal float64
	add := func(items []Item, hourly bool) {
		for _, it := range items {
			qty := it.Quantity
			if qty < 1 {
				qty = 1
			}
			amount := it.Amount
			if amount == 0 {
				amount = it.UnitPrice * float64(qty)
				if hourly {
					amount *= hours
				}
			}
			itemsTotal += amount
			name := it.Name
			if name == "" {
				name = it.ID
			}
			lines = append(lines, receipt.Line{Label: name, Quantity: qty, Amount: amount})
		}
	}
	add(b.Equipment, true)
	add(b.Services, false)

	room := receipt.Line{
		Label:    fmt.Sprintf("Studio room (%s)", formatHours(hours)),
		Quantity: 1,
		Amount:   math.Max(0, b.Subtotal-itemsTotal),
	}
	lines = append([]receipt.Line{room}, lines...)

	studioName := b.Studio.Name
	if studioName == "" {
		studioName = b.Studio.ID
	}

	return receipt.Receipt{
		BookingID:     b.ID,
		Status:        b.Status,
		CustomerName:  b.Customer.Name,
		CustomerEmail: b.Customer.Email,
		StudioName:    studioName,
		StartTime:     b.StartTime.Local(),
		EndTime:       b.EndTime.Local(),
		Lines:         lines,
		Subtotal:      b.Subtotal,
		PromoCode:     b.PromoCode,
		Discount:      b.DiscountAmount,
		Total:         b.FinalAmount,
		PaymentStatus: b.PaymentStatus,
		IssuedAt:      time.Now(),
	}
}

func formatHours(h float64) string {
	if h == math.Trunc(h) {
		return fmt.Sprintf("%.0fh", h)
	}
	return fmt.Sprintf("%.1fh", h)
}
