// Package payment normalises what the payment gateway reports back to the SPA:
// status words and the query parameters of the return and cancel landing pages.
package payment

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Internal payment statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
	StatusRefunded  = "refunded"
)

// MapStatus converts a gateway status word to an internal status.
// Unknown words map to pending.
func MapStatus(gatewayStatus string) string {
	switch strings.ToLower(strings.TrimSpace(gatewayStatus)) {
	case "success", "completed", "paid", "approved", "authorized", "00":
		return StatusCompleted
	case "cancelled", "canceled", "cancel":
		return StatusCancelled
	case "failed", "declined", "rejected", "error", "expired":
		return StatusFailed
	case "refunded", "reversed":
		return StatusRefunded
	default:
		return StatusPending
	}
}

// Outcome is what a landing page learns from its query string.
type Outcome struct {
	OrderID   string  `json:"orderId,omitempty"`
	OrderCode string  `json:"orderCode,omitempty"`
	Status    string  `json:"status"`
	RawStatus string  `json:"rawStatus,omitempty"`
	Amount    float64 `json:"amount,omitempty"`
	Code      string  `json:"code,omitempty"`
	Cancelled bool    `json:"cancelled"`
}

// Paid reports whether the gateway claims the order was paid. The backend
// remains authoritative.
func (o Outcome) Paid() bool {
	return o.Status == StatusCompleted
}

// ParseLanding reads orderId, orderCode, status, amount and code.
// cancelPage forces a cancelled outcome when the gateway sent no status.
func ParseLanding(q url.Values, cancelPage bool) Outcome {
	o := Outcome{
		OrderID:   q.Get("orderId"),
		OrderCode: q.Get("orderCode"),
		RawStatus: q.Get("status"),
		Code:      q.Get("code"),
	}
	if amount, err := strconv.ParseFloat(q.Get("amount"), 64); err == nil && amount > 0 && !math.IsInf(amount, 0) {
		o.Amount = amount
	}

	switch {
	case o.RawStatus != "":
		o.Status = MapStatus(o.RawStatus)
	case cancelPage:
		o.Status = StatusCancelled
	case o.Code == "00":
		o.Status = StatusCompleted
	default:
		o.Status = StatusPending
	}
	if cancelPage && o.Status == StatusPending {
		o.Status = StatusCancelled
	}
	o.Cancelled = o.Status == StatusCancelled
	return o
}
