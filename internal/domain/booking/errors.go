package booking

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotRefundable   = errors.New("booking has no refundable payment")
)
