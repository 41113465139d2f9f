package studio

import "errors"

var (
	ErrStudioNotFound    = errors.New("studio not found")
	ErrStudioUnavailable = errors.New("studio is not accepting bookings")
)
