package promotion

import "errors"

var (
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrInvalidDateRange  = errors.New("end date must be after start date")
)
