package draft

import "errors"

var (
	ErrDraftNotFound    = errors.New("draft not found")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrOfferNotFound    = errors.New("equipment or service not found")
	ErrOfferUnavailable = errors.New("equipment or service is not available")
	ErrIncompleteDraft  = errors.New("draft needs a studio and a time range")
	ErrStartInPast      = errors.New("start time is in the past")
	ErrPartialSchedule  = errors.New("a time range needs a studio")
)
