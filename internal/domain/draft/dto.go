package draft

import "time"

// ScheduleRequest sets the studio and time range.
type ScheduleRequest struct {
	StudioID  string     `json:"studioId" validate:"required"`
	StartTime *time.Time `json:"startTime" validate:"required"`
	EndTime   *time.Time `json:"endTime" validate:"required"`
}

// CreateRequest starts a draft, optionally already scheduled.
type CreateRequest struct {
	StudioID  string     `json:"studioId"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}

// LineRequest adds or replaces a line.
type LineRequest struct {
	Kind     string `json:"kind" validate:"required,line_kind"`
	RefID    string `json:"refId" validate:"required"`
	Quantity int    `json:"quantity" validate:"omitempty,gte=1,lte=50"`
}

// PromotionRequest applies a code.
type PromotionRequest struct {
	Code string `json:"code"`
}

// SubmitRequest finalises the draft into a booking.
type SubmitRequest struct {
	Notes string `json:"notes" validate:"max=1000"`
}
