package customdesign

import (
	"strconv"
	"time"

	"github.com/splus/splus-api/internal/domain/booking"
	"github.com/splus/splus-api/internal/domain/setdesign"
)

// Status of a custom set design request. Transitions are decided by the backend.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusConverted  Status = "converted"
	StatusRejected   Status = "rejected"
	StatusClosed     Status = "closed"
)

// Request is a customer's bespoke set design request.
type Request struct {
	ID              string      `json:"_id"`
	Customer        booking.Ref `json:"userId"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone,omitempty"`
	Description     string      `json:"description"`
	Category        string      `json:"category,omitempty"`
	Budget          float64     `json:"budget,omitempty"`
	PreferredDate   *time.Time  `json:"preferredDate,omitempty"`
	ReferenceImages []string    `json:"referenceImages,omitempty"`
	Status          Status      `json:"status"`
	StaffNote       string      `json:"staffNote,omitempty"`
	SetDesignID     string      `json:"convertedSetDesignId,omitempty"`
	CreatedAt       time.Time   `json:"createdAt,omitempty"`
	UpdatedAt       time.Time   `json:"updatedAt,omitempty"`
}

// Key implements store.Identifiable.
func (r Request) Key() string { return r.ID }

// CreateRequest is the customer submission. Images travel as multipart files.
type CreateRequest struct {
	Name          string     `json:"name" validate:"required,min=2,max=100"`
	Email         string     `json:"email" validate:"required,email"`
	Phone         string     `json:"phone" validate:"omitempty,min=9,max=15"`
	Description   string     `json:"description" validate:"required,min=10,max=5000"`
	Category      string     `json:"category" validate:"max=100"`
	Budget        float64    `json:"budget" validate:"gte=0"`
	PreferredDate *time.Time `json:"preferredDate"`
}

// Fields renders the submission as multipart form fields.
func (c *CreateRequest) Fields() map[string]string {
	f := map[string]string{
		"name":        c.Name,
		"email":       c.Email,
		"description": c.Description,
	}
	if c.Phone != "" {
		f["phone"] = c.Phone
	}
	if c.Category != "" {
		f["category"] = c.Category
	}
	if c.Budget > 0 {
		f["budget"] = strconv.FormatFloat(c.Budget, 'f', -1, 64)
	}
	if c.PreferredDate != nil {
		f["preferredDate"] = c.PreferredDate.UTC().Format(time.RFC3339)
	}
	return f
}

// StatusRequest is the staff status update.
type StatusRequest struct {
	Status    Status `json:"status" validate:"required,request_status"`
	StaffNote string `json:"staffNote" validate:"max=2000"`
}

// ConvertRequest turns a request into a catalogue set design.
type ConvertRequest struct {
	Name        string   `json:"name" validate:"omitempty,min=2,max=200"`
	Description string   `json:"description" validate:"max=5000"`
	Category    string   `json:"category" validate:"max=100"`
	Price       float64  `json:"price" validate:"gte=0"`
	Images      []string `json:"images" validate:"max=20,dive,url"`
}

// ConvertResult is the backend answer to a conversion.
type ConvertResult struct {
	SetDesign setdesign.SetDesign `json:"setDesign"`
	Request   *Request            `json:"request,omitempty"`
}
