package studio

import (
	"time"

	"github.com/splus/splus-api/internal/pricing"
)

// Status of a studio listing.
type Status string

const (
	StatusActive      Status = "active"
	StatusInactive    Status = "inactive"
	StatusMaintenance Status = "maintenance"
)

// Studio is the backend's studio record.
type Studio struct {
	ID               string    `json:"_id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Location         string    `json:"location,omitempty"`
	Area             float64   `json:"area,omitempty"`
	Capacity         int       `json:"capacity,omitempty"`
	BasePricePerHour float64   `json:"basePricePerHour"`
	Images           []string  `json:"images,omitempty"`
	Status           Status    `json:"status,omitempty"`
	AvgRating        float64   `json:"avgRating,omitempty"`
	ReviewCount      int       `json:"reviewCount,omitempty"`
	CreatedAt        time.Time `json:"createdAt,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt,omitempty"`
}

// Key implements store.Identifiable.
func (s Studio) Key() string { return s.ID }

// Rate projects the studio onto its pricing input.
func (s Studio) Rate() pricing.StudioRate {
	return pricing.StudioRate{StudioID: s.ID, BasePricePerHour: s.BasePricePerHour}
}

// IsBookable reports whether new bookings may target the studio.
func (s Studio) IsBookable() bool {
	return s.Status == "" || s.Status == StatusActive
}
