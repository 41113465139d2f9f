// Package addon covers the bookable extra services (makeup, photographer, assistant...).
package addon

import (
	"time"

	"github.com/splus/splus-api/internal/pricing"
)

// Addon is an extra service charged once per inclusion, regardless of duration.
type Addon struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PricePerUse float64   `json:"pricePerUse"`
	IsActive    *bool     `json:"isActive,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// Key implements store.Identifiable.
func (a Addon) Key() string { return a.ID }

// Offer projects the record onto its pricing input.
func (a Addon) Offer() pricing.ServiceOffer {
	return pricing.ServiceOffer{ServiceID: a.ID, Name: a.Name, PricePerUse: a.PricePerUse}
}

// Active reports whether the service may be added to a draft.
func (a Addon) Active() bool {
	return a.IsActive == nil || *a.IsActive
}

// UpsertRequest is the admin payload for a service.
type UpsertRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=200"`
	Description string  `json:"description" validate:"max=2000"`
	PricePerUse float64 `json:"pricePerUse" validate:"gte=0"`
	IsActive    *bool   `json:"isActive"`
}
