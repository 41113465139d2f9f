package equipment

import (
	"time"

	"github.com/splus/splus-api/internal/pricing"
)

// Equipment is a rentable item charged per hour.
type Equipment struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category,omitempty"`
	PricePerHour float64   `json:"pricePerHour"`
	TotalQty     int       `json:"totalQty,omitempty"`
	AvailableQty int       `json:"availableQty,omitempty"`
	Image        string    `json:"image,omitempty"`
	IsAvailable  *bool     `json:"isAvailable,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// Key implements store.Identifiable.
func (e Equipment) Key() string { return e.ID }

// Offer projects the record onto its pricing input.
func (e Equipment) Offer() pricing.EquipmentOffer {
	return pricing.EquipmentOffer{EquipmentID: e.ID, Name: e.Name, PricePerHour: e.PricePerHour}
}

// Available reports whether the item may be added to a draft.
func (e Equipment) Available() bool {
	return e.IsAvailable == nil || *e.IsAvailable
}

// UpsertRequest is the admin payload for equipment.
type UpsertRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=200"`
	Description  string  `json:"description" validate:"max=2000"`
	Category     string  `json:"category" validate:"max=100"`
	PricePerHour float64 `json:"pricePerHour" validate:"gte=0"`
	TotalQty     int     `json:"totalQty" validate:"gte=0"`
	Image        string  `json:"image" validate:"omitempty,url"`
	IsAvailable  *bool   `json:"isAvailable"`
}
