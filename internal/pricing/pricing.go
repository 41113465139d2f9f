// Package pricing computes booking totals from a draft selection and catalogue prices.
//
// Everything here is pure: inputs are passed explicitly and nothing is cached, so the
// breakdown is recomputed whenever the draft or the catalogue changes.
package pricing

import (
	"math"
	"time"
)

const millisPerHour = 3_600_000

// LineKind distinguishes hourly equipment from per-use services.
type LineKind string

const (
	KindEquipment LineKind = "equipment"
	KindService   LineKind = "service"
)

// StudioRate is the hourly room price of one studio.
type StudioRate struct {
	StudioID         string  `json:"studioId"`
	BasePricePerHour float64 `json:"basePricePerHour"`
}

// EquipmentOffer is a catalogue entry charged per hour.
type EquipmentOffer struct {
	EquipmentID  string  `json:"equipmentId"`
	Name         string  `json:"name"`
	PricePerHour float64 `json:"pricePerHour"`
}

// ServiceOffer is a catalogue entry charged once per inclusion.
type ServiceOffer struct {
	ServiceID   string  `json:"serviceId"`
	Name        string  `json:"name"`
	PricePerUse float64 `json:"pricePerUse"`
}

// Line is one selected equipment or service with the unit price captured at selection time.
type Line struct {
	Kind      LineKind `json:"kind"`
	RefID     string   `json:"refId"`
	UnitPrice float64  `json:"unitPrice"`
	Quantity  int      `json:"quantity"`
}

// PriceLookup resolves the live catalogue price of a referenced offer.
type PriceLookup func(kind LineKind, refID string) (float64, bool)

// Input is everything Compute needs.
type Input struct {
	Rate      StudioRate
	StartTime *time.Time
	EndTime   *time.Time
	Lines     []Line
	// Lookup may be nil; lines then price at their snapshot.
	Lookup PriceLookup
	// Discount is the amount returned by the promotion apply call, 0 when none is applied.
	Discount float64
}

// Breakdown is the derived price of a draft.
type Breakdown struct {
	DurationHours  float64 `json:"durationHours"`
	RoomPrice      float64 `json:"roomPrice"`
	EquipmentTotal float64 `json:"equipmentTotal"`
	ServiceTotal   float64 `json:"serviceTotal"`
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalTotal     float64 `json:"finalTotal"`
}

// DurationHours is (end - start) in hours, 0 when either bound is missing or end <= start.
func DurationHours(start, end *time.Time) float64 {
	if start == nil || end == nil {
		return 0
	}
	ms := end.Sub(*start).Milliseconds()
	if ms <= 0 {
		return 0
	}
	return float64(ms) / millisPerHour
}

// ResolvePrice returns the catalogue price of l, falling back to its snapshot
// when the offer is no longer in the catalogue.
func ResolvePrice(l Line, lookup PriceLookup) float64 {
	if lookup != nil {
		if price, ok := lookup(l.Kind, l.RefID); ok {
			return price
		}
	}
	return l.UnitPrice
}

// Compute derives the full breakdown.
func Compute(in Input) Breakdown {
	b := Breakdown{DurationHours: DurationHours(in.StartTime, in.EndTime)}

	b.RoomPrice = in.Rate.BasePricePerHour * b.DurationHours

	for _, l := range in.Lines {
		qty := float64(l.Quantity)
		if qty < 1 {
			qty = 1
		}
		price := ResolvePrice(l, in.Lookup)
		switch l.Kind {
		case KindEquipment:
			b.EquipmentTotal += price * b.DurationHours * qty
		case KindService:
			b.ServiceTotal += price * qty
		}
	}

	b.Subtotal = b.RoomPrice + b.EquipmentTotal + b.ServiceTotal
	b.DiscountAmount = ClampDiscount(in.Discount, b.Subtotal)
	b.FinalTotal = math.Max(0, b.Subtotal-b.DiscountAmount)
	return b
}

// ClampDiscount bounds a discount to [0, subtotal].
func ClampDiscount(discount, subtotal float64) float64 {
	if discount <= 0 || math.IsNaN(discount) || subtotal <= 0 {
		return 0
	}
	return math.Min(discount, subtotal)
}
