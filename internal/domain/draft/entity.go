package draft

import (
	"time"

	"github.com/splus/splus-api/internal/pricing"
)

// Line is one selected equipment item or service with its price snapshot.
type Line struct {
	Kind      pricing.LineKind `json:"kind"`
	RefID     string           `json:"refId"`
	Name      string           `json:"name,omitempty"`
	UnitPrice float64          `json:"unitPrice"`
	Quantity  int              `json:"quantity"`
}

// PricingLine converts l to the pricing input.
func (l Line) PricingLine() pricing.Line {
	return pricing.Line{Kind: l.Kind, RefID: l.RefID, UnitPrice: l.UnitPrice, Quantity: l.Quantity}
}

// AppliedPromotion is the single promotion attached to a draft.
type AppliedPromotion struct {
	PromotionID    string  `json:"promotionId"`
	Code           string  `json:"code"`
	DiscountAmount float64 `json:"discountAmount"`
	// OrderValue is the subtotal the discount was priced against.
	OrderValue float64 `json:"orderValue"`
	// Estimated is set when the backend sent a rule without an amount.
	Estimated bool `json:"estimated,omitempty"`
}

// Draft is an in-progress booking selection.
type Draft struct {
	ID       string `json:"id"`
	OwnerID  string `json:"ownerId"`
	StudioID string `json:"studioId,omitempty"`
	// Rate is the studio rate captured when the schedule was set.
	Rate             *pricing.StudioRate `json:"rate,omitempty"`
	StartTime        *time.Time          `json:"startTime,omitempty"`
	EndTime          *time.Time          `json:"endTime,omitempty"`
	Lines            []Line              `json:"lines"`
	AppliedPromotion *AppliedPromotion   `json:"appliedPromotion,omitempty"`
	Notes            string              `json:"notes,omitempty"`
	Revision         int64               `json:"revision"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// SetLine adds l or, when a line for the same offer exists, replaces it in place.
func (d *Draft) SetLine(l Line) {
	if l.Quantity < 1 {
		l.Quantity = 1
	}
	for i := range d.Lines {
		if d.Lines[i].Kind == l.Kind && d.Lines[i].RefID == l.RefID {
			d.Lines[i] = l
			return
		}
	}
	d.Lines = append(d.Lines, l)
}

// RemoveLine drops the line for the given offer and reports whether one existed.
func (d *Draft) RemoveLine(kind pricing.LineKind, refID string) bool {
	for i := range d.Lines {
		if d.Lines[i].Kind == kind && d.Lines[i].RefID == refID {
			d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// ClearPromotion removes any applied promotion.
func (d *Draft) ClearPromotion() {
	d.AppliedPromotion = nil
}

// DiscountAmount is the applied discount, 0 without a promotion.
func (d *Draft) DiscountAmount() float64 {
	if d.AppliedPromotion == nil {
		return 0
	}
	return d.AppliedPromotion.DiscountAmount
}

// HasSchedule reports whether a studio and a valid time range are set.
func (d *Draft) HasSchedule() bool {
	return d.StudioID != "" && d.StartTime != nil && d.EndTime != nil && d.EndTime.After(*d.StartTime)
}

// PricingInput assembles the pricing input for d.
func (d *Draft) PricingInput(rate pricing.StudioRate, lookup pricing.PriceLookup) pricing.Input {
	lines := make([]pricing.Line, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, l.PricingLine())
	}
	return pricing.Input{
		Rate:      rate,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Lines:     lines,
		Lookup:    lookup,
		Discount:  d.DiscountAmount(),
	}
}

// View is a draft with its freshly computed price.
type View struct {
	*Draft
	Breakdown pricing.Breakdown `json:"breakdown"`
	// PromotionStale is set when the subtotal moved since the promotion was applied.
	PromotionStale bool `json:"promotionStale,omitempty"`
}
