package promotion

import (
	"strings"
	"time"

	"github.com/splus/splus-api/internal/pricing"
)

// Rule is a discount code as the backend defines it.
type Rule struct {
	ID            string     `json:"_id"`
	Code          string     `json:"code"`
	Name          string     `json:"name,omitempty"`
	Description   string     `json:"description,omitempty"`
	DiscountType  string     `json:"discountType"`
	DiscountValue float64    `json:"discountValue"`
	MinOrderValue float64    `json:"minOrderValue"`
	MaxDiscount   *float64   `json:"maxDiscount,omitempty"`
	IsActive      bool       `json:"isActive"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	UsageLimit    *int       `json:"usageLimit,omitempty"`
	UsageCount    int        `json:"usageCount,omitempty"`
	CreatedAt     time.Time  `json:"createdAt,omitempty"`
	UpdatedAt     time.Time  `json:"updatedAt,omitempty"`
}

// Key implements store.Identifiable.
func (r Rule) Key() string { return r.ID }

// DiscountRule projects the rule onto the pricing estimate input.
func (r Rule) DiscountRule() pricing.DiscountRule {
	return pricing.DiscountRule{
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		MaxDiscount:   r.MaxDiscount,
	}
}

// ApplyResult is the backend answer to an apply call.
type ApplyResult struct {
	PromotionID    string   `json:"promotionId"`
	Code           string   `json:"code"`
	DiscountAmount *float64 `json:"discountAmount"`
	FinalAmount    *float64 `json:"finalAmount,omitempty"`
	Promotion      *Rule    `json:"promotion,omitempty"`
}

// ID returns the promotion id from whichever field the backend filled.
func (a *ApplyResult) ID() string {
	if a.PromotionID != "" {
		return a.PromotionID
	}
	if a.Promotion != nil {
		return a.Promotion.ID
	}
	return ""
}

// Discount returns the backend amount, or an estimate from the rule when the
// amount is missing. estimated is true in the second case.
func (a *ApplyResult) Discount(subtotal float64) (amount float64, estimated bool) {
	if a.DiscountAmount != nil {
		return pricing.ClampDiscount(*a.DiscountAmount, subtotal), false
	}
	if a.Promotion != nil {
		return pricing.EstimateDiscount(a.Promotion.DiscountRule(), subtotal), true
	}
	return 0, false
}

// ApplyRequest is the backend apply payload.
type ApplyRequest struct {
	Code       string  `json:"code" validate:"required,promo_code"`
	OrderValue float64 `json:"orderValue" validate:"gt=0"`
}

// UpsertRequest is the admin payload for a promotion.
type UpsertRequest struct {
	Code          string     `json:"code" validate:"required,promo_code"`
	Name          string     `json:"name" validate:"max=200"`
	Description   string     `json:"description" validate:"max=2000"`
	DiscountType  string     `json:"discountType" validate:"required,discount_type"`
	DiscountValue float64    `json:"discountValue" validate:"gt=0"`
	MinOrderValue float64    `json:"minOrderValue" validate:"gte=0"`
	MaxDiscount   *float64   `json:"maxDiscount" validate:"omitempty,gt=0"`
	IsActive      *bool      `json:"isActive"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	UsageLimit    *int       `json:"usageLimit" validate:"omitempty,gte=1"`
}

// NormalizeCode trims and upper-cases a user-entered code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
