package pricing

import "math"

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// DiscountRule is the subset of a promotion rule needed to estimate a discount.
type DiscountRule struct {
	DiscountType  string
	DiscountValue float64
	MaxDiscount   *float64
}

// EstimateDiscount replicates the backend formula for display when the backend
// did not return an amount. The result is an estimate and is never charged.
func EstimateDiscount(rule DiscountRule, subtotal float64) float64 {
	if subtotal <= 0 || rule.DiscountValue <= 0 {
		return 0
	}

	var discount float64
	switch rule.DiscountType {
	case DiscountPercentage:
		discount = subtotal * rule.DiscountValue / 100
		if rule.MaxDiscount != nil {
			discount = math.Min(discount, *rule.MaxDiscount)
		}
	case DiscountFixed:
		discount = rule.DiscountValue
	default:
		return 0
	}
	return ClampDiscount(discount, subtotal)
}
