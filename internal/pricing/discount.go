// Package pricing holds the catalog discount and price-resolution policy.
// Everything here is a pure function over decimal values; validation of the
// discount invariant happens at the input boundary, so the computations may
// assume well-formed prices.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidDiscount is returned by ValidateDiscount when the discount price
// is not strictly below the base price.
var ErrInvalidDiscount = errors.New("discount price must be less than regular price")

var hundred = decimal.NewFromInt(100)

// DiscountPercent returns the rounded discount percentage for display, or
// nil when there is no discount or no usable base price. For valid inputs
// (0 <= discount < base) the result is an integer in [0, 100]. Rounding is
// half away from zero, which for these non-negative operands is half-up.
func DiscountPercent(basePrice decimal.Decimal, discountPrice *decimal.Decimal) *int {
	if discountPrice == nil || basePrice.Sign() <= 0 {
		return nil
	}
	pct := basePrice.Sub(*discountPrice).Mul(hundred).Div(basePrice).Round(0)
	n := int(pct.IntPart())
	return &n
}

// ValidateDiscount enforces the boundary invariant: a present discount price
// must be non-negative and strictly below the base price.
func ValidateDiscount(basePrice decimal.Decimal, discountPrice *decimal.Decimal) error {
	if discountPrice == nil {
		return nil
	}
	if discountPrice.Sign() < 0 {
		return ErrInvalidDiscount
	}
	if discountPrice.GreaterThanOrEqual(basePrice) {
		return ErrInvalidDiscount
	}
	return nil
}

// EffectivePrice is the chargeable unit price: the discount price when one
// is set, otherwise the base price.
func EffectivePrice(basePrice decimal.Decimal, discountPrice *decimal.Decimal) decimal.Decimal {
	if discountPrice != nil {
		return *discountPrice
	}
	return basePrice
}
