package pricing

import "github.com/shopspring/decimal"

// FeeSchedule carries the fixed per-booking fees. It is loaded from
// configuration and injected into every surface that prices a booking, so
// the create path and the preview path can never diverge.
type FeeSchedule struct {
	ServiceFee decimal.Decimal
	BookingFee decimal.Decimal
}

// ResolveTotal computes the chargeable total for one booking of the item:
// effective unit price plus the fixed fees.
func ResolveTotal(basePrice decimal.Decimal, discountPrice *decimal.Decimal, fees FeeSchedule) decimal.Decimal {
	return EffectivePrice(basePrice, discountPrice).Add(fees.ServiceFee).Add(fees.BookingFee)
}
