package booking

import "github.com/shopspring/decimal"

// CreateBookingRequest carries the raw, not-yet-validated payload. Exactly
// one of the three item references must be set; the service enforces it.
type CreateBookingRequest struct {
	DestinationID *int64 `json:"destination_id"`
	PackageID     *int64 `json:"package_id"`
	OfferID       *int64 `json:"offer_id"`
	CheckIn       string `json:"check_in" binding:"required"`
	CheckOut      string `json:"check_out" binding:"required"`
	Guests        int    `json:"guests" binding:"required"`
	Notes         string `json:"notes"`
}

type PreviewRequest struct {
	DestinationID *int64 `json:"destination_id" form:"destination_id"`
	PackageID     *int64 `json:"package_id" form:"package_id"`
	OfferID       *int64 `json:"offer_id" form:"offer_id"`
}

// PreviewResponse mirrors the checkout summary the frontend renders: the
// unit price after discount plus the fixed fees.
type PreviewResponse struct {
	ItemTitle       string          `json:"item_title"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent *int            `json:"discount_percent,omitempty"`
	ServiceFee      decimal.Decimal `json:"service_fee"`
	BookingFee      decimal.Decimal `json:"booking_fee"`
	Total           decimal.Decimal `json:"total"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
