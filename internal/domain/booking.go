package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking references exactly one sellable item. The exactly-one rule is
// enforced by the booking service before anything is persisted.
type Booking struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	UserID        int64           `json:"user_id" gorm:"not null;index"`
	DestinationID *int64          `json:"destination_id,omitempty" gorm:"index"`
	PackageID     *int64          `json:"package_id,omitempty" gorm:"index"`
	OfferID       *int64          `json:"offer_id,omitempty" gorm:"index"`
	CheckIn       time.Time       `json:"check_in" gorm:"not null"`
	CheckOut      time.Time       `json:"check_out" gorm:"not null"`
	Guests        int             `json:"guests" gorm:"not null"`
	TotalPrice    decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	Status        BookingStatus   `json:"status" gorm:"size:20;not null;index"`
	Notes         string          `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	CancelledAt   *time.Time      `json:"cancelled_at,omitempty"`
}

// ItemRef returns the single item reference carried by the booking.
func (b *Booking) ItemRef() (ItemKind, int64) {
	switch {
	case b.DestinationID != nil:
		return KindDestination, *b.DestinationID
	case b.PackageID != nil:
		return KindPackage, *b.PackageID
	case b.OfferID != nil:
		return KindOffer, *b.OfferID
	}
	return "", 0
}

// CanTransitionTo reports whether a status change is allowed.
// pending -> confirmed, pending/confirmed -> cancelled.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch next {
	case BookingConfirmed:
		return b.Status == BookingPending
	case BookingCancelled:
		return b.Status == BookingPending || b.Status == BookingConfirmed
	}
	return false
}
