package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"travelnest/internal/domain"
	"travelnest/internal/pkg/validator"
	"travelnest/internal/pricing"
)

const dateLayout = "2006-01-02"

// Actor is the principal performing a booking operation.
type Actor struct {
	ID   int64
	Role domain.UserRole
}

func (a Actor) isAdmin() bool { return a.Role == domain.RoleAdmin }

type Service struct {
	bookings  BookingRepository
	catalog   CatalogReader
	fees      pricing.FeeSchedule
	maxGuests int
}

func NewService(bookings BookingRepository, catalog CatalogReader, fees pricing.FeeSchedule, maxGuests int) *Service {
	return &Service{
		bookings:  bookings,
		catalog:   catalog,
		fees:      fees,
		maxGuests: maxGuests,
	}
}

// itemRef extracts the single item reference from a request. count reports
// how many references were actually set.
func itemRef(destinationID, packageID, offerID *int64) (kind domain.ItemKind, id int64, count int) {
	if destinationID != nil {
		kind, id = domain.KindDestination, *destinationID
		count++
	}
	if packageID != nil {
		kind, id = domain.KindPackage, *packageID
		count++
	}
	if offerID != nil {
		kind, id = domain.KindOffer, *offerID
		count++
	}
	return kind, id, count
}

// CreateBooking validates eligibility, resolves the charge from the live
// catalog item, and persists the booking as pending. Nothing is written when
// any rule fails.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	errs := make(validator.Errors)

	kind, itemID, refs := itemRef(req.DestinationID, req.PackageID, req.OfferID)
	switch {
	case refs == 0:
		errs.Add("item", "at least one of destination, package, or offer must be provided")
	case refs > 1:
		errs.Add("item", "exactly one item reference required")
	}

	var checkIn, checkOut time.Time
	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		errs.Add("check_in", "must be a valid date (YYYY-MM-DD)")
	}
	checkOut, err = time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		errs.Add("check_out", "must be a valid date (YYYY-MM-DD)")
	}

	if _, ok := errs["check_in"]; !ok {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		if checkIn.Before(today) {
			errs.Add("check_in", "must not be in the past")
		}
	}
	if _, okIn := errs["check_in"]; !okIn {
		if _, okOut := errs["check_out"]; !okOut && !checkOut.After(checkIn) {
			errs.Add("check_out", "end date before start date")
		}
	}

	if req.Guests < 1 {
		errs.Add("guests", "must be at least 1")
	} else if req.Guests > s.maxGuests {
		errs.Add("guests", "exceeds the maximum allowed guests")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	item, err := s.catalog.GetPricing(ctx, kind, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if !item.IsActive {
		// A disabled item cannot be booked; indistinguishable from missing
		// on purpose.
		return nil, ErrItemNotFound
	}

	b := &domain.Booking{
		UserID:        userID,
		DestinationID: req.DestinationID,
		PackageID:     req.PackageID,
		OfferID:       req.OfferID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        req.Guests,
		TotalPrice:    pricing.ResolveTotal(item.BasePrice, item.DiscountPrice, s.fees),
		Status:        domain.BookingPending,
		Notes:         req.Notes,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// PreviewPrice computes the checkout total without persisting anything. It
// shares the fee schedule with CreateBooking, so the two can never diverge.
func (s *Service) PreviewPrice(ctx context.Context, req PreviewRequest) (*PreviewResponse, error) {
	kind, itemID, refs := itemRef(req.DestinationID, req.PackageID, req.OfferID)
	errs := make(validator.Errors)
	switch {
	case refs == 0:
		errs.Add("item", "at least one of destination, package, or offer must be provided")
	case refs > 1:
		errs.Add("item", "exactly one item reference required")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	item, err := s.catalog.GetPricing(ctx, kind, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if !item.IsActive {
		return nil, ErrItemNotFound
	}

	unit := pricing.EffectivePrice(item.BasePrice, item.DiscountPrice)
	return &PreviewResponse{
		ItemTitle:       item.Title,
		UnitPrice:       unit,
		DiscountPercent: pricing.DiscountPercent(item.BasePrice, item.DiscountPrice),
		ServiceFee:      s.fees.ServiceFee,
		BookingFee:      s.fees.BookingFee,
		Total:           unit.Add(s.fees.ServiceFee).Add(s.fees.BookingFee),
	}, nil
}

func (s *Service) GetMyBookings(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, int64, error) {
	return s.bookings.GetByUserID(ctx, userID, limit, offset)
}

// ListBookings returns the bookings visible to the actor: everything for an
// admin, bookings on owned items for a company.
func (s *Service) ListBookings(ctx context.Context, actor Actor, limit, offset int) ([]domain.Booking, int64, error) {
	if actor.isAdmin() {
		return s.bookings.List(ctx, limit, offset)
	}
	if actor.Role == domain.RoleCompany {
		return s.bookings.GetForOwner(ctx, actor.ID, limit, offset)
	}
	return nil, 0, ErrForbidden
}

func (s *Service) GetBooking(ctx context.Context, actor Actor, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if actor.isAdmin() || b.UserID == actor.ID {
		return b, nil
	}
	if actor.Role == domain.RoleCompany {
		owns, err := s.actorOwnsItem(ctx, actor, b)
		if err != nil {
			return nil, err
		}
		if owns {
			return b, nil
		}
	}
	return nil, ErrForbidden
}

// UpdateStatus transitions a booking. Companies may only act on bookings
// that reference their own items; admins may act on any.
func (s *Service) UpdateStatus(ctx context.Context, actor Actor, id int64, newStatus string) (*domain.Booking, error) {
	status := domain.BookingStatus(newStatus)
	if status != domain.BookingConfirmed && status != domain.BookingCancelled {
		return nil, ErrInvalidTransition
	}

	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !actor.isAdmin() {
		if actor.Role != domain.RoleCompany {
			return nil, ErrForbidden
		}
		owns, err := s.actorOwnsItem(ctx, actor, b)
		if err != nil {
			return nil, err
		}
		if !owns {
			return nil, ErrForbidden
		}
	}

	if !b.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	return s.bookings.GetByID(ctx, id)
}

func (s *Service) actorOwnsItem(ctx context.Context, actor Actor, b *domain.Booking) (bool, error) {
	kind, itemID := b.ItemRef()
	if kind == "" {
		return false, nil
	}
	item, err := s.catalog.GetPricing(ctx, kind, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return item.OwnerID != nil && *item.OwnerID == actor.ID, nil
}
