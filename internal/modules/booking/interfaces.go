package booking

import (
	"context"

	"travelnest/internal/domain"
	"travelnest/internal/repository"
)

// BookingRepository defines the persistence the booking service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, int64, error)
	GetForOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Booking, int64, error)
	List(ctx context.Context, limit, offset int) ([]domain.Booking, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// CatalogReader resolves the live pricing projection of a referenced item.
type CatalogReader interface {
	GetPricing(ctx context.Context, kind domain.ItemKind, id int64) (*repository.ItemPricing, error)
}
