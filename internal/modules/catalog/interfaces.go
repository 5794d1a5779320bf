package catalog

import (
	"context"

	"travelnest/internal/domain"
	"travelnest/internal/repository"
)

type DestinationRepository interface {
	List(ctx context.Context, f repository.ItemFilters) ([]domain.Destination, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Destination, error)
	Create(ctx context.Context, d *domain.Destination) error
	Update(ctx context.Context, d *domain.Destination) error
	Delete(ctx context.Context, id int64) error
	SetActive(ctx context.Context, id int64, active bool) error
	SetFeatured(ctx context.Context, id int64, featured bool) error
}

type PackageRepository interface {
	List(ctx context.Context, f repository.ItemFilters) ([]domain.Package, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
	Create(ctx context.Context, p *domain.Package) error
	Update(ctx context.Context, p *domain.Package) error
	Delete(ctx context.Context, id int64) error
	SetActive(ctx context.Context, id int64, active bool) error
	SetFeatured(ctx context.Context, id int64, featured bool) error
}

type OfferRepository interface {
	List(ctx context.Context, f repository.ItemFilters) ([]domain.Offer, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Offer, error)
	Create(ctx context.Context, o *domain.Offer) error
	Update(ctx context.Context, o *domain.Offer) error
	Delete(ctx context.Context, id int64) error
	SetActive(ctx context.Context, id int64, active bool) error
	SetFeatured(ctx context.Context, id int64, featured bool) error
}
