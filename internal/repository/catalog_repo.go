package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"travelnest/internal/domain"
)

// ItemFilters narrows catalog listings. Zero values mean "no filter".
type ItemFilters struct {
	Category string
	Location string
	Featured *bool
	Active   *bool
	MaxPrice *decimal.Decimal
	Limit    int
	Offset   int
}

func applyItemFilters(q *gorm.DB, f ItemFilters) *gorm.DB {
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Location != "" {
		q = q.Where("location LIKE ?", "%"+f.Location+"%")
	}
	if f.Featured != nil {
		q = q.Where("is_featured = ?", *f.Featured)
	}
	if f.Active != nil {
		q = q.Where("is_active = ?", *f.Active)
	}
	if f.MaxPrice != nil {
		q = q.Where("base_price <= ?", *f.MaxPrice)
	}
	return q
}

func paginate(q *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	return q
}

// ItemPricing is the projection the booking service reads when resolving a
// charge: live price fields plus enough state to check eligibility.
type ItemPricing struct {
	ID            int64
	Title         string
	BasePrice     decimal.Decimal
	DiscountPrice *decimal.Decimal
	IsActive      bool
	OwnerID       *int64
}

// CatalogRepository answers kind-dispatched lookups across the three
// sellable item tables.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetPricing fetches the pricing projection for one item. Soft-deleted rows
// are invisible; a missing row surfaces as gorm.ErrRecordNotFound.
func (r *CatalogRepository) GetPricing(ctx context.Context, kind domain.ItemKind, id int64) (*ItemPricing, error) {
	var (
		p   ItemPricing
		tx  *gorm.DB
		sel = "id, title, base_price, discount_price, is_active, owner_id"
	)

	switch kind {
	case domain.KindDestination:
		tx = r.db.WithContext(ctx).Model(&domain.Destination{}).Select(sel).Where("id = ?", id).Take(&p)
	case domain.KindPackage:
		tx = r.db.WithContext(ctx).Model(&domain.Package{}).Select(sel).Where("id = ?", id).Take(&p)
	case domain.KindOffer:
		tx = r.db.WithContext(ctx).Model(&domain.Offer{}).Select(sel).Where("id = ?", id).Take(&p)
	default:
		return nil, errors.New("unknown item kind")
	}

	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}
