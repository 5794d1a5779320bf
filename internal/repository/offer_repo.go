package repository

import (
	"context"

	"gorm.io/gorm"

	"travelnest/internal/domain"
)

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) List(ctx context.Context, f ItemFilters) ([]domain.Offer, int64, error) {
	var (
		items []domain.Offer
		total int64
	)

	q := applyItemFilters(r.db.WithContext(ctx).Model(&domain.Offer{}), f)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := paginate(q, f.Limit, f.Offset).Order("created_at DESC").Find(&items).Error
	return items, total, err
}

func (r *OfferRepository) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	var o domain.Offer
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OfferRepository) Create(ctx context.Context, o *domain.Offer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OfferRepository) Update(ctx context.Context, o *domain.Offer) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *OfferRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Offer{}, id).Error
}

func (r *OfferRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).Model(&domain.Offer{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *OfferRepository) SetFeatured(ctx context.Context, id int64, featured bool) error {
	return r.db.WithContext(ctx).Model(&domain.Offer{}).
		Where("id = ?", id).
		Update("is_featured", featured).Error
}
