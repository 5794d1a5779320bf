package repository

import (
	"context"

	"gorm.io/gorm"

	"travelnest/internal/domain"
)

type DestinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

func (r *DestinationRepository) List(ctx context.Context, f ItemFilters) ([]domain.Destination, int64, error) {
	var (
		items []domain.Destination
		total int64
	)

	q := applyItemFilters(r.db.WithContext(ctx).Model(&domain.Destination{}), f)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := paginate(q, f.Limit, f.Offset).Order("created_at DESC").Find(&items).Error
	return items, total, err
}

func (r *DestinationRepository) GetByID(ctx context.Context, id int64) (*domain.Destination, error) {
	var d domain.Destination
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DestinationRepository) Create(ctx context.Context, d *domain.Destination) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DestinationRepository) Update(ctx context.Context, d *domain.Destination) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DestinationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Destination{}, id).Error
}

func (r *DestinationRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).Model(&domain.Destination{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *DestinationRepository) SetFeatured(ctx context.Context, id int64, featured bool) error {
	return r.db.WithContext(ctx).Model(&domain.Destination{}).
		Where("id = ?", id).
		Update("is_featured", featured).Error
}
