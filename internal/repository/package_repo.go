package repository

import (
	"context"

	"gorm.io/gorm"

	"travelnest/internal/domain"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) List(ctx context.Context, f ItemFilters) ([]domain.Package, int64, error) {
	var (
		items []domain.Package
		total int64
	)

	q := applyItemFilters(r.db.WithContext(ctx).Model(&domain.Package{}), f)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := paginate(q, f.Limit, f.Offset).Order("created_at DESC").Find(&items).Error
	return items, total, err
}

func (r *PackageRepository) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	var p domain.Package
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PackageRepository) Create(ctx context.Context, p *domain.Package) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PackageRepository) Update(ctx context.Context, p *domain.Package) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PackageRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Package{}, id).Error
}

func (r *PackageRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).Model(&domain.Package{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *PackageRepository) SetFeatured(ctx context.Context, id int64, featured bool) error {
	return r.db.WithContext(ctx).Model(&domain.Package{}).
		Where("id = ?", id).
		Update("is_featured", featured).Error
}
