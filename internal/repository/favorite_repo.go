package repository

import (
	"context"

	"gorm.io/gorm"

	"travelnest/internal/domain"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add bookmarks a destination for a user. Adding an existing pair returns
// the stored record unchanged, so the operation is idempotent even under
// concurrent requests (the unique index backs it up).
func (r *FavoriteRepository) Add(ctx context.Context, userID, destinationID int64) (*domain.Favorite, error) {
	fav := domain.Favorite{
		UserID:        userID,
		DestinationID: destinationID,
	}

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND destination_id = ?", userID, destinationID).
		FirstOrCreate(&fav).Error
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Preload("Destination").First(&fav, fav.ID).Error; err != nil {
		return nil, err
	}

	return &fav, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, destinationID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND destination_id = ?", userID, destinationID).
		Delete(&domain.Favorite{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FavoriteRepository) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Favorite, int64, error) {
	var (
		favorites []domain.Favorite
		total     int64
	)

	if err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Destination").
		Order("created_at DESC")

	if err := paginate(q, limit, offset).Find(&favorites).Error; err != nil {
		return nil, 0, err
	}

	return favorites, total, nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, destinationID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ? AND destination_id = ?", userID, destinationID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
