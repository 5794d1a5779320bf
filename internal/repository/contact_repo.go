package repository

import (
	"context"

	"gorm.io/gorm"

	"travelnest/internal/domain"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, m *domain.ContactMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ContactRepository) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	var m domain.ContactMessage
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ContactRepository) List(ctx context.Context, unreadOnly bool, limit, offset int) ([]domain.ContactMessage, int64, error) {
	var (
		messages []domain.ContactMessage
		total    int64
	)

	q := r.db.WithContext(ctx).Model(&domain.ContactMessage{})
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := paginate(q, limit, offset).Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

func (r *ContactRepository) MarkRead(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Model(&domain.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.ContactMessage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
