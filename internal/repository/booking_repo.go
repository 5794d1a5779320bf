package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"travelnest/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64           `gorm:"column:id;primaryKey"`
	UserID        int64           `gorm:"column:user_id"`
	DestinationID *int64          `gorm:"column:destination_id"`
	PackageID     *int64          `gorm:"column:package_id"`
	OfferID       *int64          `gorm:"column:offer_id"`
	CheckIn       time.Time       `gorm:"column:check_in"`
	CheckOut      time.Time       `gorm:"column:check_out"`
	Guests        int             `gorm:"column:guests"`
	TotalPrice    decimal.Decimal `gorm:"column:total_price;type:decimal(10,2)"`
	Status        string          `gorm:"column:status"`
	Notes         *string         `gorm:"column:notes"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
	CancelledAt   *time.Time      `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Booking{
		ID:            m.ID,
		UserID:        m.UserID,
		DestinationID: m.DestinationID,
		PackageID:     m.PackageID,
		OfferID:       m.OfferID,
		CheckIn:       m.CheckIn,
		CheckOut:      m.CheckOut,
		Guests:        m.Guests,
		TotalPrice:    m.TotalPrice,
		Status:        domain.BookingStatus(m.Status),
		Notes:         notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		CancelledAt:   m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}

	return bookingModel{
		ID:            b.ID,
		UserID:        b.UserID,
		DestinationID: b.DestinationID,
		PackageID:     b.PackageID,
		OfferID:       b.OfferID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Guests:        b.Guests,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		Notes:         notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		CancelledAt:   b.CancelledAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, int64, error) {
	var (
		rows  []bookingModel
		total int64
	)

	q := r.db.WithContext(ctx).Model(&bookingModel{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := paginate(q, limit, offset).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, total, nil
}

// GetForOwner returns bookings that reference any catalog item owned by the
// given company user.
func (r *BookingRepository) GetForOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Booking, int64, error) {
	var (
		rows  []bookingModel
		total int64
	)

	destIDs := r.db.Model(&domain.Destination{}).Select("id").Where("owner_id = ?", ownerID)
	pkgIDs := r.db.Model(&domain.Package{}).Select("id").Where("owner_id = ?", ownerID)
	offerIDs := r.db.Model(&domain.Offer{}).Select("id").Where("owner_id = ?", ownerID)

	q := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("destination_id IN (?) OR package_id IN (?) OR offer_id IN (?)", destIDs, pkgIDs, offerIDs)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := paginate(q, limit, offset).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, total, nil
}

func (r *BookingRepository) List(ctx context.Context, limit, offset int) ([]domain.Booking, int64, error) {
	var (
		rows  []bookingModel
		total int64
	)

	q := r.db.WithContext(ctx).Model(&bookingModel{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := paginate(q, limit, offset).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, total, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	updates := map[string]any{"status": string(status)}
	if status == domain.BookingCancelled {
		now := time.Now()
		updates["cancelled_at"] = &now
	}
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(updates).Error
}
