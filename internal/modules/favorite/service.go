package favorite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"travelnest/internal/domain"
)

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrFavoriteNotFound    = errors.New("favorite not found")
)

// FavoriteRepository defines the persistence the favorite service needs.
// Add must be idempotent: re-adding an existing pair returns the stored
// record instead of creating a duplicate.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, destinationID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, destinationID int64) error
	GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Favorite, int64, error)
	Exists(ctx context.Context, userID, destinationID int64) (bool, error)
}

type DestinationReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Destination, error)
}

type Service struct {
	favorites    FavoriteRepository
	destinations DestinationReader
}

func NewService(favorites FavoriteRepository, destinations DestinationReader) *Service {
	return &Service{favorites: favorites, destinations: destinations}
}

func (s *Service) Add(ctx context.Context, userID, destinationID int64) (*domain.Favorite, error) {
	if _, err := s.destinations.GetByID(ctx, destinationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return s.favorites.Add(ctx, userID, destinationID)
}

func (s *Service) Remove(ctx context.Context, userID, destinationID int64) error {
	err := s.favorites.Remove(ctx, userID, destinationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Nothing was bookmarked; the destination itself may well exist.
		return ErrFavoriteNotFound
	}
	return err
}

func (s *Service) List(ctx context.Context, userID int64, limit, offset int) ([]domain.Favorite, int64, error) {
	return s.favorites.GetByUserID(ctx, userID, limit, offset)
}

func (s *Service) IsFavorited(ctx context.Context, userID, destinationID int64) (bool, error) {
	return s.favorites.Exists(ctx, userID, destinationID)
}
