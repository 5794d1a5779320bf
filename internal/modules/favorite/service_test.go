package favorite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"travelnest/internal/domain"
)

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, userID, destinationID int64) (*domain.Favorite, error) {
	args := m.Called(ctx, userID, destinationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, destinationID int64) error {
	args := m.Called(ctx, userID, destinationID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Favorite, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Favorite), args.Get(1).(int64), args.Error(2)
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, userID, destinationID int64) (bool, error) {
	args := m.Called(ctx, userID, destinationID)
	return args.Bool(0), args.Error(1)
}

type MockDestinationReader struct {
	mock.Mock
}

func (m *MockDestinationReader) GetByID(ctx context.Context, id int64) (*domain.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Destination), args.Error(1)
}

func TestAdd_DestinationMissing(t *testing.T) {
	favorites := new(MockFavoriteRepository)
	destinations := new(MockDestinationReader)
	svc := NewService(favorites, destinations)

	destinations.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Add(context.Background(), 1, 99)

	assert.ErrorIs(t, err, ErrDestinationNotFound)
	favorites.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdd(t *testing.T) {
	favorites := new(MockFavoriteRepository)
	destinations := new(MockDestinationReader)
	svc := NewService(favorites, destinations)

	destinations.On("GetByID", mock.Anything, int64(7)).Return(&domain.Destination{ID: 7}, nil)
	favorites.On("Add", mock.Anything, int64(1), int64(7)).Return(&domain.Favorite{ID: 3, UserID: 1, DestinationID: 7}, nil)

	fav, err := svc.Add(context.Background(), 1, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(3), fav.ID)
}

func TestRemove_NotFavorited(t *testing.T) {
	favorites := new(MockFavoriteRepository)
	svc := NewService(favorites, new(MockDestinationReader))

	// The destination exists; the bookmark does not. The error must say so.
	favorites.On("Remove", mock.Anything, int64(1), int64(7)).Return(gorm.ErrRecordNotFound)

	err := svc.Remove(context.Background(), 1, 7)

	assert.ErrorIs(t, err, ErrFavoriteNotFound)
	assert.NotErrorIs(t, err, ErrDestinationNotFound)
}

func TestRemove(t *testing.T) {
	favorites := new(MockFavoriteRepository)
	svc := NewService(favorites, new(MockDestinationReader))

	favorites.On("Remove", mock.Anything, int64(1), int64(7)).Return(nil)

	assert.NoError(t, svc.Remove(context.Background(), 1, 7))
}
