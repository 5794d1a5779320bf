package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"travelnest/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role domain.UserRole) (string, error) {
	return "test-token", nil
}

func TestRegisterUser(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})

	users.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	u, err := svc.RegisterUser(context.Background(), RegisterUserRequest{
		Email:    "Alice@Example.com",
		Password: "hunter2hunter2",
		Name:     "Alice",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.NotEqual(t, "hunter2hunter2", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2hunter2")))
	users.AssertExpectations(t)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})

	users.On("GetByEmail", mock.Anything, "alice@example.com").Return(&domain.User{ID: 1}, nil)

	_, err := svc.RegisterUser(context.Background(), RegisterUserRequest{
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
		Name:     "Alice",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterCompany(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})

	users.On("GetByEmail", mock.Anything, "travel@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	u, err := svc.RegisterCompany(context.Background(), RegisterCompanyRequest{
		Email:       "travel@example.com",
		Password:    "hunter2hunter2",
		Name:        "Bob",
		CompanyName: "Demo Travel Co",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleCompany, u.Role)
	assert.Equal(t, "Demo Travel Co", u.CompanyName)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.User{
		ID:           1,
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}

	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})
	users.On("GetByEmail", mock.Anything, "alice@example.com").Return(stored, nil)

	res, err := svc.Login(context.Background(), LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "test-token", res.Token)
	assert.Equal(t, int64(1), res.User.ID)

	_, err = svc.Login(context.Background(), LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})

	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
