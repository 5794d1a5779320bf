package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"travelnest/internal/domain"
)

// Service contains the business logic for registration and login.
type Service struct {
	users UserRepository
	jwt   jwtService
}

type LoginResult struct {
	User  *domain.User
	Token string
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) RegisterUser(ctx context.Context, req RegisterUserRequest) (*domain.User, error) {
	return s.register(ctx, &domain.User{
		Email: req.Email,
		Name:  req.Name,
		Phone: req.Phone,
		Role:  domain.RoleUser,
	}, req.Password)
}

func (s *Service) RegisterCompany(ctx context.Context, req RegisterCompanyRequest) (*domain.User, error) {
	return s.register(ctx, &domain.User{
		Email:       req.Email,
		Name:        req.Name,
		Phone:       req.Phone,
		CompanyName: req.CompanyName,
		Role:        domain.RoleCompany,
	}, req.Password)
}

func (s *Service) register(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(user.Email))
	user.Email = email

	if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)

	if err := s.users.Create(ctx, user); err != nil {
		// Unique index on email closes the check-then-create race.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: token}, nil
}
