package contact

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"travelnest/internal/domain"
)

var ErrNotFound = errors.New("contact message not found")

// ContactRepository defines the persistence the contact service needs.
type ContactRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) error
	List(ctx context.Context, unreadOnly bool, limit, offset int) ([]domain.ContactMessage, int64, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	messages ContactRepository
}

func NewService(messages ContactRepository) *Service {
	return &Service{messages: messages}
}

func (s *Service) Submit(ctx context.Context, req SubmitMessageRequest) (*domain.ContactMessage, error) {
	m := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, unreadOnly bool, limit, offset int) ([]domain.ContactMessage, int64, error) {
	return s.messages.List(ctx, unreadOnly, limit, offset)
}

func (s *Service) MarkRead(ctx context.Context, id int64) error {
	err := s.messages.MarkRead(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.messages.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
