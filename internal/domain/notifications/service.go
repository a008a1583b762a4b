package notifications

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"pet-care-registry/internal/domain/listing"
	"pet-care-registry/internal/validation"

	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	users UserDirectory

	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository, users UserDirectory) *Service {
	return &Service{
		repo:  repo,
		users: users,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

type SendInput struct {
	UserID  string
	Message string
}

func (s *Service) Send(ctx context.Context, in SendInput) (Notification, error) {
	userID := strings.TrimSpace(in.UserID)

	if err := validation.Required(
		validation.Field{Name: "userId", Value: userID},
		validation.Field{Name: "message", Value: in.Message},
	); err != nil {
		return Notification{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validation.Exists(ctx, s.users, "user", userID); err != nil {
		return Notification{}, err
	}

	n := Notification{
		ID:        s.newID(),
		UserID:    userID,
		Message:   in.Message,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, n.ID, n); err != nil {
		return Notification{}, fmt.Errorf("insert notification: %w", err)
	}
	return n, nil
}

func (s *Service) List(ctx context.Context) ([]Notification, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return listing.Filter(items, nil, "no notifications found")
}
