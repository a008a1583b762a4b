package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-registry/internal/domain/apperr"
	"pet-care-registry/internal/domain/listing"
	"pet-care-registry/internal/ports/storage"
	"pet-care-registry/internal/validation"

	"github.com/google/uuid"
)

type Service struct {
	repo      Repository
	emails    KeyIndex
	usernames KeyIndex

	now   func() time.Time
	newID func() string
}

func NewService(repo Repository, emails, usernames KeyIndex) *Service {
	return &Service{
		repo:      repo,
		emails:    emails,
		usernames: usernames,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

type CreateInput struct {
	Username    string
	Email       string
	PhoneNumber string
	Role        string
}

// Create reserva email y username en el store antes de insertar el user.
// La unicidad la garantiza el Insert atómico de los índices, no un lock del proceso.
func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.PhoneNumber)

	if err := validation.Required(
		validation.Field{Name: "username", Value: username},
		validation.Field{Name: "email", Value: email},
		validation.Field{Name: "phoneNumber", Value: phone},
		validation.Field{Name: "role", Value: in.Role},
	); err != nil {
		return User{}, err
	}
	if err := validation.Email(email); err != nil {
		return User{}, err
	}
	if err := validation.Phone(phone); err != nil {
		return User{}, err
	}
	role, err := ParseRole(strings.TrimSpace(in.Role))
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:          s.newID(),
		Username:    username,
		Email:       email,
		PhoneNumber: phone,
		Role:        role,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.claim(ctx, s.emails, email, u.ID, "email %s is already registered"); err != nil {
		return User{}, err
	}
	if err := s.claim(ctx, s.usernames, username, u.ID, "username %s is already taken"); err != nil {
		s.release(ctx, s.emails, email)
		return User{}, err
	}
	if err := s.repo.Insert(ctx, u.ID, u); err != nil {
		s.release(ctx, s.usernames, username)
		s.release(ctx, s.emails, email)
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (s *Service) claim(ctx context.Context, idx KeyIndex, key, userID, takenMsg string) error {
	err := idx.Insert(ctx, key, userID)
	if err == nil {
		return nil
	}
	if errors.Is(err, storage.ErrDuplicateKey) {
		return apperr.InvalidPayload(takenMsg, key)
	}
	return fmt.Errorf("claim %s: %w", key, err)
}

// release deshace un claim de un create que no llegó a insertar.
func (s *Service) release(ctx context.Context, idx KeyIndex, key string) {
	_ = idx.Delete(context.WithoutCancel(ctx), key)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return listing.Filter(items, nil, "no users found")
}

func (s *Service) ListByRole(ctx context.Context, role string) ([]User, error) {
	r, err := ParseRole(strings.TrimSpace(role))
	if err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return listing.Filter(items, func(u User) bool { return u.Role == r }, fmt.Sprintf("no users with role %s found", r))
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	u, err := s.repo.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return User{}, apperr.NotFound("user %s not found", id)
		}
		return User{}, fmt.Errorf("get user %s: %w", id, err)
	}
	return u, nil
}
