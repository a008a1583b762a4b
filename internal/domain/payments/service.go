package payments

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"pet-care-registry/internal/domain/apperr"
	"pet-care-registry/internal/domain/listing"
	"pet-care-registry/internal/validation"

	"github.com/google/uuid"
)

type Service struct {
	repo         Repository
	users        Directory
	appointments Directory

	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository, users, appointments Directory) *Service {
	return &Service{
		repo:         repo,
		users:        users,
		appointments: appointments,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

type CreateInput struct {
	UserID        string
	AppointmentID string
	// nil cuando el campo no vino en el payload
	Amount *float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Payment, error) {
	userID := strings.TrimSpace(in.UserID)
	apptID := strings.TrimSpace(in.AppointmentID)

	if err := validation.Required(
		validation.Field{Name: "userId", Value: userID},
		validation.Field{Name: "appointmentId", Value: apptID},
	); err != nil {
		return Payment{}, err
	}
	if in.Amount == nil {
		return Payment{}, apperr.InvalidPayload("amount is required")
	}
	if err := validation.Positive("amount", *in.Amount); err != nil {
		return Payment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validation.Exists(ctx, s.users, "user", userID); err != nil {
		return Payment{}, err
	}
	if err := validation.Exists(ctx, s.appointments, "appointment", apptID); err != nil {
		return Payment{}, err
	}

	p := Payment{
		ID:            s.newID(),
		UserID:        userID,
		AppointmentID: apptID,
		Amount:        *in.Amount,
		Status:        StatusPending,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, p.ID, p); err != nil {
		return Payment{}, fmt.Errorf("insert payment: %w", err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Payment, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return listing.Filter(items, nil, "no payments found")
}
