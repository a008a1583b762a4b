package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"pet-care-registry/internal/domain/listing"
	"pet-care-registry/internal/ports/storage"
	"pet-care-registry/internal/validation"

	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	pets  PetDirectory
	users UserDirectory

	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository, pets PetDirectory, users UserDirectory) *Service {
	return &Service{
		repo:  repo,
		pets:  pets,
		users: users,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

type ScheduleInput struct {
	PetID          string
	VeterinarianID string
	Date           string
}

func (s *Service) Schedule(ctx context.Context, in ScheduleInput) (Appointment, error) {
	petID := strings.TrimSpace(in.PetID)
	vetID := strings.TrimSpace(in.VeterinarianID)
	date := strings.TrimSpace(in.Date)

	if err := validation.Required(
		validation.Field{Name: "petId", Value: petID},
		validation.Field{Name: "veterinarianId", Value: vetID},
		validation.Field{Name: "date", Value: date},
	); err != nil {
		return Appointment{}, err
	}
	if err := validation.Date("date", date); err != nil {
		return Appointment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validation.Exists(ctx, s.pets, "pet", petID); err != nil {
		return Appointment{}, err
	}
	if err := validation.Exists(ctx, s.users, "veterinarian", vetID); err != nil {
		return Appointment{}, err
	}

	a := Appointment{
		ID:             s.newID(),
		PetID:          petID,
		VeterinarianID: vetID,
		Date:           date,
		Status:         StatusScheduled,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, a.ID, a); err != nil {
		return Appointment{}, fmt.Errorf("insert appointment: %w", err)
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return listing.Filter(items, nil, "no appointments found")
}

// ListByUser es getUserAppointments: turnos cuyas mascotas pertenecen a userID.
// No compara petId contra userID.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Appointment, error) {
	userID = strings.TrimSpace(userID)
	owned, err := s.pets.IDsOwnedBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("pets of user %s: %w", userID, err)
	}
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return listing.Filter(items, func(a Appointment) bool {
		_, ok := owned[a.PetID]
		return ok
	}, fmt.Sprintf("no appointments found for user %s", userID))
}

// Exists implementa validation.Lookup (payments referencia appointments).
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, nil
	}
	_, err := s.repo.Get(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	return false, err
}
