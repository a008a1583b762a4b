package adoptions

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
	pets  Directory
	users Directory

	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository, pets, users Directory) *Service {
	return &Service{
		repo:  repo,
		pets:  pets,
		users: users,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

type RequestInput struct {
	PetID     string
	AdopterID string
}

func (s *Service) Request(ctx context.Context, in RequestInput) (PetAdoption, error) {
	petID := strings.TrimSpace(in.PetID)
	adopterID := strings.TrimSpace(in.AdopterID)

	if err := validation.Required(
		validation.Field{Name: "petId", Value: petID},
		validation.Field{Name: "adopterId", Value: adopterID},
	); err != nil {
		return PetAdoption{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validation.Exists(ctx, s.pets, "pet", petID); err != nil {
		return PetAdoption{}, err
	}
	if err := validation.Exists(ctx, s.users, "adopter", adopterID); err != nil {
		return PetAdoption{}, err
	}

	a := PetAdoption{
		ID:        s.newID(),
		PetID:     petID,
		AdopterID: adopterID,
		Status:    StatusPending,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, a.ID, a); err != nil {
		return PetAdoption{}, fmt.Errorf("insert adoption: %w", err)
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]PetAdoption, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list adoptions: %w", err)
	}
	return listing.Filter(items, nil, "no pet adoptions found")
}
