package prescriptions

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

type CreateInput struct {
	PetID          string
	VeterinarianID string
	Medication     string
	Dosage         string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Prescription, error) {
	petID := strings.TrimSpace(in.PetID)
	vetID := strings.TrimSpace(in.VeterinarianID)

	if err := validation.Required(
		validation.Field{Name: "petId", Value: petID},
		validation.Field{Name: "veterinarianId", Value: vetID},
		validation.Field{Name: "medication", Value: in.Medication},
		validation.Field{Name: "dosage", Value: in.Dosage},
	); err != nil {
		return Prescription{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validation.Exists(ctx, s.pets, "pet", petID); err != nil {
		return Prescription{}, err
	}
	if err := validation.Exists(ctx, s.users, "veterinarian", vetID); err != nil {
		return Prescription{}, err
	}

	p := Prescription{
		ID:             s.newID(),
		PetID:          petID,
		VeterinarianID: vetID,
		Medication:     in.Medication,
		Dosage:         in.Dosage,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, p.ID, p); err != nil {
		return Prescription{}, fmt.Errorf("insert prescription: %w", err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Prescription, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	return listing.Filter(items, nil, "no prescriptions found")
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Prescription, error) {
	petID = strings.TrimSpace(petID)
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	return listing.Filter(items, func(p Prescription) bool { return p.PetID == petID }, fmt.Sprintf("no prescriptions found for pet %s", petID))
}
