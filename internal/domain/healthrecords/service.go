package healthrecords

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

type CreateInput struct {
	PetID          string
	VeterinarianID string
	Record         string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (HealthRecord, error) {
	petID := strings.TrimSpace(in.PetID)
	vetID := strings.TrimSpace(in.VeterinarianID)

	if err := validation.Required(
		validation.Field{Name: "petId", Value: petID},
		validation.Field{Name: "veterinarianId", Value: vetID},
		validation.Field{Name: "record", Value: in.Record},
	); err != nil {
		return HealthRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validation.Exists(ctx, s.pets, "pet", petID); err != nil {
		return HealthRecord{}, err
	}
	if err := validation.Exists(ctx, s.users, "veterinarian", vetID); err != nil {
		return HealthRecord{}, err
	}

	h := HealthRecord{
		ID:             s.newID(),
		PetID:          petID,
		VeterinarianID: vetID,
		Record:         in.Record,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, h.ID, h); err != nil {
		return HealthRecord{}, fmt.Errorf("insert health record: %w", err)
	}
	return h, nil
}

func (s *Service) List(ctx context.Context) ([]HealthRecord, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list health records: %w", err)
	}
	return listing.Filter(items, nil, "no health records found")
}

// ListByUser es getUserHealthRecords: registros de las mascotas cuyo dueño es userID.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]HealthRecord, error) {
	userID = strings.TrimSpace(userID)
	owned, err := s.pets.IDsOwnedBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("pets of user %s: %w", userID, err)
	}
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list health records: %w", err)
	}
	return listing.Filter(items, func(h HealthRecord) bool {
		_, ok := owned[h.PetID]
		return ok
	}, fmt.Sprintf("no health records found for user %s", userID))
}
