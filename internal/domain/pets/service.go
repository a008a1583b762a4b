package pets

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
	repo  Repository
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

type CreateInput struct {
	OwnerID string
	Name    string
	Species string
	Breed   string
	// nil = no enviado
	Age *int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	ownerID := strings.TrimSpace(in.OwnerID)

	if err := validation.Required(
		validation.Field{Name: "ownerId", Value: ownerID},
		validation.Field{Name: "name", Value: in.Name},
		validation.Field{Name: "species", Value: in.Species},
		validation.Field{Name: "breed", Value: in.Breed},
	); err != nil {
		return Pet{}, err
	}
	if in.Age == nil {
		return Pet{}, apperr.InvalidPayload("age is required")
	}
	if err := validation.NonNegative("age", *in.Age); err != nil {
		return Pet{}, err
	}

	// Los textos libres se guardan tal como llegaron; Required ya descarta los vacíos.
	p := Pet{
		ID:        s.newID(),
		OwnerID:   ownerID,
		Name:      in.Name,
		Species:   in.Species,
		Breed:     in.Breed,
		Age:       *in.Age,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, p.ID, p); err != nil {
		return Pet{}, fmt.Errorf("insert pet: %w", err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	return listing.Filter(items, nil, "no pets found")
}

// ListByOwner es getUserPets: filtra por ownerId == userID.
func (s *Service) ListByOwner(ctx context.Context, userID string) ([]Pet, error) {
	userID = strings.TrimSpace(userID)
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	return listing.Filter(items, func(p Pet) bool { return p.OwnerID == userID }, fmt.Sprintf("no pets found for user %s", userID))
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	p, err := s.repo.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Pet{}, apperr.NotFound("pet %s not found", id)
		}
		return Pet{}, fmt.Errorf("get pet %s: %w", id, err)
	}
	return p, nil
}
