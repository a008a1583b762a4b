package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-care-registry/internal/ports/storage"
)

// Exists implementa validation.Lookup.
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

// IDsOwnedBy devuelve los ids de mascotas de un usuario (vacío no es error).
// Lo usan appointments y healthrecords para filtrar por dueño.
func (s *Service) IDsOwnedBy(ctx context.Context, userID string) (map[string]struct{}, error) {
	userID = strings.TrimSpace(userID)
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	out := make(map[string]struct{})
	for _, p := range items {
		if p.OwnerID == userID {
			out[p.ID] = struct{}{}
		}
	}
	return out, nil
}
