package users

import (
	"context"
	"errors"
	"strings"

	"pet-care-registry/internal/ports/storage"
)

// Exists implementa validation.Lookup para los módulos que referencian usuarios
// (appointments, health records, prescriptions, messages, notifications, payments, adoptions).
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
