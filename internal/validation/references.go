package validation

import (
	"context"
	"fmt"

	"pet-care-registry/internal/domain/apperr"
)

// Lookup lo implementan los services de las entidades referenciables (users, pets, appointments).
type Lookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Exists es la validación referencial: NotFound nombrando la entidad y su id si no resuelve.
// Un error del lookup no es un NotFound: se envuelve y se propaga tal cual.
func Exists(ctx context.Context, l Lookup, entity, id string) error {
	ok, err := l.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("lookup %s %s: %w", entity, id, err)
	}
	if !ok {
		return apperr.NotFound("%s %s not found", entity, id)
	}
	return nil
}
