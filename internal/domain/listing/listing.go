// Package listing implementa la política de lectura de colecciones:
// un resultado vacío se reporta como NotFound, no como lista vacía.
package listing

import "pet-care-registry/internal/domain/apperr"

// Filter devuelve los items que cumplen keep (todos si keep es nil).
// Si no queda ninguno devuelve apperr.NotFound con emptyMsg.
func Filter[T any](items []T, keep func(T) bool, emptyMsg string) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep == nil || keep(it) {
			out = append(out, it)
		}
	}
	if len(out) == 0 {
		return nil, apperr.NotFound("%s", emptyMsg)
	}
	return out, nil
}
