package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"pet-care-registry/internal/ports/storage"
)

// Collection es una colección in-memory: byID para lookups y order para List estable.
type Collection[T any] struct {
	name  string
	mu    sync.RWMutex
	byID  map[string]T
	order []string
}

func NewCollection[T any](name string) *Collection[T] {
	return &Collection[T]{
		name: name,
		byID: make(map[string]T),
	}
}

func (c *Collection[T]) Insert(ctx context.Context, id string, rec T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s: id required", c.name)
	}
	if _, exists := c.byID[id]; exists {
		return fmt.Errorf("%s %s: %w", c.name, id, storage.ErrDuplicateKey)
	}
	c.byID[id] = rec
	c.order = append(c.order, id)
	return nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.byID[id]
	if !ok {
		var zero T
		return zero, storage.ErrNotFound
	}
	return rec, nil
}

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[id]; !ok {
		return nil
	}
	delete(c.byID, id)
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len se usa en tests para verificar que un create fallido no escribió nada.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
