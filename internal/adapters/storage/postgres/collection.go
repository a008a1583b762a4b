package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"pet-care-registry/internal/ports/storage"
)

// Collection guarda cada registro como JSONB dentro de la tabla records,
// namespaced por nombre de colección.
type Collection[T any] struct {
	db   *sql.DB
	name string
}

func NewCollection[T any](db *sql.DB, name string) *Collection[T] {
	return &Collection[T]{db: db, name: name}
}

func (c *Collection[T]) Insert(ctx context.Context, id string, rec T) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s: id required", c.name)
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%s: encode %s: %w", c.name, id, err)
	}

	res, err := c.db.ExecContext(ctx, `
		INSERT INTO records (collection, id, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, id) DO NOTHING
	`, c.name, id, string(payload))
	if err != nil {
		return fmt.Errorf("%s: insert %s: %w", c.name, id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%s %s: %w", c.name, id, storage.ErrDuplicateKey)
	}
	return nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T

	id = strings.TrimSpace(id)
	if id == "" {
		return zero, storage.ErrNotFound
	}

	var payload []byte
	err := c.db.QueryRowContext(ctx, `
		SELECT payload FROM records
		WHERE collection = $1 AND id = $2
	`, c.name, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, storage.ErrNotFound
		}
		return zero, fmt.Errorf("%s: get %s: %w", c.name, id, err)
	}

	var rec T
	if err := json.Unmarshal(payload, &rec); err != nil {
		return zero, fmt.Errorf("%s: decode %s: %w", c.name, id, err)
	}
	return rec, nil
}

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT payload FROM records
		WHERE collection = $1
		ORDER BY seq ASC
	`, c.name)
	if err != nil {
		return nil, fmt.Errorf("%s: list: %w", c.name, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", c.name, err)
		}
		var rec T
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", c.name, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if _, err := c.db.ExecContext(ctx, `
		DELETE FROM records
		WHERE collection = $1 AND id = $2
	`, c.name, id); err != nil {
		return fmt.Errorf("%s: delete %s: %w", c.name, id, err)
	}
	return nil
}
