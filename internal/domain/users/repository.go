package users

import "context"

type Repository interface {
	Insert(ctx context.Context, id string, u User) error
	Get(ctx context.Context, id string) (User, error)
	List(ctx context.Context) ([]User, error)
}

// KeyIndex reserva un valor único (email o username) apuntando al user id.
// Insert devuelve storage.ErrDuplicateKey si el valor ya está tomado, también desde otro proceso.
type KeyIndex interface {
	Insert(ctx context.Context, key string, userID string) error
	Delete(ctx context.Context, key string) error
}
