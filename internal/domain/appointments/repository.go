package appointments

import "context"

type Repository interface {
	Insert(ctx context.Context, id string, a Appointment) error
	Get(ctx context.Context, id string) (Appointment, error)
	List(ctx context.Context) ([]Appointment, error)
}

// PetDirectory lo implementa pets.Service.
type PetDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
	IDsOwnedBy(ctx context.Context, userID string) (map[string]struct{}, error)
}

// UserDirectory lo implementa users.Service.
type UserDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}
