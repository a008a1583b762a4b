package prescriptions

import "context"

type Repository interface {
	Insert(ctx context.Context, id string, p Prescription) error
	Get(ctx context.Context, id string) (Prescription, error)
	List(ctx context.Context) ([]Prescription, error)
}

// Directory lo implementan pets.Service y users.Service.
type Directory interface {
	Exists(ctx context.Context, id string) (bool, error)
}
