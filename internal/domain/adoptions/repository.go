package adoptions

import "context"

type Repository interface {
	Insert(ctx context.Context, id string, a PetAdoption) error
	Get(ctx context.Context, id string) (PetAdoption, error)
	List(ctx context.Context) ([]PetAdoption, error)
}

type Directory interface {
	Exists(ctx context.Context, id string) (bool, error)
}
