package pets

import "context"

type Repository interface {
	Insert(ctx context.Context, id string, p Pet) error
	Get(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
}
