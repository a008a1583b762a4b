package payments

import "context"

type Repository interface {
	Insert(ctx context.Context, id string, p Payment) error
	Get(ctx context.Context, id string) (Payment, error)
	List(ctx context.Context) ([]Payment, error)
}

// Directory cubre users y appointments.
type Directory interface {
	Exists(ctx context.Context, id string) (bool, error)
}
