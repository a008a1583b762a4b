package notifications

import "context"

type Repository interface {
	Insert(ctx context.Context, id string, n Notification) error
	Get(ctx context.Context, id string) (Notification, error)
	List(ctx context.Context) ([]Notification, error)
}

type UserDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}
