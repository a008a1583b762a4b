package messages

import "context"

type Repository interface {
	Insert(ctx context.Context, id string, m Message) error
	Get(ctx context.Context, id string) (Message, error)
	List(ctx context.Context) ([]Message, error)
}

type UserDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}
