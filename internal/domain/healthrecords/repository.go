package healthrecords

import "context"

type Repository interface {
	Insert(ctx context.Context, id string, h HealthRecord) error
	Get(ctx context.Context, id string) (HealthRecord, error)
	List(ctx context.Context) ([]HealthRecord, error)
}

type PetDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
	IDsOwnedBy(ctx context.Context, userID string) (map[string]struct{}, error)
}

type UserDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}
