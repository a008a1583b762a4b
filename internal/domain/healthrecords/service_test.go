package healthrecords

import (
	"context"
	"errors"
	"testing"

	"pet-care-registry/internal/adapters/storage/memory"
	"pet-care-registry/internal/domain/apperr"
)

type fakePets map[string]string // petID -> ownerID

func (f fakePets) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := f[id]
	return ok, nil
}

func (f fakePets) IDsOwnedBy(ctx context.Context, userID string) (map[string]struct{}, error) {
	out := map[string]struct{}{}
	for petID, owner := range f {
		if owner == userID {
			out[petID] = struct{}{}
		}
	}
	return out, nil
}

type fakeUsers map[string]bool

func (f fakeUsers) Exists(ctx context.Context, id string) (bool, error) { return f[id], nil }

func newTestService() (*Service, *memory.Collection[HealthRecord]) {
	repo := memory.NewCollection[HealthRecord]("health_records")
	return NewService(repo, fakePets{"rex": "u1", "tom": "u2"}, fakeUsers{"vet-1": true}), repo
}

func TestService_Create(t *testing.T) {
	svc, _ := newTestService()

	h, err := svc.Create(context.Background(), CreateInput{PetID: "rex", VeterinarianID: "vet-1", Record: "  annual checkup ok "})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if h.ID == "" || h.Record != "  annual checkup ok " || h.CreatedAt.IsZero() {
		t.Fatalf("unexpected record %+v", h)
	}
}

func TestService_Create_ValidationAndReferences(t *testing.T) {
	cases := []struct {
		name string
		in   CreateInput
		want error
	}{
		{"missing record", CreateInput{PetID: "rex", VeterinarianID: "vet-1"}, apperr.ErrInvalidPayload},
		{"missing pet id", CreateInput{VeterinarianID: "vet-1", Record: "x"}, apperr.ErrInvalidPayload},
		{"unknown pet", CreateInput{PetID: "ghost", VeterinarianID: "vet-1", Record: "x"}, apperr.ErrNotFound},
		{"unknown vet", CreateInput{PetID: "rex", VeterinarianID: "nobody", Record: "x"}, apperr.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newTestService()
			if _, err := svc.Create(context.Background(), tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if repo.Len() != 0 {
				t.Fatalf("nothing should be stored")
			}
		})
	}
}

func TestService_ListByUser(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.List(ctx); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected NotFound on empty, got %v", err)
	}

	mine, _ := svc.Create(ctx, CreateInput{PetID: "rex", VeterinarianID: "vet-1", Record: "vaccine"})
	_, _ = svc.Create(ctx, CreateInput{PetID: "tom", VeterinarianID: "vet-1", Record: "deworming"})

	got, err := svc.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 1 || got[0] != mine {
		t.Fatalf("expected only u1's record, got %+v", got)
	}
	if _, err := svc.ListByUser(ctx, "u9"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}

	all, _ := svc.List(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
}
