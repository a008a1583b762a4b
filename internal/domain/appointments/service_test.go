package appointments

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pet-care-registry/internal/adapters/storage/memory"
	"pet-care-registry/internal/domain/apperr"
)

// -------------------------
// Fakes
// -------------------------

type fakePets struct {
	owners map[string]string // petID -> ownerID
	err    error
}

func (f *fakePets) Exists(ctx context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.owners[id]
	return ok, nil
}

func (f *fakePets) IDsOwnedBy(ctx context.Context, userID string) (map[string]struct{}, error) {
	out := map[string]struct{}{}
	for petID, owner := range f.owners {
		if owner == userID {
			out[petID] = struct{}{}
		}
	}
	return out, nil
}

type fakeUsers map[string]bool

func (f fakeUsers) Exists(ctx context.Context, id string) (bool, error) { return f[id], nil }

func newTestService(pets *fakePets) (*Service, *memory.Collection[Appointment]) {
	repo := memory.NewCollection[Appointment]("appointments")
	svc := NewService(repo, pets, fakeUsers{"vet-1": true})
	svc.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestService_Schedule_SetsScheduledStatus(t *testing.T) {
	svc, _ := newTestService(&fakePets{owners: map[string]string{"rex": "u1"}})

	a, err := svc.Schedule(context.Background(), ScheduleInput{PetID: "rex", VeterinarianID: "vet-1", Date: "2024-01-01"})
	if err != nil {
		t.Fatalf("Schedule returned error: %v", err)
	}
	if a.Status != "scheduled" {
		t.Fatalf("expected status scheduled, got %q", a.Status)
	}
	if a.ID == "" || a.CreatedAt.IsZero() {
		t.Fatalf("expected id and createdAt to be set, got %+v", a)
	}
}

func TestService_Schedule_MissingPetIsNotFound(t *testing.T) {
	svc, repo := newTestService(&fakePets{owners: map[string]string{}})

	_, err := svc.Schedule(context.Background(), ScheduleInput{PetID: "ghost", VeterinarianID: "vet-1", Date: "2024-01-01"})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Fatalf("expected message to name the pet id, got %q", err.Error())
	}
	if repo.Len() != 0 {
		t.Fatalf("no appointment should be inserted")
	}
}

func TestService_Schedule_MissingVeterinarianIsNotFound(t *testing.T) {
	svc, repo := newTestService(&fakePets{owners: map[string]string{"rex": "u1"}})

	_, err := svc.Schedule(context.Background(), ScheduleInput{PetID: "rex", VeterinarianID: "nonexistent", Date: "2024-01-01"})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if err.Error() != "veterinarian nonexistent not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if repo.Len() != 0 {
		t.Fatalf("no appointment should be inserted")
	}
}

func TestService_Schedule_FormatBeforeReferences(t *testing.T) {
	// pets lookup roto: si se llegara a consultar, el error no sería InvalidPayload
	svc, _ := newTestService(&fakePets{err: errors.New("pets down")})

	_, err := svc.Schedule(context.Background(), ScheduleInput{PetID: "rex", VeterinarianID: "vet-1", Date: "tomorrow"})
	if !errors.Is(err, apperr.ErrInvalidPayload) {
		t.Fatalf("expected InvalidPayload, got %v", err)
	}

	_, err = svc.Schedule(context.Background(), ScheduleInput{PetID: "rex", Date: "2024-01-01"})
	if !errors.Is(err, apperr.ErrInvalidPayload) {
		t.Fatalf("expected InvalidPayload for missing veterinarianId, got %v", err)
	}
}

func TestService_Schedule_LookupFailureIsInternal(t *testing.T) {
	svc, _ := newTestService(&fakePets{err: errors.New("pets down")})

	_, err := svc.Schedule(context.Background(), ScheduleInput{PetID: "rex", VeterinarianID: "vet-1", Date: "2024-01-01"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := apperr.KindOf(err); ok {
		t.Fatalf("lookup failure must not be reported as a kind, got %v", err)
	}
}

func TestService_ListByUser_FiltersByPetOwner(t *testing.T) {
	pets := &fakePets{owners: map[string]string{"rex": "u1", "tom": "u2"}}
	svc, _ := newTestService(pets)
	ctx := context.Background()

	mine, _ := svc.Schedule(ctx, ScheduleInput{PetID: "rex", VeterinarianID: "vet-1", Date: "2024-01-01"})
	_, _ = svc.Schedule(ctx, ScheduleInput{PetID: "tom", VeterinarianID: "vet-1", Date: "2024-01-02"})

	got, err := svc.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 1 || got[0].ID != mine.ID {
		t.Fatalf("expected only u1's appointment, got %+v", got)
	}

	// el id de la mascota no es un id de usuario
	if _, err := svc.ListByUser(ctx, "rex"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected NotFound when filtering by a pet id, got %v", err)
	}
}

func TestService_ListAndExists(t *testing.T) {
	svc, _ := newTestService(&fakePets{owners: map[string]string{"rex": "u1"}})
	ctx := context.Background()

	if _, err := svc.List(ctx); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected NotFound on empty, got %v", err)
	}

	a, _ := svc.Schedule(ctx, ScheduleInput{PetID: "rex", VeterinarianID: "vet-1", Date: "2024-01-01T10:00:00Z"})

	list, err := svc.List(ctx)
	if err != nil || len(list) != 1 || list[0] != a {
		t.Fatalf("expected [a], got %+v %v", list, err)
	}
	if ok, _ := svc.Exists(ctx, a.ID); !ok {
		t.Fatalf("expected Exists true")
	}
	if ok, _ := svc.Exists(ctx, "missing"); ok {
		t.Fatalf("expected Exists false")
	}
}
