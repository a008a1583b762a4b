package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-care-registry/internal/adapters/storage/memory"
	"pet-care-registry/internal/domain/apperr"
)

type fakeUsers map[string]bool

func (f fakeUsers) Exists(ctx context.Context, id string) (bool, error) { return f[id], nil }

func TestService_Send(t *testing.T) {
	repo := memory.NewCollection[Notification]("notifications")
	svc := NewService(repo, fakeUsers{"u1": true})
	now := time.Date(2024, 5, 5, 5, 5, 5, 0, time.FixedZone("ART", -3*3600))
	svc.now = func() time.Time { return now }
	svc.newID = func() string { return "n-1" }

	n, err := svc.Send(context.Background(), SendInput{UserID: "u1", Message: "Appointment tomorrow"})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	want := Notification{ID: "n-1", UserID: "u1", Message: "Appointment tomorrow", CreatedAt: now.UTC()}
	if n != want {
		t.Fatalf("expected %+v, got %+v", want, n)
	}
	if n.CreatedAt.Location() != time.UTC {
		t.Fatalf("createdAt must be UTC")
	}
}

func TestService_Send_Rejects(t *testing.T) {
	repo := memory.NewCollection[Notification]("notifications")
	svc := NewService(repo, fakeUsers{"u1": true})
	ctx := context.Background()

	if _, err := svc.Send(ctx, SendInput{UserID: "u1"}); !errors.Is(err, apperr.ErrInvalidPayload) {
		t.Fatalf("expected InvalidPayload, got %v", err)
	}
	if _, err := svc.Send(ctx, SendInput{UserID: "u2", Message: "hi"}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if _, err := svc.List(ctx); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected NotFound on empty list, got %v", err)
	}
	if repo.Len() != 0 {
		t.Fatalf("nothing should be stored")
	}
}

func TestService_Send_StoresMessageAsSent(t *testing.T) {
	repo := memory.NewCollection[Notification]("notifications")
	svc := NewService(repo, fakeUsers{"u1": true})
	ctx := context.Background()

	n, err := svc.Send(ctx, SendInput{UserID: "u1", Message: " Rex is due for a vaccine "})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	list, err := svc.List(ctx)
	if err != nil || len(list) != 1 || list[0] != n || n.Message != " Rex is due for a vaccine " {
		t.Fatalf("expected message stored verbatim, got %+v %v", list, err)
	}
}
