package payments

import (
	"context"
	"errors"
	"testing"

	"pet-care-registry/internal/adapters/storage/memory"
	"pet-care-registry/internal/domain/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	ids map[string]bool
	err error
}

func (f fakeDirectory) Exists(ctx context.Context, id string) (bool, error) {
	return f.ids[id], f.err
}

func amount(v float64) *float64 { return &v }

func newTestService() (*Service, *memory.Collection[Payment]) {
	repo := memory.NewCollection[Payment]("payments")
	svc := NewService(repo,
		fakeDirectory{ids: map[string]bool{"u1": true}},
		fakeDirectory{ids: map[string]bool{"a1": true}},
	)
	return svc, repo
}

func TestService_Create(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateInput{UserID: "u1", AppointmentID: "a1", Amount: amount(49.9)})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, p.Status)
	assert.Equal(t, 49.9, p.Amount)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Payment{p}, list)
}

func TestService_Create_Rejects(t *testing.T) {
	cases := []struct {
		name string
		in   CreateInput
		want error
		msg  string
	}{
		{"missing amount", CreateInput{UserID: "u1", AppointmentID: "a1"}, apperr.ErrInvalidPayload, "amount is required"},
		{"zero amount", CreateInput{UserID: "u1", AppointmentID: "a1", Amount: amount(0)}, apperr.ErrInvalidPayload, "amount must be greater than zero"},
		{"negative amount", CreateInput{UserID: "u1", AppointmentID: "a1", Amount: amount(-5)}, apperr.ErrInvalidPayload, "amount must be greater than zero"},
		{"missing appointment", CreateInput{UserID: "u1", Amount: amount(1)}, apperr.ErrInvalidPayload, "appointmentId is required"},
		{"unknown user", CreateInput{UserID: "u9", AppointmentID: "a1", Amount: amount(1)}, apperr.ErrNotFound, "user u9 not found"},
		{"unknown appointment", CreateInput{UserID: "u1", AppointmentID: "a9", Amount: amount(1)}, apperr.ErrNotFound, "appointment a9 not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newTestService()
			_, err := svc.Create(context.Background(), tc.in)
			require.ErrorIs(t, err, tc.want)
			assert.EqualError(t, err, tc.msg)
			assert.Zero(t, repo.Len())
		})
	}
}

func TestService_Create_LookupFailure(t *testing.T) {
	boom := errors.New("db down")
	repo := memory.NewCollection[Payment]("payments")
	svc := NewService(repo, fakeDirectory{err: boom}, fakeDirectory{})

	_, err := svc.Create(context.Background(), CreateInput{UserID: "u1", AppointmentID: "a1", Amount: amount(1)})
	require.ErrorIs(t, err, boom)
	_, hasKind := apperr.KindOf(err)
	assert.False(t, hasKind)
}

func TestService_List_Empty(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
