package prescriptions

import (
	"context"
	"errors"
	"testing"

	"pet-care-registry/internal/adapters/storage/memory"
	"pet-care-registry/internal/domain/apperr"
)

type known map[string]bool

func (k known) Exists(ctx context.Context, id string) (bool, error) { return k[id], nil }

func TestService_CreateAndListByPet(t *testing.T) {
	repo := memory.NewCollection[Prescription]("prescriptions")
	svc := NewService(repo, known{"rex": true, "tom": true}, known{"vet-1": true})
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateInput{PetID: "rex", VeterinarianID: "vet-1", Medication: "amoxicillin ", Dosage: " 250mg/12h"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.ID == "" || p.Medication != "amoxicillin " || p.Dosage != " 250mg/12h" {
		t.Fatalf("unexpected prescription %+v", p)
	}

	got, err := svc.ListByPet(ctx, "rex")
	if err != nil || len(got) != 1 || got[0] != p {
		t.Fatalf("expected [p], got %+v %v", got, err)
	}
	if _, err := svc.ListByPet(ctx, "tom"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected NotFound for pet without prescriptions, got %v", err)
	}
}

func TestService_Create_Rejects(t *testing.T) {
	cases := []struct {
		name string
		in   CreateInput
		want error
	}{
		{"missing dosage", CreateInput{PetID: "rex", VeterinarianID: "vet-1", Medication: "x"}, apperr.ErrInvalidPayload},
		{"missing medication", CreateInput{PetID: "rex", VeterinarianID: "vet-1", Dosage: "1"}, apperr.ErrInvalidPayload},
		{"unknown pet", CreateInput{PetID: "ghost", VeterinarianID: "vet-1", Medication: "x", Dosage: "1"}, apperr.ErrNotFound},
		{"unknown vet", CreateInput{PetID: "rex", VeterinarianID: "ghost", Medication: "x", Dosage: "1"}, apperr.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := memory.NewCollection[Prescription]("prescriptions")
			svc := NewService(repo, known{"rex": true}, known{"vet-1": true})

			if _, err := svc.Create(context.Background(), tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if repo.Len() != 0 {
				t.Fatalf("nothing should be stored")
			}
		})
	}
}

func TestService_List_EmptyIsNotFound(t *testing.T) {
	svc := NewService(memory.NewCollection[Prescription]("prescriptions"), known{}, known{})
	if _, err := svc.List(context.Background()); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
