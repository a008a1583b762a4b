package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate record key")
)

// Collection es el contrato mínimo de una colección keyed.
// Insert es atómico por key: con dos inserts de la misma key en paralelo, exactamente uno gana.
type Collection[T any] interface {
	Insert(ctx context.Context, id string, rec T) error
	Get(ctx context.Context, id string) (T, error)
	// List devuelve los valores en orden de inserción.
	List(ctx context.Context) ([]T, error)
	// Delete es idempotente. Las entidades nunca se borran; solo lo usan los índices de unicidad.
	Delete(ctx context.Context, id string) error
}

// Nombres de colección compartidos por los adapters durables.
const (
	CollectionUsers         = "users"
	CollectionPets          = "pets"
	CollectionAppointments  = "appointments"
	CollectionHealthRecords = "health_records"
	CollectionPrescriptions = "prescriptions"
	CollectionMessages      = "messages"
	CollectionNotifications = "notifications"
	CollectionPayments      = "payments"
	CollectionPetAdoptions  = "pet_adoptions"

	// Índices de unicidad de users: key = valor, payload = user id.
	CollectionUserEmails    = "user_emails"
	CollectionUserUsernames = "user_usernames"
)
