package adoptions

import "time"

// @Enum pending
type Status string

const (
	StatusPending Status = "pending"
)

// PetAdoption es una solicitud de adopción. No modifica al dueño de la mascota.
type PetAdoption struct {
	ID        string
	PetID     string
	AdopterID string
	Status    Status
	CreatedAt time.Time
}
