package appointments

import "time"

// Status se fija en la creación y ninguna operación lo transiciona.
// @Enum scheduled
type Status string

const (
	StatusScheduled Status = "scheduled"
)

type Appointment struct {
	ID             string
	PetID          string
	VeterinarianID string
	// Date tal como llegó (YYYY-MM-DD o RFC3339), ya validada.
	Date      string
	Status    Status
	CreatedAt time.Time
}
