package payments

import "time"

// @Enum pending
type Status string

const (
	StatusPending Status = "pending"
)

type Payment struct {
	ID            string
	UserID        string
	AppointmentID string
	Amount        float64
	Status        Status
	CreatedAt     time.Time
}
