package healthrecords

import "time"

type HealthRecord struct {
	ID             string
	PetID          string
	VeterinarianID string
	Record         string
	CreatedAt      time.Time
}
