package prescriptions

import "time"

type Prescription struct {
	ID             string
	PetID          string
	VeterinarianID string
	Medication     string
	Dosage         string // texto libre: "2 ml cada 12h"
	CreatedAt      time.Time
}
