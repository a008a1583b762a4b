package pets

import "time"

// Pet representa el perfil básico de una mascota registrada.
// OwnerID no se valida contra users al crear.
type Pet struct {
	ID      string
	OwnerID string

	Name    string
	Species string
	Breed   string
	Age     int

	CreatedAt time.Time
}
