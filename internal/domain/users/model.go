package users

import (
	"time"

	"pet-care-registry/internal/domain/apperr"
)

// Role es un conjunto cerrado. Se guarda pero ninguna operación lo chequea todavía.
// @Enum PetOwner, Veterinarian, Admin
type Role string

const (
	RolePetOwner     Role = "PetOwner"
	RoleVeterinarian Role = "Veterinarian"
	RoleAdmin        Role = "Admin"
)

func (r Role) Valid() bool {
	switch r {
	case RolePetOwner, RoleVeterinarian, RoleAdmin:
		return true
	default:
		return false
	}
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", apperr.InvalidPayload("invalid role %q: must be PetOwner, Veterinarian or Admin", s)
	}
	return r, nil
}

// User es inmutable después de creado.
type User struct {
	ID          string
	Username    string
	Email       string
	PhoneNumber string
	Role        Role
	CreatedAt   time.Time
}
