// Package validation agrupa los chequeos de formato que corren antes de cualquier escritura.
// Todos devuelven apperr.InvalidPayload con un motivo legible.
package validation

import (
	"regexp"
	"strings"
	"time"

	"pet-care-registry/internal/domain/apperr"
)

var (
	// local-part@domain.tld: al menos un "@", un "." después y sin espacios.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// "+" opcional y entre 10 y 14 dígitos.
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,14}$`)
)

// Field es un par nombre/valor para Required.
type Field struct {
	Name  string
	Value string
}

// Required falla con el primer campo vacío (o solo espacios), en el orden recibido.
func Required(fields ...Field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return apperr.InvalidPayload("%s is required", f.Name)
		}
	}
	return nil
}

func Email(email string) error {
	if !emailPattern.MatchString(email) {
		return apperr.InvalidPayload("invalid email format: %q", email)
	}
	return nil
}

func Phone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return apperr.InvalidPayload("invalid phone number format: %q", phone)
	}
	return nil
}

func NonNegative(name string, v int) error {
	if v < 0 {
		return apperr.InvalidPayload("%s must be zero or greater", name)
	}
	return nil
}

func Positive(name string, v float64) error {
	if v <= 0 {
		return apperr.InvalidPayload("%s must be greater than zero", name)
	}
	return nil
}

// Date acepta YYYY-MM-DD o RFC3339.
func Date(name, v string) error {
	v = strings.TrimSpace(v)
	if _, err := time.Parse("2006-01-02", v); err == nil {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, v); err == nil {
		return nil
	}
	return apperr.InvalidPayload("%s must be YYYY-MM-DD or RFC3339", name)
}
