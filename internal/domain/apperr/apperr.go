package apperr

import (
	"errors"
	"fmt"
)

// Kind clasifica los errores esperados de las operaciones.
type Kind int

const (
	KindInvalidPayload Kind = iota + 1
	KindNotFound
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindInvalidPayload:
		return "invalid_payload"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Error es el resultado de error uniforme: un kind + un motivo legible.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return e.Kind.String()
	}
	return e.Reason
}

// Is compara por kind, así errors.Is(err, ErrNotFound) funciona con cualquier motivo.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels para errors.Is.
var (
	ErrInvalidPayload = &Error{Kind: KindInvalidPayload}
	ErrNotFound       = &Error{Kind: KindNotFound}
	// ErrUnauthorized está reservado; ninguna operación lo produce todavía.
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
)

func InvalidPayload(format string, args ...any) error {
	return &Error{Kind: KindInvalidPayload, Reason: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Reason: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) error {
	return &Error{Kind: KindUnauthorized, Reason: fmt.Sprintf(format, args...)}
}

// KindOf devuelve el kind de err si es (o envuelve) un *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
