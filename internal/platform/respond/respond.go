// Package respond centraliza la salida HTTP de los handlers.
package respond

import (
	"encoding/json"
	"net/http"

	"pet-care-registry/internal/domain/apperr"
	"pet-care-registry/internal/platform/logger"
)

// ErrorBody es el cuerpo de toda respuesta de error.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error mapea el kind a status. Cualquier error sin kind es un 500 y se loguea.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	kind, ok := apperr.KindOf(err)
	if !ok {
		log.Error("operation failed", map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
			"err":    err.Error(),
		})
		JSON(w, http.StatusInternalServerError, ErrorBody{Error: "internal", Message: "internal error"})
		return
	}

	status := http.StatusInternalServerError
	switch kind {
	case apperr.KindInvalidPayload:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindUnauthorized:
		status = http.StatusUnauthorized
	}

	log.Debug("operation rejected", map[string]any{
		"method": r.Method,
		"path":   r.URL.Path,
		"kind":   kind.String(),
		"reason": err.Error(),
	})
	JSON(w, status, ErrorBody{Error: kind.String(), Message: err.Error()})
}

// Decode lee el body JSON; un body inválido es InvalidPayload.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperr.InvalidPayload("invalid json: %v", err)
	}
	return nil
}
