package appointments

import (
	"net/http"
	"time"

	"pet-care-registry/internal/platform/logger"
	"pet-care-registry/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/appointments", scheduleAppointmentHandler(svc, log))
	r.Get("/appointments", listAppointmentsHandler(svc, log))
	r.Get("/users/{userID}/appointments", listUserAppointmentsHandler(svc, log))
}

type scheduleAppointmentRequest struct {
	PetID          string `json:"petId"`
	VeterinarianID string `json:"veterinarianId"`
	Date           string `json:"date"` // YYYY-MM-DD o RFC3339
}

type appointmentResponse struct {
	ID             string    `json:"id"`
	PetID          string    `json:"petId"`
	VeterinarianID string    `json:"veterinarianId"`
	Date           string    `json:"date"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// scheduleAppointmentHandler godoc
// @Summary Agendar turno
// @Description Agenda un turno con status "scheduled". La mascota y el veterinario deben existir.
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body scheduleAppointmentRequest true "Datos del turno"
// @Success 201 {object} appointmentResponse
// @Failure 400 {object} respond.ErrorBody "campo faltante o fecha inválida"
// @Failure 404 {object} respond.ErrorBody "pet / veterinarian not found"
// @Router /appointments [post]
func scheduleAppointmentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scheduleAppointmentRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, log, err)
			return
		}

		a, err := svc.Schedule(r.Context(), ScheduleInput{
			PetID:          req.PetID,
			VeterinarianID: req.VeterinarianID,
			Date:           req.Date,
		})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		log.Info("appointment scheduled", map[string]any{"appointment_id": a.ID, "pet_id": a.PetID})
		respond.JSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

// listAppointmentsHandler godoc
// @Summary Listar turnos
// @Tags appointments
// @Produce json
// @Success 200 {array} appointmentResponse
// @Failure 404 {object} respond.ErrorBody "no appointments found"
// @Router /appointments [get]
func listAppointmentsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toAppointmentResponses(items))
	}
}

// listUserAppointmentsHandler godoc
// @Summary Listar turnos de un usuario
// @Description Turnos de las mascotas cuyo dueño es userID.
// @Tags appointments
// @Produce json
// @Param userID path string true "ID del dueño"
// @Success 200 {array} appointmentResponse
// @Failure 404 {object} respond.ErrorBody "no appointments found for user"
// @Router /users/{userID}/appointments [get]
func listUserAppointmentsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByUser(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toAppointmentResponses(items))
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:             a.ID,
		PetID:          a.PetID,
		VeterinarianID: a.VeterinarianID,
		Date:           a.Date,
		Status:         a.Status,
		CreatedAt:      a.CreatedAt,
	}
}

func toAppointmentResponses(items []Appointment) []appointmentResponse {
	out := make([]appointmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAppointmentResponse(a))
	}
	return out
}
