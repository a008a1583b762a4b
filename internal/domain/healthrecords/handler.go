package healthrecords

import (
	"net/http"
	"time"

	"pet-care-registry/internal/platform/logger"
	"pet-care-registry/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/health-records", createHealthRecordHandler(svc, log))
	r.Get("/health-records", listHealthRecordsHandler(svc, log))
	r.Get("/users/{userID}/health-records", listUserHealthRecordsHandler(svc, log))
}

type createHealthRecordRequest struct {
	PetID          string `json:"petId"`
	VeterinarianID string `json:"veterinarianId"`
	Record         string `json:"record"`
}

type healthRecordResponse struct {
	ID             string    `json:"id"`
	PetID          string    `json:"petId"`
	VeterinarianID string    `json:"veterinarianId"`
	Record         string    `json:"record"`
	CreatedAt      time.Time `json:"createdAt"`
}

// createHealthRecordHandler godoc
// @Summary Agregar registro de salud
// @Tags health-records
// @Accept json
// @Produce json
// @Param payload body createHealthRecordRequest true "Registro clínico"
// @Success 201 {object} healthRecordResponse
// @Failure 400 {object} respond.ErrorBody "campo faltante"
// @Failure 404 {object} respond.ErrorBody "pet / veterinarian not found"
// @Router /health-records [post]
func createHealthRecordHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createHealthRecordRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, log, err)
			return
		}

		h, err := svc.Create(r.Context(), CreateInput{
			PetID:          req.PetID,
			VeterinarianID: req.VeterinarianID,
			Record:         req.Record,
		})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		log.Info("health record added", map[string]any{"health_record_id": h.ID, "pet_id": h.PetID})
		respond.JSON(w, http.StatusCreated, toHealthRecordResponse(h))
	}
}

// listHealthRecordsHandler godoc
// @Summary Listar registros de salud
// @Tags health-records
// @Produce json
// @Success 200 {array} healthRecordResponse
// @Failure 404 {object} respond.ErrorBody "no health records found"
// @Router /health-records [get]
func listHealthRecordsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toHealthRecordResponses(items))
	}
}

// listUserHealthRecordsHandler godoc
// @Summary Listar registros de salud de un usuario
// @Description Registros de las mascotas cuyo dueño es userID.
// @Tags health-records
// @Produce json
// @Param userID path string true "ID del dueño"
// @Success 200 {array} healthRecordResponse
// @Failure 404 {object} respond.ErrorBody "no health records found for user"
// @Router /users/{userID}/health-records [get]
func listUserHealthRecordsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByUser(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toHealthRecordResponses(items))
	}
}

func toHealthRecordResponse(h HealthRecord) healthRecordResponse {
	return healthRecordResponse{
		ID:             h.ID,
		PetID:          h.PetID,
		VeterinarianID: h.VeterinarianID,
		Record:         h.Record,
		CreatedAt:      h.CreatedAt,
	}
}

func toHealthRecordResponses(items []HealthRecord) []healthRecordResponse {
	out := make([]healthRecordResponse, 0, len(items))
	for _, h := range items {
		out = append(out, toHealthRecordResponse(h))
	}
	return out
}
