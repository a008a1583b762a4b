package prescriptions

import (
	"net/http"
	"time"

	"pet-care-registry/internal/platform/logger"
	"pet-care-registry/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/prescriptions", createPrescriptionHandler(svc, log))
	r.Get("/prescriptions", listPrescriptionsHandler(svc, log))
	r.Get("/pets/{petID}/prescriptions", listPetPrescriptionsHandler(svc, log))
}

type createPrescriptionRequest struct {
	PetID          string `json:"petId"`
	VeterinarianID string `json:"veterinarianId"`
	Medication     string `json:"medication"`
	Dosage         string `json:"dosage"`
}

type prescriptionResponse struct {
	ID             string    `json:"id"`
	PetID          string    `json:"petId"`
	VeterinarianID string    `json:"veterinarianId"`
	Medication     string    `json:"medication"`
	Dosage         string    `json:"dosage"`
	CreatedAt      time.Time `json:"createdAt"`
}

// createPrescriptionHandler godoc
// @Summary Agregar receta
// @Tags prescriptions
// @Accept json
// @Produce json
// @Param payload body createPrescriptionRequest true "Receta"
// @Success 201 {object} prescriptionResponse
// @Failure 400 {object} respond.ErrorBody "campo faltante"
// @Failure 404 {object} respond.ErrorBody "pet / veterinarian not found"
// @Router /prescriptions [post]
func createPrescriptionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPrescriptionRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, log, err)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			PetID:          req.PetID,
			VeterinarianID: req.VeterinarianID,
			Medication:     req.Medication,
			Dosage:         req.Dosage,
		})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		log.Info("prescription added", map[string]any{"prescription_id": p.ID, "pet_id": p.PetID})
		respond.JSON(w, http.StatusCreated, toPrescriptionResponse(p))
	}
}

// listPrescriptionsHandler godoc
// @Summary Listar recetas
// @Tags prescriptions
// @Produce json
// @Success 200 {array} prescriptionResponse
// @Failure 404 {object} respond.ErrorBody "no prescriptions found"
// @Router /prescriptions [get]
func listPrescriptionsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPrescriptionResponses(items))
	}
}

// listPetPrescriptionsHandler godoc
// @Summary Listar recetas de una mascota
// @Tags prescriptions
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} prescriptionResponse
// @Failure 404 {object} respond.ErrorBody "no prescriptions found for pet"
// @Router /pets/{petID}/prescriptions [get]
func listPetPrescriptionsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByPet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPrescriptionResponses(items))
	}
}

func toPrescriptionResponse(p Prescription) prescriptionResponse {
	return prescriptionResponse{
		ID:             p.ID,
		PetID:          p.PetID,
		VeterinarianID: p.VeterinarianID,
		Medication:     p.Medication,
		Dosage:         p.Dosage,
		CreatedAt:      p.CreatedAt,
	}
}

func toPrescriptionResponses(items []Prescription) []prescriptionResponse {
	out := make([]prescriptionResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPrescriptionResponse(p))
	}
	return out
}
