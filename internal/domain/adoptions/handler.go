package adoptions

import (
	"net/http"
	"time"

	"pet-care-registry/internal/platform/logger"
	"pet-care-registry/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/adoptions", requestAdoptionHandler(svc, log))
	r.Get("/adoptions", listAdoptionsHandler(svc, log))
}

type requestAdoptionRequest struct {
	PetID     string `json:"petId"`
	AdopterID string `json:"adopterId"`
}

type adoptionResponse struct {
	ID        string    `json:"id"`
	PetID     string    `json:"petId"`
	AdopterID string    `json:"adopterId"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// requestAdoptionHandler godoc
// @Summary Solicitar adopción
// @Description Registra una solicitud en estado "pending". No cambia el dueño de la mascota.
// @Tags adoptions
// @Accept json
// @Produce json
// @Param payload body requestAdoptionRequest true "Solicitud"
// @Success 201 {object} adoptionResponse
// @Failure 400 {object} respond.ErrorBody "campo faltante"
// @Failure 404 {object} respond.ErrorBody "pet / adopter not found"
// @Router /adoptions [post]
func requestAdoptionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requestAdoptionRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, log, err)
			return
		}

		a, err := svc.Request(r.Context(), RequestInput{PetID: req.PetID, AdopterID: req.AdopterID})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		log.Info("adoption requested", map[string]any{"adoption_id": a.ID, "pet_id": a.PetID})
		respond.JSON(w, http.StatusCreated, toAdoptionResponse(a))
	}
}

// listAdoptionsHandler godoc
// @Summary Listar solicitudes de adopción
// @Tags adoptions
// @Produce json
// @Success 200 {array} adoptionResponse
// @Failure 404 {object} respond.ErrorBody "no pet adoptions found"
// @Router /adoptions [get]
func listAdoptionsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		out := make([]adoptionResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAdoptionResponse(a))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func toAdoptionResponse(a PetAdoption) adoptionResponse {
	return adoptionResponse{
		ID:        a.ID,
		PetID:     a.PetID,
		AdopterID: a.AdopterID,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
	}
}
