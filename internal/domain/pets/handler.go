package pets

import (
	"net/http"
	"time"

	"pet-care-registry/internal/platform/logger"
	"pet-care-registry/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/pets", createPetHandler(svc, log))
	r.Get("/pets", listPetsHandler(svc, log))
	r.Get("/pets/{petID}", getPetHandler(svc, log))

	// Mascotas de un usuario (getUserPets)
	r.Get("/users/{userID}/pets", listUserPetsHandler(svc, log))
}

type createPetRequest struct {
	OwnerID string `json:"ownerId"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed"`
	Age     *int   `json:"age"`
}

type petResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     string    `json:"breed"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"createdAt"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea una mascota. ownerId se guarda tal cual, no se verifica contra usuarios.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} respond.ErrorBody "campo faltante o edad negativa"
// @Router /pets [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, log, err)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			OwnerID: req.OwnerID,
			Name:    req.Name,
			Species: req.Species,
			Breed:   req.Breed,
			Age:     req.Age,
		})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		log.Info("pet added", map[string]any{"pet_id": p.ID, "owner_id": p.OwnerID})
		respond.JSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 404 {object} respond.ErrorBody "no pets found"
// @Router /pets [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPetResponses(items))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} respond.ErrorBody "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPetResponse(p))
	}
}

// listUserPetsHandler godoc
// @Summary Listar mascotas de un usuario
// @Tags pets
// @Produce json
// @Param userID path string true "ID del dueño"
// @Success 200 {array} petResponse
// @Failure 404 {object} respond.ErrorBody "no pets found for user"
// @Router /users/{userID}/pets [get]
func listUserPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByOwner(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPetResponses(items))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		Age:       p.Age,
		CreatedAt: p.CreatedAt,
	}
}

func toPetResponses(items []Pet) []petResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return out
}
