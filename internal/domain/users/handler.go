package users

import (
	"net/http"
	"strings"
	"time"

	"pet-care-registry/internal/platform/logger"
	"pet-care-registry/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	// Rutas planas: pets, appointments y healthrecords cuelgan sus propias /users/{userID}/...
	r.Post("/users", createUserHandler(svc, log))
	r.Get("/users", listUsersHandler(svc, log))
	r.Get("/users/{userID}", getUserHandler(svc, log))
}

// createUserRequest es el cuerpo para registrar un usuario.
type createUserRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role" enums:"PetOwner,Veterinarian,Admin"`
}

// userResponse representa un usuario devuelto por la API.
type userResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

// createUserHandler godoc
// @Summary Crear usuario
// @Description Registra un usuario. Email y username deben ser únicos; email y teléfono se validan por formato.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body createUserRequest true "Datos del usuario"
// @Success 201 {object} userResponse
// @Failure 400 {object} respond.ErrorBody "campo faltante, formato inválido o email/username duplicado"
// @Router /users [post]
func createUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, log, err)
			return
		}

		u, err := svc.Create(r.Context(), CreateInput{
			Username:    req.Username,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Role:        req.Role,
		})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		log.Info("user created", map[string]any{"user_id": u.ID, "role": string(u.Role)})
		respond.JSON(w, http.StatusCreated, toUserResponse(u))
	}
}

// listUsersHandler godoc
// @Summary Listar usuarios
// @Description Lista todos los usuarios, o solo los de un rol si viene el query param role. Sin resultados devuelve 404.
// @Tags users
// @Produce json
// @Param role query string false "PetOwner, Veterinarian o Admin"
// @Success 200 {array} userResponse
// @Failure 400 {object} respond.ErrorBody "rol inválido"
// @Failure 404 {object} respond.ErrorBody "no users found"
// @Router /users [get]
func listUsersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []User
			err   error
		)
		if role := strings.TrimSpace(r.URL.Query().Get("role")); role != "" {
			items, err = svc.ListByRole(r.Context(), role)
		} else {
			items, err = svc.List(r.Context())
		}
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getUserHandler godoc
// @Summary Obtener usuario
// @Tags users
// @Produce json
// @Param userID path string true "ID del usuario"
// @Success 200 {object} userResponse
// @Failure 404 {object} respond.ErrorBody "user not found"
// @Router /users/{userID} [get]
func getUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByID(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}
