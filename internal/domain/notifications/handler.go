package notifications

import (
	"net/http"
	"time"

	"pet-care-registry/internal/platform/logger"
	"pet-care-registry/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/notifications", sendNotificationHandler(svc, log))
	r.Get("/notifications", listNotificationsHandler(svc, log))
}

type sendNotificationRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

type notificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// sendNotificationHandler godoc
// @Summary Enviar notificación
// @Tags notifications
// @Accept json
// @Produce json
// @Param payload body sendNotificationRequest true "Notificación"
// @Success 201 {object} notificationResponse
// @Failure 400 {object} respond.ErrorBody "campo faltante"
// @Failure 404 {object} respond.ErrorBody "user not found"
// @Router /notifications [post]
func sendNotificationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sendNotificationRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, log, err)
			return
		}

		n, err := svc.Send(r.Context(), SendInput{UserID: req.UserID, Message: req.Message})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		log.Info("notification sent", map[string]any{"notification_id": n.ID, "user_id": n.UserID})
		respond.JSON(w, http.StatusCreated, toNotificationResponse(n))
	}
}

// listNotificationsHandler godoc
// @Summary Listar notificaciones
// @Tags notifications
// @Produce json
// @Success 200 {array} notificationResponse
// @Failure 404 {object} respond.ErrorBody "no notifications found"
// @Router /notifications [get]
func listNotificationsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		out := make([]notificationResponse, 0, len(items))
		for _, n := range items {
			out = append(out, toNotificationResponse(n))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func toNotificationResponse(n Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}
}
