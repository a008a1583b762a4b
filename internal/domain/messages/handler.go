package messages

import (
	"net/http"
	"time"

	"pet-care-registry/internal/platform/logger"
	"pet-care-registry/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/messages", sendMessageHandler(svc, log))
	r.Get("/messages", listMessagesHandler(svc, log))
}

type sendMessageRequest struct {
	SenderID    string `json:"senderId"`
	RecipientID string `json:"recipientId"`
	Content     string `json:"content"`
}

type messageResponse struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	RecipientID string    `json:"recipientId"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
}

// sendMessageHandler godoc
// @Summary Enviar mensaje
// @Description Emisor y destinatario deben ser usuarios existentes.
// @Tags messages
// @Accept json
// @Produce json
// @Param payload body sendMessageRequest true "Mensaje"
// @Success 201 {object} messageResponse
// @Failure 400 {object} respond.ErrorBody "campo faltante"
// @Failure 404 {object} respond.ErrorBody "sender / recipient not found"
// @Router /messages [post]
func sendMessageHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sendMessageRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, log, err)
			return
		}

		m, err := svc.Send(r.Context(), SendInput{
			SenderID:    req.SenderID,
			RecipientID: req.RecipientID,
			Content:     req.Content,
		})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		log.Info("message sent", map[string]any{"message_id": m.ID})
		respond.JSON(w, http.StatusCreated, toMessageResponse(m))
	}
}

// listMessagesHandler godoc
// @Summary Listar mensajes
// @Tags messages
// @Produce json
// @Success 200 {array} messageResponse
// @Failure 404 {object} respond.ErrorBody "no messages found"
// @Router /messages [get]
func listMessagesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		out := make([]messageResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMessageResponse(m))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func toMessageResponse(m Message) messageResponse {
	return messageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Content:     m.Content,
		CreatedAt:   m.CreatedAt,
	}
}
