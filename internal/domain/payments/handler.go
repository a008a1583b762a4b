package payments

import (
	"net/http"
	"time"

	"pet-care-registry/internal/platform/logger"
	"pet-care-registry/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/payments", createPaymentHandler(svc, log))
	r.Get("/payments", listPaymentsHandler(svc, log))
}

type createPaymentRequest struct {
	UserID        string   `json:"userId"`
	AppointmentID string   `json:"appointmentId"`
	Amount        *float64 `json:"amount"`
}

type paymentResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	AppointmentID string    `json:"appointmentId"`
	Amount        float64   `json:"amount"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// createPaymentHandler godoc
// @Summary Registrar pago
// @Description Crea un pago en estado "pending" para un turno existente.
// @Tags payments
// @Accept json
// @Produce json
// @Param payload body createPaymentRequest true "Pago"
// @Success 201 {object} paymentResponse
// @Failure 400 {object} respond.ErrorBody "campo faltante o monto inválido"
// @Failure 404 {object} respond.ErrorBody "user / appointment not found"
// @Router /payments [post]
func createPaymentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPaymentRequest
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, log, err)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			UserID:        req.UserID,
			AppointmentID: req.AppointmentID,
			Amount:        req.Amount,
		})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		log.Info("payment created", map[string]any{
			"payment_id":     p.ID,
			"appointment_id": p.AppointmentID,
		})
		respond.JSON(w, http.StatusCreated, toPaymentResponse(p))
	}
}

// listPaymentsHandler godoc
// @Summary Listar pagos
// @Tags payments
// @Produce json
// @Success 200 {array} paymentResponse
// @Failure 404 {object} respond.ErrorBody "no payments found"
// @Router /payments [get]
func listPaymentsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		out := make([]paymentResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPaymentResponse(p))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func toPaymentResponse(p Payment) paymentResponse {
	return paymentResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		AppointmentID: p.AppointmentID,
		Amount:        p.Amount,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
	}
}
