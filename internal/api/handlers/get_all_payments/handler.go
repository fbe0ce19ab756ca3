package get_all_payments

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// PaymentResponse HTTP response model
type PaymentResponse struct {
	ID            int64  `json:"id"`
	BookingID     int64  `json:"bookingId"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// PaymentsListResponse HTTP response model со списком платежей
type PaymentsListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// Handle GET /api/v1/payments (только для администраторов)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /payments - Failed to get payments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := PaymentsListResponse{Payments: make([]PaymentResponse, 0, len(list))}
	for _, p := range list {
		response.Payments = append(response.Payments, PaymentResponse{
			ID:            p.ID,
			BookingID:     p.BookingID,
			Amount:        p.Amount,
			PaymentMethod: p.PaymentMethod,
			TransactionID: p.TransactionID,
			Status:        string(p.Status),
			CreatedAt:     p.CreatedAt.Format(time.RFC3339),
			UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
