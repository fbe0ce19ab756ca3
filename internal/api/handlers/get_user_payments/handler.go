package get_user_payments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/payments"
)

const (
	msgInvalidUserID = "некорректный идентификатор пользователя"
	msgAccessDenied  = "доступ к чужим платежам запрещен"
	msgUnauthorized  = "требуется аутентификация"
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

// Handle GET /api/v1/users/{userId}/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil || userID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	requester := bookings.Requester{
		UserID:  requesterID,
		IsAdmin: middleware.IsAdminFromContext(r.Context()),
	}

	list, err := h.service.GetUserPayments(r.Context(), userID, requester)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrAccessDenied):
			h.logger.Warn("GET /users/{id}/payments - Access denied: user_id=%d, requester_id=%d", userID, requesterID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /users/{id}/payments - Failed to get payments: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
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
