package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	confirmPayment "github.com/m04kA/SMC-HotelBookingService/internal/usecase/confirm_payment"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgPaymentNotFound       = "платеж не найден"
	msgBookingNotFound       = "бронирование платежа не найдено"
	msgAccessDenied          = "доступ к чужому платежу запрещен"
	msgAlreadyConfirmed      = "платеж уже завершен"
	msgPartialReconciliation = "подтверждение оплаты завершилось частично, обратитесь в поддержку"
	msgUnauthorized          = "требуется аутентификация"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// ConfirmPaymentRequest HTTP request model
type ConfirmPaymentRequest struct {
	PaymentID int64 `json:"paymentId"`
}

// ConfirmPaymentResponse HTTP response model
type ConfirmPaymentResponse struct {
	PaymentID     int64  `json:"paymentId"`
	BookingID     int64  `json:"bookingId"`
	PaymentStatus string `json:"paymentStatus"`
	BookingStatus string `json:"bookingStatus"`
}

// Handle POST /api/v1/payments/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req ConfirmPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{
		PaymentID: req.PaymentID,
		UserID:    userID,
		IsAdmin:   middleware.IsAdminFromContext(r.Context()),
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrPaymentNotFound):
			h.logger.Warn("POST /payments/confirm - Payment not found: payment_id=%d", req.PaymentID)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		case errors.Is(err, confirmPayment.ErrBookingNotFound):
			h.logger.Warn("POST /payments/confirm - Booking not found: payment_id=%d", req.PaymentID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, confirmPayment.ErrAccessDenied):
			h.logger.Warn("POST /payments/confirm - Access denied: payment_id=%d, user_id=%d", req.PaymentID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, confirmPayment.ErrAlreadyConfirmed):
			h.logger.Warn("POST /payments/confirm - Already confirmed: payment_id=%d", req.PaymentID)
			handlers.RespondConflict(w, msgAlreadyConfirmed)

		case errors.Is(err, confirmPayment.ErrPartialReconciliation):
			h.logger.Error("POST /payments/confirm - Partial reconciliation: payment_id=%d, error=%v",
				req.PaymentID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPartialReconciliation)

		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/confirm - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /payments/confirm - Failed to confirm payment: payment_id=%d, error=%v",
				req.PaymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/confirm - Payment confirmed: payment_id=%d, booking_id=%d",
		result.PaymentID, result.BookingID)
	handlers.RespondJSON(w, http.StatusOK, ConfirmPaymentResponse{
		PaymentID:     result.PaymentID,
		BookingID:     result.BookingID,
		PaymentStatus: result.PaymentStatus,
		BookingStatus: result.BookingStatus,
	})
}
