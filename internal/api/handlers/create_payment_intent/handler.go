package create_payment_intent

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	createPaymentIntent "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_payment_intent"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "доступ к чужому бронированию запрещен"
	msgBookingCancelled   = "отмененное бронирование оплатить нельзя"
	msgAlreadyPaid        = "бронирование уже оплачено"
	msgProviderError      = "платежный провайдер недоступен, попробуйте позже"
	msgUnauthorized       = "требуется аутентификация"

	defaultPaymentMethod = "card"
)

type Handler struct {
	useCase CreatePaymentIntentUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentIntentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// CreatePaymentIntentRequest HTTP request model
type CreatePaymentIntentRequest struct {
	BookingID     int64  `json:"bookingId"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

// PaymentIntentResponse HTTP response model
type PaymentIntentResponse struct {
	PaymentID     int64  `json:"paymentId"`
	BookingID     int64  `json:"bookingId"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
	ClientSecret  string `json:"clientSecret"`
}

// Handle POST /api/v1/payments/intent
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreatePaymentIntentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/intent - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.PaymentMethod == "" {
		req.PaymentMethod = defaultPaymentMethod
	}

	result, err := h.useCase.Execute(r.Context(), &createPaymentIntent.Request{
		BookingID:     req.BookingID,
		UserID:        userID,
		IsAdmin:       middleware.IsAdminFromContext(r.Context()),
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, createPaymentIntent.ErrBookingNotFound):
			h.logger.Warn("POST /payments/intent - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, createPaymentIntent.ErrAccessDenied):
			h.logger.Warn("POST /payments/intent - Access denied: booking_id=%d, user_id=%d", req.BookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, createPaymentIntent.ErrBookingCancelled):
			h.logger.Warn("POST /payments/intent - Booking cancelled: booking_id=%d", req.BookingID)
			handlers.RespondConflict(w, msgBookingCancelled)

		case errors.Is(err, createPaymentIntent.ErrAlreadyPaid):
			h.logger.Warn("POST /payments/intent - Already paid: booking_id=%d", req.BookingID)
			handlers.RespondConflict(w, msgAlreadyPaid)

		case errors.Is(err, createPaymentIntent.ErrPaymentProvider):
			h.logger.Error("POST /payments/intent - Provider error: booking_id=%d, error=%v", req.BookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgProviderError)

		case errors.Is(err, createPaymentIntent.ErrInvalidInput):
			h.logger.Warn("POST /payments/intent - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /payments/intent - Failed to create intent: booking_id=%d, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/intent - Intent created: payment_id=%d, booking_id=%d, amount=%d",
		result.PaymentID, result.BookingID, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, PaymentIntentResponse{
		PaymentID:     result.PaymentID,
		BookingID:     result.BookingID,
		Amount:        result.Amount,
		Currency:      result.Currency,
		Status:        result.Status,
		TransactionID: result.TransactionID,
		ClientSecret:  result.ClientSecret,
	})
}
