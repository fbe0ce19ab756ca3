package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID      = "некорректный идентификатор бронирования"
	msgBookingNotFound       = "бронирование не найдено"
	msgAccessDenied          = "доступ к чужому бронированию запрещен"
	msgAlreadyCancelled      = "бронирование уже отменено"
	msgPartialReconciliation = "бронирование отменено, но отмена платежей не завершена"
	msgUnauthorized          = "требуется аутентификация"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	RoomID       int64  `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	TotalPrice   int64  `json:"totalPrice"`
	Status       string `json:"status"`
	UpdatedAt    string `json:"updatedAt"`
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	requester := bookings.Requester{
		UserID:  userID,
		IsAdmin: middleware.IsAdminFromContext(r.Context()),
	}

	booking, err := h.service.Cancel(r.Context(), bookingID, requester)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidState):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Already cancelled: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, bookings.ErrPartialReconciliation):
			h.logger.Error("PATCH /bookings/{id}/cancel - Partial reconciliation: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPartialReconciliation)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%d, user_id=%d", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, CancelBookingResponse{
		ID:           booking.ID,
		UserID:       booking.UserID,
		RoomID:       booking.RoomID,
		CheckInDate:  booking.CheckInDate.Format(domain.DateFormat),
		CheckOutDate: booking.CheckOutDate.Format(domain.DateFormat),
		TotalPrice:   booking.TotalPrice,
		Status:       string(booking.Status),
		UpdatedAt:    booking.UpdatedAt.Format(time.RFC3339),
	})
}
