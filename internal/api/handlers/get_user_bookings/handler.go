package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
)

const (
	msgInvalidUserID = "некорректный идентификатор пользователя"
	msgInvalidStatus = "некорректный статус бронирования"
	msgAccessDenied  = "доступ к чужим бронированиям запрещен"
	msgUnauthorized  = "требуется аутентификация"
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

// Handle GET /api/v1/users/{userId}/bookings?status=
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

	status, err := parseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	requester := bookings.Requester{
		UserID:  requesterID,
		IsAdmin: middleware.IsAdminFromContext(r.Context()),
	}

	list, err := h.service.GetUserBookings(r.Context(), userID, status, requester)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /users/{id}/bookings - Access denied: user_id=%d, requester_id=%d", userID, requesterID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /users/{id}/bookings - Failed to get bookings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list))
}

// parseStatusFilter парсит опциональный фильтр по статусу
func parseStatusFilter(raw string) (*domain.BookingStatus, error) {
	if raw == "" {
		return nil, nil
	}

	status := domain.BookingStatus(raw)
	switch status {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		return &status, nil
	default:
		return nil, errors.New("unknown booking status")
	}
}
