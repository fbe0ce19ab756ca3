package get_available_rooms

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	getAvailableRooms "github.com/m04kA/SMC-HotelBookingService/internal/usecase/get_available_rooms"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "дата выезда должна быть позже даты заезда"
	msgInvalidHotelID   = "некорректный идентификатор отеля"
	msgHotelNotFound    = "отель не найден"
)

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available?checkInDate=&checkOutDate=&hotelId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	checkIn, err := time.Parse(domain.DateFormat, query.Get("checkInDate"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	checkOut, err := time.Parse(domain.DateFormat, query.Get("checkOutDate"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var hotelID *int64
	if raw := query.Get("hotelId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			handlers.RespondBadRequest(w, msgInvalidHotelID)
			return
		}
		hotelID = ptr.Ptr(id)
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableRooms.Request{
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		HotelID:      hotelID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableRooms.ErrInvalidDateRange):
			h.logger.Warn("GET /rooms/available - Invalid date range: check_in=%s, check_out=%s",
				query.Get("checkInDate"), query.Get("checkOutDate"))
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, getAvailableRooms.ErrHotelNotFound):
			h.logger.Warn("GET /rooms/available - Hotel not found: hotel_id=%v", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, getAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /rooms/available - Failed to get available rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
