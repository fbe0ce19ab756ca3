package get_all_bookings

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
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

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	RoomID       int64  `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	TotalPrice   int64  `json:"totalPrice"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// BookingsListResponse HTTP response model со списком бронирований
type BookingsListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Handle GET /api/v1/bookings (только для администраторов)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings - Failed to get bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := BookingsListResponse{Bookings: make([]BookingResponse, 0, len(list))}
	for _, b := range list {
		response.Bookings = append(response.Bookings, BookingResponse{
			ID:           b.ID,
			UserID:       b.UserID,
			RoomID:       b.RoomID,
			CheckInDate:  b.CheckInDate.Format(domain.DateFormat),
			CheckOutDate: b.CheckOutDate.Format(domain.DateFormat),
			TotalPrice:   b.TotalPrice,
			Status:       string(b.Status),
			CreatedAt:    b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
