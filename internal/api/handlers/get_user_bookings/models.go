package get_user_bookings

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	RoomID       int64  `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Nights       int    `json:"nights"`
	TotalPrice   int64  `json:"totalPrice"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// BookingsListResponse HTTP response model со списком бронирований
type BookingsListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainList конвертирует доменные модели в HTTP модель списка
func FromDomainList(list []*domain.Booking) *BookingsListResponse {
	bookings := make([]BookingResponse, 0, len(list))
	for _, b := range list {
		bookings = append(bookings, BookingResponse{
			ID:           b.ID,
			UserID:       b.UserID,
			RoomID:       b.RoomID,
			CheckInDate:  b.CheckInDate.Format(domain.DateFormat),
			CheckOutDate: b.CheckOutDate.Format(domain.DateFormat),
			Nights:       b.Nights(),
			TotalPrice:   b.TotalPrice,
			Status:       string(b.Status),
			CreatedAt:    b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
		})
	}

	return &BookingsListResponse{Bookings: bookings}
}
