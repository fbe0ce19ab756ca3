package get_booking

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

// FromDomain конвертирует доменную модель в HTTP модель
func FromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
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
	}
}
