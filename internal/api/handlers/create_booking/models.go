package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID       int64  `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`  // "2026-03-10"
	CheckOutDate string `json:"checkOutDate"` // "2026-03-12"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"userId"`
	RoomID        int64  `json:"roomId"`
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
	Nights        int    `json:"nights"`
	TotalPrice    int64  `json:"totalPrice"`
	Status        string `json:"status"`
	RoomName      string `json:"roomName"`
	RoomType      string `json:"roomType"`
	PricePerNight int64  `json:"pricePerNight"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckInDate)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:       userID,
		RoomID:       r.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		RoomID:        resp.RoomID,
		CheckInDate:   resp.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:  resp.CheckOutDate.Format(domain.DateFormat),
		Nights:        resp.Nights,
		TotalPrice:    resp.TotalPrice,
		Status:        resp.Status,
		RoomName:      resp.RoomName,
		RoomType:      resp.RoomType,
		PricePerNight: resp.PricePerNight,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
