package get_available_rooms

import (
	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	getAvailableRooms "github.com/m04kA/SMC-HotelBookingService/internal/usecase/get_available_rooms"
)

// AvailableRoomResponse HTTP модель свободного номера
type AvailableRoomResponse struct {
	ID            int64  `json:"id"`
	HotelID       int64  `json:"hotelId"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	PricePerNight int64  `json:"pricePerNight"`
	Capacity      int    `json:"capacity"`
}

// AvailableRoomsResponse HTTP модель ответа со списком свободных номеров
type AvailableRoomsResponse struct {
	CheckInDate  string                  `json:"checkInDate"`
	CheckOutDate string                  `json:"checkOutDate"`
	Rooms        []AvailableRoomResponse `json:"rooms"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailableRooms.Response) *AvailableRoomsResponse {
	rooms := make([]AvailableRoomResponse, 0, len(resp.Rooms))
	for _, room := range resp.Rooms {
		rooms = append(rooms, AvailableRoomResponse{
			ID:            room.ID,
			HotelID:       room.HotelID,
			Name:          room.Name,
			Type:          room.Type,
			PricePerNight: room.PricePerNight,
			Capacity:      room.Capacity,
		})
	}

	return &AvailableRoomsResponse{
		CheckInDate:  resp.CheckInDate.Format(domain.DateFormat),
		CheckOutDate: resp.CheckOutDate.Format(domain.DateFormat),
		Rooms:        rooms,
	}
}
