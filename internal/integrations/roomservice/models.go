package roomservice

// Room модель номера из RoomService
type Room struct {
	ID            int64  `json:"id"`
	HotelID       int64  `json:"hotel_id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	PricePerNight int64  `json:"price_per_night"` // цена за ночь в минимальных единицах валюты
	Capacity      int    `json:"capacity"`
	Status        string `json:"status"` // available | occupied | maintenance
}

// ErrorResponse модель ошибки от RoomService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
