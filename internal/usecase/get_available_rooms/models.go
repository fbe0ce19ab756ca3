package get_available_rooms

import "time"

// Request модель запроса на поиск свободных номеров
type Request struct {
	CheckInDate  time.Time // Дата заезда
	CheckOutDate time.Time // Дата выезда
	HotelID      *int64    // Фильтр по отелю (опционально)
}

// AvailableRoom свободный номер на запрошенные даты
type AvailableRoom struct {
	ID            int64  // ID номера
	HotelID       int64  // ID отеля
	Name          string // Название номера
	Type          string // Тип номера
	PricePerNight int64  // Цена за ночь
	Capacity      int    // Вместимость
}

// Response модель ответа со списком свободных номеров
type Response struct {
	CheckInDate  time.Time       // Дата заезда
	CheckOutDate time.Time       // Дата выезда
	Rooms        []AvailableRoom // Свободные номера
}
