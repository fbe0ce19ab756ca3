package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID       int64     // ID пользователя
	RoomID       int64     // ID номера
	CheckInDate  time.Time // Дата заезда (без времени)
	CheckOutDate time.Time // Дата выезда (без времени)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64     // ID созданного бронирования
	UserID       int64     // ID пользователя
	RoomID       int64     // ID номера
	CheckInDate  time.Time // Дата заезда
	CheckOutDate time.Time // Дата выезда
	Nights       int       // Количество ночей
	TotalPrice   int64     // Итоговая стоимость (ночи * цена за ночь)
	Status       string    // Статус бронирования

	// Денормализованные данные номера
	RoomName      string // Название номера
	RoomType      string // Тип номера
	PricePerNight int64  // Цена за ночь на момент бронирования

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
