package confirm_payment

// Request модель запроса на подтверждение оплаты
type Request struct {
	PaymentID int64 // ID платежа
	UserID    int64 // ID пользователя, выполняющего запрос
	IsAdmin   bool  // Запрос от администратора
}

// Response модель ответа с результатом подтверждения
type Response struct {
	PaymentID     int64  // ID платежа
	BookingID     int64  // ID бронирования
	PaymentStatus string // Статус платежа после подтверждения
	BookingStatus string // Статус бронирования после подтверждения
}
