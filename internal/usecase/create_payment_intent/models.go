package create_payment_intent

// Request модель запроса на создание платежного намерения
type Request struct {
	BookingID     int64  // ID бронирования
	UserID        int64  // ID пользователя, выполняющего запрос
	IsAdmin       bool   // Запрос от администратора
	PaymentMethod string // Способ оплаты (например, "card")
}

// Response модель ответа с платежным намерением
type Response struct {
	PaymentID     int64  // ID платежа
	BookingID     int64  // ID бронирования
	Amount        int64  // Сумма к оплате
	Currency      string // Валюта
	Status        string // Статус платежа
	TransactionID string // ID intent у провайдера
	ClientSecret  string // Секрет для подтверждения оплаты на клиенте
}
