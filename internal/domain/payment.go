package domain

import "time"

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment represents a payment attempt for a booking
// На бронирование в норме приходится один платёж; повторные попытки оплаты
// переиспользуют существующую незавершённую запись (новый transaction_id)
type Payment struct {
	ID            int64
	BookingID     int64
	Amount        int64 // сумма в минимальных единицах валюты, без плавающей точки
	PaymentMethod string
	TransactionID string // идентификатор intent у платёжного провайдера
	Status        PaymentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCompleted returns true if the payment has been completed
func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentStatusCompleted
}

// IsTerminal returns true if the payment is in a terminal state
// Терминальные платежи не трогает каскад отмены бронирования
func (p *Payment) IsTerminal() bool {
	return p.Status == PaymentStatusCompleted || p.Status == PaymentStatusCancelled
}
