package domain

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Валюта платежей: донг не имеет субъединиц, суммы храним целыми
const (
	DefaultCurrency = "vnd"
)

// ActiveBookingStatuses список статусов, занимающих номер
// Используется при проверке доступности
var ActiveBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalPaymentStatuses статусы платежей, которые не трогает каскад отмены
var TerminalPaymentStatuses = []PaymentStatus{
	PaymentStatusCompleted,
	PaymentStatusCancelled,
}
