package create_payment_intent

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("create_payment_intent: booking not found")

	// ErrAccessDenied возвращается при попытке оплатить чужое бронирование
	ErrAccessDenied = errors.New("create_payment_intent: access denied")

	// ErrBookingCancelled возвращается при попытке оплатить отмененное бронирование
	ErrBookingCancelled = errors.New("create_payment_intent: booking is cancelled")

	// ErrAlreadyPaid возвращается, когда по бронированию уже есть завершенный платеж
	ErrAlreadyPaid = errors.New("create_payment_intent: booking is already paid")

	// ErrPaymentProvider возвращается при ошибке платежного провайдера.
	// Локально ничего не записано, запрос можно безопасно повторить
	ErrPaymentProvider = errors.New("create_payment_intent: payment provider error")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_payment_intent: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_payment_intent: internal error")
)
