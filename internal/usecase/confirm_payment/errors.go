package confirm_payment

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда платеж не найден
	ErrPaymentNotFound = errors.New("confirm_payment: payment not found")

	// ErrBookingNotFound возвращается, когда бронирование платежа не найдено
	ErrBookingNotFound = errors.New("confirm_payment: booking not found")

	// ErrAccessDenied возвращается при попытке подтвердить чужой платеж
	ErrAccessDenied = errors.New("confirm_payment: access denied")

	// ErrAlreadyConfirmed возвращается, когда платеж уже завершен
	ErrAlreadyConfirmed = errors.New("confirm_payment: payment is already completed")

	// ErrPartialReconciliation возвращается, когда часть шагов подтверждения
	// уже записана, а оставшиеся не прошли. Откат не выполняется, расхождение
	// фиксируется в логах и требует ручной сверки
	ErrPartialReconciliation = errors.New("confirm_payment: partial reconciliation failure")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
