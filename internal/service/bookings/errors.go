package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда пользователь пытается работать с чужим бронированием
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidState возвращается при недопустимом переходе статуса бронирования
	ErrInvalidState = errors.New("invalid booking state transition")

	// ErrPartialReconciliation возвращается, когда бронирование уже переведено в новый статус,
	// но связанные записи обновить не удалось. Состояние расходится и требует ручной сверки
	ErrPartialReconciliation = errors.New("partial reconciliation failure")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
