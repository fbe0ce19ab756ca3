package payments

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Payment, error)
	GetAll(ctx context.Context) ([]*domain.Payment, error)
}

// BookingRepository интерфейс репозитория бронирований (проверка владельца)
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
