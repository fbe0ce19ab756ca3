package get_all_payments

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

type PaymentService interface {
	GetAll(ctx context.Context) ([]*domain.Payment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
