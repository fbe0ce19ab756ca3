package create_payment_intent

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/paymentgateway"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error)
	UpdateForRetry(ctx context.Context, id int64, amount int64, paymentMethod, transactionID string) (*domain.Payment, error)
}

// PaymentGatewayClient интерфейс клиента платежного провайдера
type PaymentGatewayClient interface {
	CreateIntent(ctx context.Context, amount int64, bookingID int64) (*paymentgateway.Intent, error)
}

// NotificationService интерфейс сервиса уведомлений
type NotificationService interface {
	CreatePaymentNotification(ctx context.Context, userID, bookingID int64, paymentID *int64, status domain.PaymentStatus) (*domain.Notification, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
