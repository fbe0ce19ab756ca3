package confirm_payment

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/userservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatusActive(ctx context.Context, id int64, status domain.BookingStatus) error
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Payment, error)
}

// UserServiceClient интерфейс клиента сервиса пользователей
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// NotificationService интерфейс сервиса уведомлений
type NotificationService interface {
	CreateBookingNotification(ctx context.Context, userID, bookingID int64, status domain.BookingStatus) (*domain.Notification, error)
}

// EmailSender интерфейс отправки почтовых уведомлений
type EmailSender interface {
	Send(to, subject, body string) error
	SendToAdmin(subject, body string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
