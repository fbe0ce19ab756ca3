package bookings

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/userservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetAll(ctx context.Context) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// PaymentRepository интерфейс репозитория платежей (каскад при отмене)
type PaymentRepository interface {
	CancelNonTerminalByBookingID(ctx context.Context, bookingID int64) ([]int64, error)
}

// NotificationService интерфейс сервиса уведомлений
type NotificationService interface {
	CreateBookingNotification(ctx context.Context, userID, bookingID int64, status domain.BookingStatus) (*domain.Notification, error)
	CreatePaymentNotification(ctx context.Context, userID, bookingID int64, paymentID *int64, status domain.PaymentStatus) (*domain.Notification, error)
}

// UserServiceClient интерфейс клиента сервиса пользователей
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// EmailSender интерфейс отправки почтовых уведомлений
type EmailSender interface {
	Send(to, subject, body string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
