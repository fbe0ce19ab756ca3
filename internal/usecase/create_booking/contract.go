package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/roomservice"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/userservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time) ([]*domain.Booking, error)
}

// RoomServiceClient интерфейс клиента сервиса номерного фонда
type RoomServiceClient interface {
	GetRoom(ctx context.Context, roomID int64) (*roomservice.Room, error)
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
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
