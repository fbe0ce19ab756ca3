package get_available_rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/roomservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetBookedRoomIDs(ctx context.Context, checkIn, checkOut time.Time) ([]int64, error)
}

// RoomServiceClient интерфейс клиента сервиса номерного фонда
type RoomServiceClient interface {
	ListRooms(ctx context.Context, hotelID *int64) ([]*roomservice.Room, error)
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
