package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/roomservice"
)

// roomStatusMaintenance номер закрыт на обслуживание, бронирование недоступно
const roomStatusMaintenance = "maintenance"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckInDate.IsZero() {
		return fmt.Errorf("%w: checkInDate is required", ErrInvalidInput)
	}

	if req.CheckOutDate.IsZero() {
		return fmt.Errorf("%w: checkOutDate is required", ErrInvalidInput)
	}

	return nil
}

// validateDateRange проверяет диапазон дат бронирования.
// Даты уже нормализованы до полуночи UTC
func validateDateRange(checkIn, checkOut, now time.Time) error {
	// Выезд строго позже заезда: бронирование на ноль ночей не имеет смысла
	if !checkOut.After(checkIn) {
		return ErrInvalidDateRange
	}

	if checkIn.Before(domain.NormalizeDate(now)) {
		return ErrDateInPast
	}

	return nil
}

// isRoomBookable проверяет, что номер доступен для бронирования.
// Статус occupied означает текущую занятость и не запрещает бронь на будущие даты
func isRoomBookable(room *roomservice.Room) bool {
	return room.Status != roomStatusMaintenance
}
