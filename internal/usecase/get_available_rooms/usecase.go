package get_available_rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	roomClient "github.com/m04kA/SMC-HotelBookingService/internal/integrations/roomservice"
)

// roomStatusMaintenance номер закрыт на обслуживание и в выдачу не попадает
const roomStatusMaintenance = "maintenance"

// UseCase use case для поиска свободных номеров на диапазон дат
type UseCase struct {
	bookingRepo  BookingRepository
	roomClient   RoomServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, roomClient RoomServiceClient, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomClient:   roomClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет поиск свободных номеров.
// Номер свободен, если ни одно его активное бронирование не пересекается
// с запрошенным интервалом [check_in, check_out). Выдача справочная:
// гарантия отсутствия двойного бронирования дается транзакцией создания,
// а не этим отчетом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableRooms: check_in=%s, check_out=%s, hotel=%v",
		req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat), req.HotelID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	checkIn := domain.NormalizeDate(req.CheckInDate)
	checkOut := domain.NormalizeDate(req.CheckOutDate)

	if !checkOut.After(checkIn) {
		uc.logger.Warn("GetAvailableRooms: invalid date range")
		return nil, ErrInvalidDateRange
	}

	// 2. Получаем номерной фонд
	rooms, err := uc.roomClient.ListRooms(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, roomClient.ErrHotelNotFound) {
			uc.logger.Warn("GetAvailableRooms: hotel id=%v not found", req.HotelID)
			return nil, ErrHotelNotFound
		}
		uc.logger.Error("GetAvailableRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 3. Номера с активными бронированиями, пересекающими интервал
	bookedIDs, err := uc.bookingRepo.GetBookedRoomIDs(ctx, checkIn, checkOut)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to get booked room ids: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked room ids: %v", ErrInternal, err)
	}

	booked := make(map[int64]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	// 4. Фильтруем занятые и закрытые на обслуживание номера
	available := make([]AvailableRoom, 0, len(rooms))
	for _, room := range rooms {
		if _, ok := booked[room.ID]; ok {
			continue
		}
		if room.Status == roomStatusMaintenance {
			continue
		}

		available = append(available, AvailableRoom{
			ID:            room.ID,
			HotelID:       room.HotelID,
			Name:          room.Name,
			Type:          room.Type,
			PricePerNight: room.PricePerNight,
			Capacity:      room.Capacity,
		})
	}

	uc.logger.Info("GetAvailableRooms: %d of %d rooms available", len(available), len(rooms))

	return &Response{
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Rooms:        available,
	}, nil
}
