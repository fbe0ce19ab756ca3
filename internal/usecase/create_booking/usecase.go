package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	roomClient "github.com/m04kA/SMC-HotelBookingService/internal/integrations/roomservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	roomClient    RoomServiceClient
	userClient    UserServiceClient
	notifications NotificationService
	mailer        EmailSender
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomClient RoomServiceClient,
	userClient UserServiceClient,
	notifications NotificationService,
	mailer EmailSender,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		roomClient:    roomClient,
		userClient:    userClient,
		notifications: notifications,
		mailer:        mailer,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка занятости и вставка выполняются в одной сериализуемой транзакции
// с блокировкой пересекающихся строк, чтобы два запроса на одни даты
// не создали двойное бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, room=%d, check_in=%s, check_out=%s",
		req.UserID, req.RoomID,
		req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем даты до полуночи UTC: бронируются ночи, не часы
	checkIn := domain.NormalizeDate(req.CheckInDate)
	checkOut := domain.NormalizeDate(req.CheckOutDate)

	// 3. Валидация диапазона дат
	now := uc.timeProvider.Now()
	if err := validateDateRange(checkIn, checkOut, now); err != nil {
		uc.logger.Warn("CreateBooking: date range validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем номер
	room, err := uc.roomClient.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomClient.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 5. Номер на обслуживании бронировать нельзя
	if !isRoomBookable(room) {
		uc.logger.Warn("CreateBooking: room id=%d has status=%s", req.RoomID, room.Status)
		return nil, ErrRoomUnavailable
	}

	var result *domain.Booking

	// 6. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Активные бронирования, пересекающиеся с запрошенным интервалом.
		// Внутри транзакции строки блокируются через FOR UPDATE
		overlapping, err := uc.bookingRepo.FindOverlapping(txCtx, req.RoomID, checkIn, checkOut)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to find overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to find overlapping bookings: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: room id=%d already booked, %d overlapping booking(s)",
				req.RoomID, len(overlapping))
			return ErrRoomUnavailable
		}

		// 6.2. Стоимость: количество ночей * цена за ночь на момент бронирования
		nights := domain.NightsBetween(checkIn, checkOut)
		totalPrice := int64(nights) * room.PricePerNight

		booking := &domain.Booking{
			UserID:       req.UserID,
			RoomID:       req.RoomID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			TotalPrice:   totalPrice,
			Status:       domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total_price=%d", result.ID, result.TotalPrice)

	// 7. Побочные эффекты: уведомление и письмо. Бронирование уже создано,
	// ошибки здесь только логируются
	uc.notifyPending(ctx, result)

	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		RoomID:        result.RoomID,
		CheckInDate:   result.CheckInDate,
		CheckOutDate:  result.CheckOutDate,
		Nights:        result.Nights(),
		TotalPrice:    result.TotalPrice,
		Status:        string(result.Status),
		RoomName:      room.Name,
		RoomType:      room.Type,
		PricePerNight: room.PricePerNight,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// notifyPending создает уведомление о новом бронировании и отправляет письмо
func (uc *UseCase) notifyPending(ctx context.Context, booking *domain.Booking) {
	if _, err := uc.notifications.CreateBookingNotification(ctx, booking.UserID, booking.ID, domain.StatusPending); err != nil {
		uc.logger.Warn("CreateBooking: failed to create notification for booking id=%d: %v", booking.ID, err)
	}

	user, err := uc.userClient.GetUser(ctx, booking.UserID)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to resolve user=%d for email: %v", booking.UserID, err)
		return
	}

	subject := fmt.Sprintf("Бронирование №%d создано", booking.ID)
	body := fmt.Sprintf("Ваше бронирование №%d с %s по %s создано и ожидает подтверждения.",
		booking.ID,
		booking.CheckInDate.Format(domain.DateFormat),
		booking.CheckOutDate.Format(domain.DateFormat))

	if err := uc.mailer.Send(user.Email, subject, body); err != nil {
		uc.logger.Warn("CreateBooking: failed to send email to %s: %v", user.Email, err)
	}
}
