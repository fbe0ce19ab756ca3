package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
)

// Service сервис управления жизненным циклом бронирований
type Service struct {
	bookings      BookingRepository
	payments      PaymentRepository
	notifications NotificationService
	users         UserServiceClient
	mailer        EmailSender
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookings BookingRepository,
	payments PaymentRepository,
	notifications NotificationService,
	users UserServiceClient,
	mailer EmailSender,
	logger Logger,
) *Service {
	return &Service{
		bookings:      bookings,
		payments:      payments,
		notifications: notifications,
		users:         users,
		mailer:        mailer,
		logger:        logger,
	}
}

// GetByID возвращает бронирование по идентификатору.
// Обычный пользователь видит только свои бронирования, администратор - любые
func (s *Service) GetByID(ctx context.Context, id int64, requester Requester) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !requester.CanAccess(booking.UserID) {
		s.logger.Warn("GetByID: user=%d denied access to booking id=%d owned by user=%d",
			requester.UserID, id, booking.UserID)
		return nil, ErrAccessDenied
	}

	return booking, nil
}

// GetUserBookings возвращает бронирования пользователя с опциональным фильтром по статусу
func (s *Service) GetUserBookings(ctx context.Context, userID int64, status *domain.BookingStatus, requester Requester) ([]*domain.Booking, error) {
	if !requester.CanAccess(userID) {
		s.logger.Warn("GetUserBookings: user=%d denied access to bookings of user=%d", requester.UserID, userID)
		return nil, ErrAccessDenied
	}

	list, err := s.bookings.GetByUserID(ctx, userID, status)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	return list, nil
}

// GetAll возвращает все бронирования. Доступ только для администраторов,
// проверка роли выполняется на уровне middleware
func (s *Service) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	list, err := s.bookings.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	return list, nil
}

// Confirm переводит бронирование из pending в confirmed.
// Подтвердить можно только бронирование в статусе pending
func (s *Service) Confirm(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeConfirmed() {
		s.logger.Warn("Confirm: booking id=%d has status=%s, cannot be confirmed", id, booking.Status)
		return nil, fmt.Errorf("%w: booking has status %s", ErrInvalidState, booking.Status)
	}

	if err := s.bookings.UpdateStatus(ctx, id, domain.StatusConfirmed); err != nil {
		s.logger.Error("Confirm: failed to update status for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - update status: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusConfirmed

	s.logger.Info("Confirm: booking id=%d confirmed", id)
	s.notifyBookingStatus(ctx, booking,
		fmt.Sprintf("Бронирование №%d подтверждено", id),
		fmt.Sprintf("Ваше бронирование №%d подтверждено. Ждём вас %s.", id, booking.CheckInDate.Format(domain.DateFormat)))

	return booking, nil
}

// Cancel отменяет бронирование и каскадно отменяет все нетерминальные платежи по нему.
// Владелец может отменить своё бронирование, администратор - любое.
// Если статус бронирования уже записан, а каскад по платежам не прошёл,
// возвращается ErrPartialReconciliation: данные разошлись и требуют сверки
func (s *Service) Cancel(ctx context.Context, id int64, requester Requester) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !requester.CanAccess(booking.UserID) {
		s.logger.Warn("Cancel: user=%d denied access to booking id=%d owned by user=%d",
			requester.UserID, id, booking.UserID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d has status=%s, cannot be cancelled", id, booking.Status)
		return nil, fmt.Errorf("%w: booking has status %s", ErrInvalidState, booking.Status)
	}

	if err := s.bookings.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		s.logger.Error("Cancel: failed to update status for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - update status: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled

	cancelledPayments, err := s.payments.CancelNonTerminalByBookingID(ctx, id)
	if err != nil {
		// Бронирование уже отменено, платежи - нет. Откатывать нечем, фиксируем расхождение
		s.logger.Error("Cancel: booking id=%d cancelled, but payment cascade failed: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - booking %d cancelled, payments untouched: %v",
			ErrPartialReconciliation, id, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled, payments cancelled: %d", id, len(cancelledPayments))

	for _, paymentID := range cancelledPayments {
		pid := paymentID
		if _, err := s.notifications.CreatePaymentNotification(ctx, booking.UserID, id, &pid, domain.PaymentStatusCancelled); err != nil {
			s.logger.Warn("Cancel: failed to create payment notification for payment id=%d: %v", pid, err)
		}
	}

	s.notifyBookingStatus(ctx, booking,
		fmt.Sprintf("Бронирование №%d отменено", id),
		fmt.Sprintf("Ваше бронирование №%d отменено. Все незавершённые платежи по нему аннулированы.", id))

	return booking, nil
}

// notifyBookingStatus создает уведомление и отправляет письмо о смене статуса.
// Побочные эффекты: ошибки логируются, но не влияют на результат операции
func (s *Service) notifyBookingStatus(ctx context.Context, booking *domain.Booking, subject, body string) {
	if _, err := s.notifications.CreateBookingNotification(ctx, booking.UserID, booking.ID, booking.Status); err != nil {
		s.logger.Warn("notifyBookingStatus: failed to create notification for booking id=%d: %v", booking.ID, err)
	}

	user, err := s.users.GetUser(ctx, booking.UserID)
	if err != nil {
		s.logger.Warn("notifyBookingStatus: failed to resolve user=%d for email: %v", booking.UserID, err)
		return
	}

	if err := s.mailer.Send(user.Email, subject, body); err != nil {
		s.logger.Warn("notifyBookingStatus: failed to send email to %s: %v", user.Email, err)
	}
}
