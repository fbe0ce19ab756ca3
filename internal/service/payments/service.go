package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	paymentRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
)

// Service сервис чтения платежей
type Service struct {
	payments PaymentRepository
	bookings BookingRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(payments PaymentRepository, bookings BookingRepository, logger Logger) *Service {
	return &Service{
		payments: payments,
		bookings: bookings,
		logger:   logger,
	}
}

// GetByBookingID возвращает последний платеж по бронированию.
// Доступ: владелец бронирования или администратор
func (s *Service) GetByBookingID(ctx context.Context, bookingID int64, requester bookings.Requester) (*domain.Payment, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByBookingID: booking repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByBookingID - booking repository error: %v", ErrInternal, err)
	}

	if !requester.CanAccess(booking.UserID) {
		s.logger.Warn("GetByBookingID: user=%d denied access to payments of booking id=%d",
			requester.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	payment, err := s.payments.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("GetByBookingID: payment repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByBookingID - payment repository error: %v", ErrInternal, err)
	}

	return payment, nil
}

// GetUserPayments возвращает все платежи по бронированиям пользователя
func (s *Service) GetUserPayments(ctx context.Context, userID int64, requester bookings.Requester) ([]*domain.Payment, error) {
	if !requester.CanAccess(userID) {
		s.logger.Warn("GetUserPayments: user=%d denied access to payments of user=%d", requester.UserID, userID)
		return nil, ErrAccessDenied
	}

	list, err := s.payments.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserPayments: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserPayments - repository error: %v", ErrInternal, err)
	}

	return list, nil
}

// GetAll возвращает все платежи. Доступ только для администраторов,
// проверка роли выполняется на уровне middleware
func (s *Service) GetAll(ctx context.Context) ([]*domain.Payment, error) {
	list, err := s.payments.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	return list, nil
}
