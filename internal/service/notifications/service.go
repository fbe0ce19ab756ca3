package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	notificationRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/notification"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
)

// Ссылки для колокольчика на фронтенде
const (
	linkMyBookings = "/my-bookings"
	linkMyPayments = "/my-payments"
)

// Service сервис уведомлений
// Уведомления создаются ядром как побочный эффект переходов жизненного цикла
// бронирований и платежей; пользователь их только читает и отмечает прочитанными
type Service struct {
	repo   NotificationRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(repo NotificationRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateBookingNotification создает уведомление о переходе статуса бронирования
func (s *Service) CreateBookingNotification(ctx context.Context, userID, bookingID int64, status domain.BookingStatus) (*domain.Notification, error) {
	var message string
	var notifType domain.NotificationType

	switch status {
	case domain.StatusPending:
		message = "Ваше бронирование ожидает подтверждения"
		notifType = domain.NotificationBookingPending
	case domain.StatusConfirmed:
		message = "Ваше бронирование подтверждено"
		notifType = domain.NotificationBookingConfirmed
	case domain.StatusCancelled:
		message = "Ваше бронирование отменено"
		notifType = domain.NotificationBookingCancelled
	default:
		message = "Статус вашего бронирования обновлён"
		notifType = domain.NotificationBookingUpdate
	}

	notification := &domain.Notification{
		UserID:    userID,
		Message:   message,
		Type:      notifType,
		Read:      false,
		Link:      ptr.Ptr(linkMyBookings),
		BookingID: &bookingID,
	}

	created, err := s.repo.Create(ctx, notification)
	if err != nil {
		s.logger.Error("CreateBookingNotification: failed to create notification for user=%d, booking=%d: %v",
			userID, bookingID, err)
		return nil, fmt.Errorf("%w: CreateBookingNotification - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBookingNotification: created notification id=%d type=%s for user=%d, booking=%d",
		created.ID, notifType, userID, bookingID)
	return created, nil
}

// CreatePaymentNotification создает уведомление о переходе статуса платежа
func (s *Service) CreatePaymentNotification(ctx context.Context, userID, bookingID int64, paymentID *int64, status domain.PaymentStatus) (*domain.Notification, error) {
	var message string
	var notifType domain.NotificationType

	switch status {
	case domain.PaymentStatusPending:
		message = "Ожидается оплата бронирования"
		notifType = domain.NotificationPaymentPending
	case domain.PaymentStatusCompleted:
		message = "Оплата бронирования прошла успешно"
		notifType = domain.NotificationPaymentCompleted
	case domain.PaymentStatusFailed:
		message = "Оплата бронирования не прошла"
		notifType = domain.NotificationPaymentFailed
	default:
		message = "Статус оплаты обновлён"
		notifType = domain.NotificationPaymentUpdate
	}

	notification := &domain.Notification{
		UserID:    userID,
		Message:   message,
		Type:      notifType,
		Read:      false,
		Link:      ptr.Ptr(linkMyPayments),
		BookingID: &bookingID,
		PaymentID: paymentID,
	}

	created, err := s.repo.Create(ctx, notification)
	if err != nil {
		s.logger.Error("CreatePaymentNotification: failed to create notification for user=%d, booking=%d: %v",
			userID, bookingID, err)
		return nil, fmt.Errorf("%w: CreatePaymentNotification - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePaymentNotification: created notification id=%d type=%s for user=%d, booking=%d",
		created.ID, notifType, userID, bookingID)
	return created, nil
}

// GetUserNotifications возвращает последние уведомления пользователя
func (s *Service) GetUserNotifications(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	notifications, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserNotifications: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserNotifications - repository error: %v", ErrInternal, err)
	}

	return notifications, nil
}

// MarkRead отмечает уведомление прочитанным
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkRead: notification id=%d not found", id)
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for notification id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkRead: notification id=%d marked as read", id)
	return nil
}

// MarkAllRead отмечает все уведомления пользователя прочитанными
func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		s.logger.Error("MarkAllRead: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: MarkAllRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkAllRead: all notifications marked as read for user=%d", userID)
	return nil
}
