package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	paymentRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/payment"
)

// UseCase use case для подтверждения оплаты
type UseCase struct {
	bookings      BookingRepository
	payments      PaymentRepository
	userClient    UserServiceClient
	notifications NotificationService
	mailer        EmailSender
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookings BookingRepository,
	payments PaymentRepository,
	userClient UserServiceClient,
	notifications NotificationService,
	mailer EmailSender,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookings:      bookings,
		payments:      payments,
		userClient:    userClient,
		notifications: notifications,
		mailer:        mailer,
		logger:        logger,
	}
}

// Execute подтверждает оплату тремя последовательными шагами без общей
// транзакции: платеж переводится в completed, бронирование в confirmed,
// затем уточняется получатель письма. Если шаг падает после того, как
// предыдущие уже записаны, возвращается ErrPartialReconciliation:
// уже выполненные шаги не откатываются, расхождение разбирается вручную
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: payment=%d, user=%d", req.PaymentID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmPayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем платеж
	payment, err := uc.payments.GetByID(ctx, req.PaymentID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			uc.logger.Warn("ConfirmPayment: payment id=%d not found", req.PaymentID)
			return nil, ErrPaymentNotFound
		}
		uc.logger.Error("ConfirmPayment: failed to get payment id=%d: %v", req.PaymentID, err)
		return nil, fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
	}

	if payment.IsCompleted() {
		uc.logger.Warn("ConfirmPayment: payment id=%d is already completed", req.PaymentID)
		return nil, ErrAlreadyConfirmed
	}

	// 3. Получаем бронирование платежа и проверяем владельца до любых записей
	booking, err := uc.bookings.GetByID(ctx, payment.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("ConfirmPayment: booking id=%d for payment id=%d not found",
				payment.BookingID, req.PaymentID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ConfirmPayment: failed to get booking id=%d: %v", payment.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !req.IsAdmin && booking.UserID != req.UserID {
		uc.logger.Warn("ConfirmPayment: user=%d denied access to payment id=%d of booking owned by user=%d",
			req.UserID, req.PaymentID, booking.UserID)
		return nil, ErrAccessDenied
	}

	// 4. Шаг 1: платеж -> completed. До этой записи состояние не менялось,
	// ошибка здесь безопасна для повтора
	if _, err := uc.payments.UpdateStatus(ctx, req.PaymentID, domain.PaymentStatusCompleted); err != nil {
		uc.logger.Error("ConfirmPayment: failed to complete payment id=%d: %v", req.PaymentID, err)
		return nil, fmt.Errorf("%w: failed to complete payment: %v", ErrInternal, err)
	}

	// 5. Шаг 2: бронирование -> confirmed. Отмененное бронирование статус
	// не меняет: подтверждение оплаты не воскрешает отмену. Платеж при этом
	// уже completed - фиксируем расхождение
	if err := uc.bookings.UpdateStatusActive(ctx, payment.BookingID, domain.StatusConfirmed); err != nil {
		uc.logger.Error("ConfirmPayment: payment id=%d completed, but booking id=%d not confirmed: %v",
			req.PaymentID, payment.BookingID, err)
		return nil, fmt.Errorf("%w: payment %d completed, booking %d not confirmed: %v",
			ErrPartialReconciliation, req.PaymentID, payment.BookingID, err)
	}

	// 6. Шаг 3: получатель письма. Оба статуса уже записаны
	user, err := uc.userClient.GetUser(ctx, booking.UserID)
	if err != nil {
		uc.logger.Error("ConfirmPayment: payment id=%d and booking id=%d updated, but user=%d lookup failed: %v",
			req.PaymentID, payment.BookingID, booking.UserID, err)
		return nil, fmt.Errorf("%w: statuses updated, user %d lookup failed: %v",
			ErrPartialReconciliation, booking.UserID, err)
	}

	uc.logger.Info("ConfirmPayment: payment id=%d completed, booking id=%d confirmed", req.PaymentID, payment.BookingID)

	// 7. Уведомление и письмо. Все записи выполнены, ошибки только логируются
	if _, err := uc.notifications.CreateBookingNotification(ctx, booking.UserID, booking.ID, domain.StatusConfirmed); err != nil {
		uc.logger.Warn("ConfirmPayment: failed to create notification for booking id=%d: %v", booking.ID, err)
	}

	subject := fmt.Sprintf("Бронирование №%d подтверждено", booking.ID)
	body := fmt.Sprintf("Оплата получена, ваше бронирование №%d подтверждено. Заезд %s, выезд %s.",
		booking.ID,
		booking.CheckInDate.Format(domain.DateFormat),
		booking.CheckOutDate.Format(domain.DateFormat))

	if err := uc.mailer.Send(user.Email, subject, body); err != nil {
		uc.logger.Warn("ConfirmPayment: failed to send email to %s: %v", user.Email, err)
	}

	adminBody := fmt.Sprintf("Оплата по бронированию №%d получена, платеж №%d на сумму %d.",
		booking.ID, req.PaymentID, payment.Amount)
	if err := uc.mailer.SendToAdmin(subject, adminBody); err != nil {
		uc.logger.Warn("ConfirmPayment: failed to send admin email: %v", err)
	}

	return &Response{
		PaymentID:     req.PaymentID,
		BookingID:     booking.ID,
		PaymentStatus: string(domain.PaymentStatusCompleted),
		BookingStatus: string(domain.StatusConfirmed),
	}, nil
}
