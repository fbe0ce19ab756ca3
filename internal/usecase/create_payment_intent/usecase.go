package create_payment_intent

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	paymentRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/payment"
	gatewayClient "github.com/m04kA/SMC-HotelBookingService/internal/integrations/paymentgateway"
)

// UseCase use case для создания платежного намерения
type UseCase struct {
	bookings      BookingRepository
	payments      PaymentRepository
	gateway       PaymentGatewayClient
	notifications NotificationService
	currency      string
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookings BookingRepository,
	payments PaymentRepository,
	gateway PaymentGatewayClient,
	notifications NotificationService,
	currency string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookings:      bookings,
		payments:      payments,
		gateway:       gateway,
		notifications: notifications,
		currency:      currency,
		logger:        logger,
	}
}

// Execute создает намерение оплаты у провайдера и локальную запись платежа.
// Сумма всегда берется из бронирования, клиент ее не передает.
// Повторный запрос по тому же бронированию не плодит записи: существующий
// незавершенный платеж переиспользуется с новым transaction_id.
// При ошибке провайдера локально ничего не записывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePaymentIntent: booking=%d, user=%d, method=%s", req.BookingID, req.UserID, req.PaymentMethod)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreatePaymentIntent: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование
	booking, err := uc.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CreatePaymentIntent: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CreatePaymentIntent: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Платить можно только за свое бронирование
	if !req.IsAdmin && booking.UserID != req.UserID {
		uc.logger.Warn("CreatePaymentIntent: user=%d denied access to booking id=%d owned by user=%d",
			req.UserID, req.BookingID, booking.UserID)
		return nil, ErrAccessDenied
	}

	// 4. Отмененное бронирование оплатить нельзя
	if booking.IsCancelled() {
		uc.logger.Warn("CreatePaymentIntent: booking id=%d is cancelled", req.BookingID)
		return nil, ErrBookingCancelled
	}

	// 5. Ищем существующий платеж по бронированию
	existing, err := uc.payments.GetByBookingID(ctx, req.BookingID)
	if err != nil && !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
		uc.logger.Error("CreatePaymentIntent: failed to get payment for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
	}

	if existing != nil && existing.IsCompleted() {
		uc.logger.Warn("CreatePaymentIntent: booking id=%d is already paid, payment id=%d", req.BookingID, existing.ID)
		return nil, ErrAlreadyPaid
	}

	// 6. Создаем намерение у провайдера. Сумма берется из бронирования
	intent, err := uc.gateway.CreateIntent(ctx, booking.TotalPrice, req.BookingID)
	if err != nil {
		if errors.Is(err, gatewayClient.ErrProvider) {
			uc.logger.Error("CreatePaymentIntent: provider rejected intent for booking id=%d: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
		}
		uc.logger.Error("CreatePaymentIntent: failed to create intent for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to create intent: %v", ErrInternal, err)
	}

	// 7. Записываем платеж: переиспользуем незавершенный или создаем новый
	var payment *domain.Payment
	if existing != nil {
		payment, err = uc.payments.UpdateForRetry(ctx, existing.ID, booking.TotalPrice, req.PaymentMethod, intent.ID)
		if err != nil {
			uc.logger.Error("CreatePaymentIntent: failed to update payment id=%d for retry: %v", existing.ID, err)
			return nil, fmt.Errorf("%w: failed to update payment for retry: %v", ErrInternal, err)
		}
		uc.logger.Info("CreatePaymentIntent: reused payment id=%d with new transaction_id=%s", payment.ID, intent.ID)
	} else {
		payment, err = uc.payments.Create(ctx, &domain.Payment{
			BookingID:     req.BookingID,
			Amount:        booking.TotalPrice,
			PaymentMethod: req.PaymentMethod,
			TransactionID: intent.ID,
			Status:        domain.PaymentStatusPending,
		})
		if err != nil {
			uc.logger.Error("CreatePaymentIntent: failed to create payment for booking id=%d: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
		}
		uc.logger.Info("CreatePaymentIntent: created payment id=%d, transaction_id=%s", payment.ID, intent.ID)
	}

	// 8. Уведомление об ожидающей оплате. Платеж уже записан, ошибка только логируется
	if _, err := uc.notifications.CreatePaymentNotification(ctx, booking.UserID, req.BookingID, &payment.ID, domain.PaymentStatusPending); err != nil {
		uc.logger.Warn("CreatePaymentIntent: failed to create notification for payment id=%d: %v", payment.ID, err)
	}

	return &Response{
		PaymentID:     payment.ID,
		BookingID:     payment.BookingID,
		Amount:        payment.Amount,
		Currency:      uc.currency,
		Status:        string(payment.Status),
		TransactionID: payment.TransactionID,
		ClientSecret:  intent.ClientSecret,
	}, nil
}
