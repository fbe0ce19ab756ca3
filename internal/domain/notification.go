package domain

import "time"

// NotificationType тип уведомления, привязан к переходу жизненного цикла
type NotificationType string

const (
	NotificationBookingPending   NotificationType = "booking_pending"
	NotificationBookingConfirmed NotificationType = "booking_confirmed"
	NotificationBookingCancelled NotificationType = "booking_cancelled"
	NotificationBookingUpdate    NotificationType = "booking_update"
	NotificationPaymentPending   NotificationType = "payment_pending"
	NotificationPaymentCompleted NotificationType = "payment"
	NotificationPaymentFailed    NotificationType = "payment_failed"
	NotificationPaymentUpdate    NotificationType = "payment_update"
)

// Notification represents a user-facing notification produced by lifecycle transitions
// Создается как побочный эффект переходов бронирования/платежа,
// изменяется только установкой флага прочтения
type Notification struct {
	ID      int64
	UserID  int64
	Message string
	Type    NotificationType
	Read    bool
	Link    *string

	// Метаданные для привязки к сущностям
	BookingID *int64
	PaymentID *int64

	CreatedAt time.Time
}
