package notifications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	notificationRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/notification"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	created     *domain.Notification
	markReadErr error
}

func (f *fakeRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	n.ID = 1
	f.created = n
	return n, nil
}

func (f *fakeRepo) GetByUserID(_ context.Context, _ int64) ([]*domain.Notification, error) {
	return []*domain.Notification{{ID: 1}}, nil
}

func (f *fakeRepo) MarkRead(_ context.Context, _ int64) error {
	return f.markReadErr
}

func (f *fakeRepo) MarkAllRead(_ context.Context, _ int64) error {
	return nil
}

func TestCreateBookingNotification_TypeByStatus(t *testing.T) {
	tests := []struct {
		status   domain.BookingStatus
		expected domain.NotificationType
	}{
		{domain.StatusPending, domain.NotificationBookingPending},
		{domain.StatusConfirmed, domain.NotificationBookingConfirmed},
		{domain.StatusCancelled, domain.NotificationBookingCancelled},
		{domain.BookingStatus("unknown"), domain.NotificationBookingUpdate},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewService(repo, nopLogger{})

			created, err := svc.CreateBookingNotification(context.Background(), 7, 9, tt.status)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, created.Type)
			assert.NotEmpty(t, created.Message)
			assert.False(t, created.Read)
			require.NotNil(t, created.BookingID)
			assert.Equal(t, int64(9), *created.BookingID)
			require.NotNil(t, created.Link)
			assert.Equal(t, "/my-bookings", *created.Link)
		})
	}
}

func TestCreatePaymentNotification_TypeByStatus(t *testing.T) {
	tests := []struct {
		status   domain.PaymentStatus
		expected domain.NotificationType
	}{
		{domain.PaymentStatusPending, domain.NotificationPaymentPending},
		{domain.PaymentStatusCompleted, domain.NotificationPaymentCompleted},
		{domain.PaymentStatusFailed, domain.NotificationPaymentFailed},
		{domain.PaymentStatusCancelled, domain.NotificationPaymentUpdate},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewService(repo, nopLogger{})

			paymentID := int64(55)
			created, err := svc.CreatePaymentNotification(context.Background(), 7, 9, &paymentID, tt.status)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, created.Type)
			require.NotNil(t, created.PaymentID)
			assert.Equal(t, int64(55), *created.PaymentID)
			require.NotNil(t, created.Link)
			assert.Equal(t, "/my-payments", *created.Link)
		})
	}
}

func TestMarkRead_NotFound(t *testing.T) {
	repo := &fakeRepo{markReadErr: notificationRepo.ErrNotificationNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.MarkRead(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
