package create_payment_intent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	paymentRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/paymentgateway"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	booking *domain.Booking
	err     error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, f.err
}

type fakePaymentRepo struct {
	existing *domain.Payment
	getErr   error

	created      *domain.Payment
	retried      bool
	retriedTxnID string
}

func (f *fakePaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	p.ID = 55
	f.created = p
	return p, nil
}

func (f *fakePaymentRepo) GetByBookingID(_ context.Context, _ int64) (*domain.Payment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.existing == nil {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return f.existing, nil
}

func (f *fakePaymentRepo) UpdateForRetry(_ context.Context, id int64, amount int64, paymentMethod, transactionID string) (*domain.Payment, error) {
	f.retried = true
	f.retriedTxnID = transactionID
	return &domain.Payment{
		ID:            id,
		BookingID:     f.existing.BookingID,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		TransactionID: transactionID,
		Status:        domain.PaymentStatusPending,
	}, nil
}

type fakeGateway struct {
	intent *paymentgateway.Intent
	err    error
	calls  int
}

func (f *fakeGateway) CreateIntent(_ context.Context, _ int64, _ int64) (*paymentgateway.Intent, error) {
	f.calls++
	return f.intent, f.err
}

type fakeNotifications struct {
	statuses []domain.PaymentStatus
}

func (f *fakeNotifications) CreatePaymentNotification(_ context.Context, _, _ int64, _ *int64, status domain.PaymentStatus) (*domain.Notification, error) {
	f.statuses = append(f.statuses, status)
	return &domain.Notification{ID: 1}, nil
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:           9,
		UserID:       7,
		RoomID:       3,
		CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		TotalPrice:   2000000,
		Status:       domain.StatusPending,
	}
}

func testIntent() *paymentgateway.Intent {
	return &paymentgateway.Intent{
		ID:           "pi_123",
		ClientSecret: "pi_123_secret",
		Amount:       2000000,
		Currency:     "vnd",
		Status:       "requires_payment_method",
	}
}

func TestCreatePaymentIntent_NewPayment(t *testing.T) {
	payments := &fakePaymentRepo{}
	notifs := &fakeNotifications{}
	uc := NewUseCase(&fakeBookingRepo{booking: pendingBooking()}, payments, &fakeGateway{intent: testIntent()}, notifs, "vnd", nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:     9,
		UserID:        7,
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	// Сумма берется из бронирования
	assert.Equal(t, int64(2000000), resp.Amount)
	assert.Equal(t, "pi_123", resp.TransactionID)
	assert.Equal(t, "pi_123_secret", resp.ClientSecret)
	assert.Equal(t, string(domain.PaymentStatusPending), resp.Status)

	require.NotNil(t, payments.created)
	assert.Equal(t, int64(2000000), payments.created.Amount)
	assert.False(t, payments.retried)

	assert.Equal(t, []domain.PaymentStatus{domain.PaymentStatusPending}, notifs.statuses)
}

func TestCreatePaymentIntent_ReusesPendingPayment(t *testing.T) {
	payments := &fakePaymentRepo{
		existing: &domain.Payment{
			ID:            55,
			BookingID:     9,
			Amount:        2000000,
			TransactionID: "pi_old",
			Status:        domain.PaymentStatusPending,
		},
	}
	uc := NewUseCase(&fakeBookingRepo{booking: pendingBooking()}, payments, &fakeGateway{intent: testIntent()}, &fakeNotifications{}, "vnd", nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:     9,
		UserID:        7,
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	// Повторный запрос не плодит записи: тот же платеж, новый transaction_id
	assert.True(t, payments.retried)
	assert.Nil(t, payments.created)
	assert.Equal(t, "pi_123", payments.retriedTxnID)
	assert.Equal(t, int64(55), resp.PaymentID)
}

func TestCreatePaymentIntent_AlreadyPaid(t *testing.T) {
	payments := &fakePaymentRepo{
		existing: &domain.Payment{ID: 55, BookingID: 9, Status: domain.PaymentStatusCompleted},
	}
	gateway := &fakeGateway{intent: testIntent()}
	uc := NewUseCase(&fakeBookingRepo{booking: pendingBooking()}, payments, gateway, &fakeNotifications{}, "vnd", nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:     9,
		UserID:        7,
		PaymentMethod: "card",
	})

	assert.ErrorIs(t, err, ErrAlreadyPaid)
	assert.Equal(t, 0, gateway.calls)
}

func TestCreatePaymentIntent_ProviderErrorPersistsNothing(t *testing.T) {
	payments := &fakePaymentRepo{}
	uc := NewUseCase(&fakeBookingRepo{booking: pendingBooking()}, payments, &fakeGateway{err: paymentgateway.ErrProvider}, &fakeNotifications{}, "vnd", nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:     9,
		UserID:        7,
		PaymentMethod: "card",
	})

	assert.ErrorIs(t, err, ErrPaymentProvider)
	assert.Nil(t, payments.created)
	assert.False(t, payments.retried)
}

func TestCreatePaymentIntent_CancelledBooking(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusCancelled
	uc := NewUseCase(&fakeBookingRepo{booking: booking}, &fakePaymentRepo{}, &fakeGateway{intent: testIntent()}, &fakeNotifications{}, "vnd", nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:     9,
		UserID:        7,
		PaymentMethod: "card",
	})

	assert.ErrorIs(t, err, ErrBookingCancelled)
}

func TestCreatePaymentIntent_AccessDenied(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{booking: pendingBooking()}, &fakePaymentRepo{}, &fakeGateway{intent: testIntent()}, &fakeNotifications{}, "vnd", nopLogger{})

	t.Run("Foreign booking", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			BookingID:     9,
			UserID:        1000,
			PaymentMethod: "card",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("Admin can pay for any booking", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			BookingID:     9,
			UserID:        1000,
			IsAdmin:       true,
			PaymentMethod: "card",
		})
		assert.NoError(t, err)
	})
}

func TestCreatePaymentIntent_BookingNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{err: bookingRepo.ErrBookingNotFound}, &fakePaymentRepo{}, &fakeGateway{intent: testIntent()}, &fakeNotifications{}, "vnd", nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:     404,
		UserID:        7,
		PaymentMethod: "card",
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
