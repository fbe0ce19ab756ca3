package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/roomservice"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/userservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type fakeBookingRepo struct {
	overlapping []*domain.Booking
	overlapErr  error
	created     *domain.Booking
	createErr   error
}

func (f *fakeBookingRepo) FindOverlapping(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Booking, error) {
	return f.overlapping, f.overlapErr
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = 42
	b.CreatedAt = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	b.UpdatedAt = b.CreatedAt
	f.created = b
	return b, nil
}

type fakeRoomClient struct {
	room *roomservice.Room
	err  error
}

func (f *fakeRoomClient) GetRoom(_ context.Context, _ int64) (*roomservice.Room, error) {
	return f.room, f.err
}

type fakeUserClient struct {
	user *userservice.User
	err  error
}

func (f *fakeUserClient) GetUser(_ context.Context, _ int64) (*userservice.User, error) {
	return f.user, f.err
}

type fakeNotifications struct {
	statuses []domain.BookingStatus
	err      error
}

func (f *fakeNotifications) CreateBookingNotification(_ context.Context, _, _ int64, status domain.BookingStatus) (*domain.Notification, error) {
	f.statuses = append(f.statuses, status)
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Notification{ID: 1}, nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) Send(to, _, _ string) error {
	f.sent = append(f.sent, to)
	return f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestUseCase(repo *fakeBookingRepo, room *fakeRoomClient, notifs *fakeNotifications, mail *fakeMailer) *UseCase {
	uc := NewUseCase(
		repo,
		room,
		&fakeUserClient{user: &userservice.User{ID: 7, Email: "guest@example.com"}},
		notifs,
		mail,
		fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = fixedTimeProvider{now: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func availableRoom() *roomservice.Room {
	return &roomservice.Room{
		ID:            3,
		HotelID:       1,
		Name:          "Deluxe 301",
		Type:          "deluxe",
		PricePerNight: 500000,
		Capacity:      2,
		Status:        "available",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	notifs := &fakeNotifications{}
	mail := &fakeMailer{}
	uc := newTestUseCase(repo, &fakeRoomClient{room: availableRoom()}, notifs, mail)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		RoomID:       3,
		CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// 3 ночи по 500000
	assert.Equal(t, int64(1500000), resp.TotalPrice)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "Deluxe 301", resp.RoomName)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)

	// Уведомление и письмо о создании
	assert.Equal(t, []domain.BookingStatus{domain.StatusPending}, notifs.statuses)
	assert.Equal(t, []string{"guest@example.com"}, mail.sent)
}

func TestCreateBooking_NormalizesDates(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeRoomClient{room: availableRoom()}, &fakeNotifications{}, &fakeMailer{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		RoomID:       3,
		CheckInDate:  time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 12, 9, 15, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), resp.CheckInDate)
	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, int64(1000000), resp.TotalPrice)
}

func TestCreateBooking_RoomAlreadyBooked(t *testing.T) {
	repo := &fakeBookingRepo{
		overlapping: []*domain.Booking{{ID: 10, RoomID: 3, Status: domain.StatusConfirmed}},
	}
	notifs := &fakeNotifications{}
	uc := newTestUseCase(repo, &fakeRoomClient{room: availableRoom()}, notifs, &fakeMailer{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		RoomID:       3,
		CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrRoomUnavailable)
	assert.Nil(t, repo.created)
	assert.Empty(t, notifs.statuses)
}

func TestCreateBooking_RoomNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomClient{err: roomservice.ErrRoomNotFound}, &fakeNotifications{}, &fakeMailer{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		RoomID:       99,
		CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCreateBooking_RoomUnderMaintenance(t *testing.T) {
	room := availableRoom()
	room.Status = "maintenance"
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomClient{room: room}, &fakeNotifications{}, &fakeMailer{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		RoomID:       3,
		CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestCreateBooking_InvalidDateRange(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomClient{room: availableRoom()}, &fakeNotifications{}, &fakeMailer{})

	t.Run("Check-out equals check-in", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			UserID:       7,
			RoomID:       3,
			CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("Check-out before check-in", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			UserID:       7,
			RoomID:       3,
			CheckInDate:  time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("Check-in in the past", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			UserID:       7,
			RoomID:       3,
			CheckInDate:  time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, ErrDateInPast)
	})
}

func TestCreateBooking_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomClient{room: availableRoom()}, &fakeNotifications{}, &fakeMailer{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:       0,
		RoomID:       3,
		CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateBooking_NotificationFailureDoesNotFailBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	notifs := &fakeNotifications{err: errors.New("notifications down")}
	mail := &fakeMailer{err: errors.New("smtp down")}
	uc := newTestUseCase(repo, &fakeRoomClient{room: availableRoom()}, notifs, mail)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		RoomID:       3,
		CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}
