package get_available_rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/roomservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookedIDs []int64
	err       error
}

func (f *fakeBookingRepo) GetBookedRoomIDs(_ context.Context, _, _ time.Time) ([]int64, error) {
	return f.bookedIDs, f.err
}

type fakeRoomClient struct {
	rooms   []*roomservice.Room
	err     error
	hotelID *int64
}

func (f *fakeRoomClient) ListRooms(_ context.Context, hotelID *int64) ([]*roomservice.Room, error) {
	f.hotelID = hotelID
	return f.rooms, f.err
}

func testRooms() []*roomservice.Room {
	return []*roomservice.Room{
		{ID: 1, HotelID: 1, Name: "Standard 101", Type: "standard", PricePerNight: 300000, Capacity: 2, Status: "available"},
		{ID: 2, HotelID: 1, Name: "Standard 102", Type: "standard", PricePerNight: 300000, Capacity: 2, Status: "occupied"},
		{ID: 3, HotelID: 1, Name: "Deluxe 301", Type: "deluxe", PricePerNight: 500000, Capacity: 3, Status: "available"},
		{ID: 4, HotelID: 1, Name: "Deluxe 302", Type: "deluxe", PricePerNight: 500000, Capacity: 3, Status: "maintenance"},
	}
}

func TestGetAvailableRooms_FiltersBookedAndMaintenance(t *testing.T) {
	repo := &fakeBookingRepo{bookedIDs: []int64{3}}
	uc := NewUseCase(repo, &fakeRoomClient{rooms: testRooms()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Номер 3 занят бронированием, номер 4 на обслуживании.
	// Статус occupied не мешает бронировать будущие даты
	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, int64(1), resp.Rooms[0].ID)
	assert.Equal(t, int64(2), resp.Rooms[1].ID)
}

func TestGetAvailableRooms_AllRoomsFree(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeRoomClient{rooms: testRooms()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Len(t, resp.Rooms, 3)
}

func TestGetAvailableRooms_NormalizesDates(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeRoomClient{rooms: testRooms()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CheckInDate:  time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 12, 9, 15, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), resp.CheckInDate)
	assert.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), resp.CheckOutDate)
}

func TestGetAvailableRooms_PassesHotelFilter(t *testing.T) {
	client := &fakeRoomClient{rooms: testRooms()}
	uc := NewUseCase(&fakeBookingRepo{}, client, nopLogger{})

	hotelID := int64(1)
	_, err := uc.Execute(context.Background(), &Request{
		CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		HotelID:      &hotelID,
	})
	require.NoError(t, err)

	require.NotNil(t, client.hotelID)
	assert.Equal(t, int64(1), *client.hotelID)
}

func TestGetAvailableRooms_InvalidDateRange(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeRoomClient{rooms: testRooms()}, nopLogger{})

	t.Run("Check-out equals check-in", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("Same day after normalization", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			CheckInDate:  time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("Missing dates", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetAvailableRooms_HotelNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeRoomClient{err: roomservice.ErrHotelNotFound}, nopLogger{})

	hotelID := int64(404)
	_, err := uc.Execute(context.Background(), &Request{
		CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		HotelID:      &hotelID,
	})

	assert.ErrorIs(t, err, ErrHotelNotFound)
}
