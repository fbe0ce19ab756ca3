package booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func bookingRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "room_id", "check_in_date", "check_out_date",
		"total_price", "status", "created_at", "updated_at",
	})
	for _, id := range ids {
		rows.AddRow(
			id, int64(7), int64(3),
			time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			int64(1000000), "pending",
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		)
	}
	return rows
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO bookings (user_id,room_id,check_in_date,check_out_date,total_price,status) "+
			"VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, created_at, updated_at")).
		WithArgs(int64(7), int64(3), sqlmock.AnyArg(), sqlmock.AnyArg(), int64(1000000), domain.StatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(42), createdAt, createdAt))

	booking, err := repo.Create(context.Background(), &domain.Booking{
		UserID:       7,
		RoomID:       3,
		CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		TotalPrice:   1000000,
		Status:       domain.StatusPending,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), booking.ID)
	assert.Equal(t, createdAt, booking.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, user_id, room_id, check_in_date, check_out_date, total_price, status, created_at, updated_at "+
			"FROM bookings WHERE id = $1")).
		WithArgs(int64(404)).
		WillReturnRows(bookingRows())

	_, err := repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOverlapping(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	t.Run("Without transaction", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		// Полуоткрытые интервалы: границы сравниваются строго, отменённые исключаются
		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT id, user_id, room_id, check_in_date, check_out_date, total_price, status, created_at, updated_at "+
				"FROM bookings WHERE room_id = $1 AND check_in_date < $2 AND check_out_date > $3 AND status <> $4 "+
				"ORDER BY check_in_date ASC")).
			WithArgs(int64(3), checkOut, checkIn, domain.StatusCancelled).
			WillReturnRows(bookingRows(10))

		found, err := repo.FindOverlapping(context.Background(), 3, checkIn, checkOut)
		require.NoError(t, err)

		require.Len(t, found, 1)
		assert.Equal(t, int64(10), found[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Inside transaction locks rows", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("FOR UPDATE$").
			WithArgs(int64(3), checkOut, checkIn, domain.StatusCancelled).
			WillReturnRows(bookingRows())
		mock.ExpectCommit()

		tx, err := db.BeginTx(context.Background(), nil)
		require.NoError(t, err)

		ctx := dbmetrics.WithExecutor(context.Background(), tx)
		found, err := repo.FindOverlapping(ctx, 3, checkIn, checkOut)
		require.NoError(t, err)

		assert.Empty(t, found)
		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetBookedRoomIDs(t *testing.T) {
	repo, mock := newMockRepo(t)

	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT DISTINCT room_id FROM bookings "+
			"WHERE check_in_date < $1 AND check_out_date > $2 AND status <> $3 ORDER BY room_id ASC")).
		WithArgs(checkOut, checkIn, domain.StatusCancelled).
		WillReturnRows(sqlmock.NewRows([]string{"room_id"}).AddRow(int64(3)).AddRow(int64(5)))

	ids, err := repo.GetBookedRoomIDs(context.Background(), checkIn, checkOut)
	require.NoError(t, err)

	assert.Equal(t, []int64{3, 5}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUserID_StatusFilter(t *testing.T) {
	repo, mock := newMockRepo(t)

	status := domain.StatusPending
	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM bookings WHERE user_id = $1 AND status = $2")).
		WithArgs(int64(7), status).
		WillReturnRows(bookingRows(1, 2))

	list, err := repo.GetByUserID(context.Background(), 7, &status)
	require.NoError(t, err)

	assert.Len(t, list, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	t.Run("Updates existing booking", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(regexp.QuoteMeta(
			"UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2")).
			WithArgs(domain.StatusCancelled, int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), 9, domain.StatusCancelled)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Zero rows means not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE bookings").
			WithArgs(domain.StatusCancelled, int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), 404, domain.StatusCancelled)

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestUpdateStatusActive(t *testing.T) {
	t.Run("Skips cancelled bookings", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		// Отмененное бронирование не попадает под условие - 0 строк
		mock.ExpectExec(regexp.QuoteMeta(
			"UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2 AND status <> $3")).
			WithArgs(domain.StatusConfirmed, int64(9), domain.StatusCancelled).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatusActive(context.Background(), 9, domain.StatusConfirmed)

		assert.ErrorIs(t, err, ErrBookingNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Confirms active booking", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE bookings").
			WithArgs(domain.StatusConfirmed, int64(9), domain.StatusCancelled).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatusActive(context.Background(), 9, domain.StatusConfirmed)

		assert.NoError(t, err)
	})
}

func TestCreate_ExecError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &domain.Booking{
		UserID:       7,
		RoomID:       3,
		CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		TotalPrice:   1000000,
		Status:       domain.StatusPending,
	})

	assert.ErrorIs(t, err, ErrExecQuery)
}
