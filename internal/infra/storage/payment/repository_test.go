package payment

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func paymentRow(id int64, status string) *sqlmock.Rows {
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{
		"id", "booking_id", "amount", "payment_method", "transaction_id", "status", "created_at", "updated_at",
	}).AddRow(id, int64(9), int64(2000000), "card", "pi_123", status, ts, ts)
}

func TestGetByBookingID(t *testing.T) {
	t.Run("Returns latest payment", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(
			"FROM payments WHERE booking_id = $1 ORDER BY created_at DESC LIMIT 1")).
			WithArgs(int64(9)).
			WillReturnRows(paymentRow(55, "pending"))

		payment, err := repo.GetByBookingID(context.Background(), 9)
		require.NoError(t, err)

		assert.Equal(t, int64(55), payment.ID)
		assert.Equal(t, domain.PaymentStatusPending, payment.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("FROM payments").
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "booking_id", "amount", "payment_method", "transaction_id", "status", "created_at", "updated_at",
			}))

		_, err := repo.GetByBookingID(context.Background(), 404)

		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})
}

func TestUpdateStatus_ReturnsUpdatedPayment(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE payments SET status = $1, updated_at = NOW() WHERE id = $2 "+
			"RETURNING id, booking_id, amount, payment_method, transaction_id, status, created_at, updated_at")).
		WithArgs(domain.PaymentStatusCompleted, int64(55)).
		WillReturnRows(paymentRow(55, "completed"))

	payment, err := repo.UpdateStatus(context.Background(), 55, domain.PaymentStatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateForRetry(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Повторная попытка оплаты переиспользует запись: новый transaction_id, статус снова pending
	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE payments SET amount = $1, payment_method = $2, transaction_id = $3, status = $4, updated_at = NOW() "+
			"WHERE id = $5")).
		WithArgs(int64(2000000), "card", "pi_456", domain.PaymentStatusPending, int64(55)).
		WillReturnRows(paymentRow(55, "pending"))

	payment, err := repo.UpdateForRetry(context.Background(), 55, 2000000, "card", "pi_456")
	require.NoError(t, err)

	assert.Equal(t, int64(55), payment.ID)
	assert.Equal(t, domain.PaymentStatusPending, payment.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelNonTerminalByBookingID(t *testing.T) {
	t.Run("Cancels pending and failed payments", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		// Терминальные статусы (completed, cancelled) под условие не попадают
		mock.ExpectQuery(regexp.QuoteMeta(
			"UPDATE payments SET status = $1, updated_at = NOW() "+
				"WHERE booking_id = $2 AND status NOT IN ($3,$4) RETURNING id")).
			WithArgs(domain.PaymentStatusCancelled, int64(9), "completed", "cancelled").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(55)).AddRow(int64(56)))

		ids, err := repo.CancelNonTerminalByBookingID(context.Background(), 9)
		require.NoError(t, err)

		assert.Equal(t, []int64{55, 56}, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing to cancel", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("UPDATE payments").
			WithArgs(domain.PaymentStatusCancelled, int64(9), "completed", "cancelled").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		ids, err := repo.CancelNonTerminalByBookingID(context.Background(), 9)
		require.NoError(t, err)

		assert.Empty(t, ids)
	})
}
