package payment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/psqlbuilder"
)

var paymentColumns = []string{
	"id",
	"booking_id",
	"amount",
	"payment_method",
	"transaction_id",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с платежами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый платёж
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"booking_id",
			"amount",
			"payment_method",
			"transaction_id",
			"status",
		).
		Values(
			payment.BookingID,
			payment.Amount,
			payment.PaymentMethod,
			payment.TransactionID,
			payment.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&payment.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	payment.CreatedAt = createdAt.Time
	payment.UpdatedAt = updatedAt.Time

	return payment, nil
}

// GetByID получает платёж по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	payment, err := scanPayment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan payment: %v", ErrScanRow, err)
	}

	return payment, nil
}

// GetByBookingID получает платёж бронирования
// На бронирование в норме приходится один платёж; если записей несколько,
// возвращается последняя созданная
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	payment, err := scanPayment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - scan payment: %v", ErrScanRow, err)
	}

	return payment, nil
}

// GetByUserID получает платежи пользователя через связь с бронированиями
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := make([]string, len(paymentColumns))
	for i, col := range paymentColumns {
		columns[i] = "p." + col
	}

	query, args, err := psqlbuilder.Select(columns...).
		From("payments p").
		Join("bookings b ON b.id = p.booking_id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("p.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanPayments(rows)
}

// GetAll получает все платежи (для админки)
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanPayments(rows)
}

// UpdateStatus обновляет статус платежа и возвращает обновлённую запись
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(paymentColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	payment, err := scanPayment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - scan payment: %v", ErrScanRow, err)
	}

	return payment, nil
}

// UpdateForRetry обновляет существующий незавершённый платёж при повторной
// попытке оплаты: новая сумма и новый transaction_id от провайдера
// Запись переиспользуется, чтобы повторные checkout'ы не плодили платежи
func (r *Repository) UpdateForRetry(ctx context.Context, id int64, amount int64, paymentMethod, transactionID string) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payments").
		Set("amount", amount).
		Set("payment_method", paymentMethod).
		Set("transaction_id", transactionID).
		Set("status", domain.PaymentStatusPending).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(paymentColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateForRetry - build update query: %v", ErrBuildQuery, err)
	}

	payment, err := scanPayment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateForRetry - scan payment: %v", ErrScanRow, err)
	}

	return payment, nil
}

// CancelNonTerminalByBookingID переводит в cancelled все платежи бронирования,
// не находящиеся в терминальном статусе (completed, cancelled)
// Возвращает ID отменённых платежей для уведомлений
// Завершённые платежи каскад отмены не трогает
func (r *Repository) CancelNonTerminalByBookingID(ctx context.Context, bookingID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	terminalStatuses := make([]string, len(domain.TerminalPaymentStatuses))
	for i, s := range domain.TerminalPaymentStatuses {
		terminalStatuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Update("payments").
		Set("status", domain.PaymentStatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"booking_id": bookingID}).
		Where(squirrel.NotEq{"status": terminalStatuses}).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CancelNonTerminalByBookingID - build update query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CancelNonTerminalByBookingID - execute update: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cancelledIDs := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: CancelNonTerminalByBookingID - scan id: %v", ErrScanRow, err)
		}
		cancelledIDs = append(cancelledIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CancelNonTerminalByBookingID - rows error: %v", ErrScanRow, err)
	}

	return cancelledIDs, nil
}

// scanPayment сканирует одну строку в платёж
func scanPayment(row *sql.Row) (*domain.Payment, error) {
	var payment domain.Payment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.PaymentMethod,
		&payment.TransactionID,
		&payment.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	payment.CreatedAt = createdAt.Time
	payment.UpdatedAt = updatedAt.Time

	return &payment, nil
}

// scanPayments сканирует результаты запроса в слайс платежей
func scanPayments(rows *sql.Rows) ([]*domain.Payment, error) {
	payments := make([]*domain.Payment, 0)

	for rows.Next() {
		var payment domain.Payment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&payment.ID,
			&payment.BookingID,
			&payment.Amount,
			&payment.PaymentMethod,
			&payment.TransactionID,
			&payment.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanPayments - scan row: %v", ErrScanRow, err)
		}

		payment.CreatedAt = createdAt.Time
		payment.UpdatedAt = updatedAt.Time

		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPayments - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}
