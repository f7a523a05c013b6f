package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/pgerr"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"host_id",
	"event_type_id",
	"guest_name",
	"guest_email",
	"guest_notes",
	"guest_timezone",
	"start_time",
	"end_time",
	"status",
	"cancel_reason",
	"cancel_token",
	"reminder_sent",
	"created_at",
	"updated_at",
}

var notificationColumns = []string{
	"b.id",
	"b.status",
	"b.guest_name",
	"b.guest_email",
	"b.guest_timezone",
	"h.name",
	"h.email",
	"e.title",
	"b.start_time",
	"b.end_time",
	"b.cancel_token",
	"b.cancel_reason",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Пересечение с подтвержденным бронированием того же хоста ловится exclusion constraint
// bookings_no_overlap и возвращается как ErrSlotNotAvailable
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"host_id",
			"event_type_id",
			"guest_name",
			"guest_email",
			"guest_notes",
			"guest_timezone",
			"start_time",
			"end_time",
			"status",
			"cancel_token",
		).
		Values(
			booking.HostID,
			booking.EventTypeID,
			booking.GuestName,
			booking.GuestEmail,
			booking.GuestNotes,
			booking.GuestTimezone,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.CancelToken,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		switch {
		case pgerr.IsExclusionViolation(err), pgerr.IsSerializationFailure(err):
			return nil, ErrSlotNotAvailable
		case pgerr.IsUniqueViolation(err):
			return nil, ErrDuplicateToken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByCancelToken получает бронирование по токену отмены гостя
func (r *Repository) GetByCancelToken(ctx context.Context, token string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByCancelToken", squirrel.Eq{"cancel_token": token})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return booking, nil
}

// ListByHost получает бронирования хоста по возрастанию времени начала
// Опционально фильтрует по статусу и по началу не раньше From
func (r *Repository) ListByHost(ctx context.Context, filter domain.HostBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"host_id": filter.HostID}).
		OrderBy("start_time ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_time": *filter.From})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHost - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHost - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListConfirmedStartingBetween получает подтвержденные бронирования хоста с началом в [from, to)
func (r *Repository) ListConfirmedStartingBetween(ctx context.Context, hostID int64, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"host_id": hostID, "status": domain.StatusConfirmed}).
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedStartingBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedStartingBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// HasOverlap проверяет, есть ли у хоста подтвержденное бронирование, пересекающее [start, end)
// excludeID позволяет не учитывать само проверяемое бронирование (0 - не исключать)
// Внутри транзакции найденная строка блокируется (FOR UPDATE)
func (r *Repository) HasOverlap(ctx context.Context, hostID int64, start, end time.Time, excludeID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{"host_id": hostID, "status": domain.StatusConfirmed}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		Limit(1)

	if excludeID > 0 {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": excludeID})
	}
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasOverlap - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		if pgerr.IsSerializationFailure(err) {
			return false, ErrSlotNotAvailable
		}
		return false, fmt.Errorf("%w: HasOverlap - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// UpdateStatus обновляет статус бронирования и причину отмены
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id})

	if status == domain.StatusCancelled {
		updateBuilder = updateBuilder.Set("cancel_reason", reason)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerr.IsExclusionViolation(err) || pgerr.IsSerializationFailure(err) {
			return ErrSlotNotAvailable
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// GetNotification собирает данные письма о бронировании (гость, хост, тип события)
func (r *Repository) GetNotification(ctx context.Context, id int64) (*domain.BookingNotification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := notificationSelect().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetNotification - build select query: %v", ErrBuildQuery, err)
	}

	n, err := scanNotification(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetNotification - scan row: %v", ErrScanRow, err)
	}

	return n, nil
}

// ListDueReminders получает подтвержденные бронирования с началом в [from, to),
// по которым ещё не отправлено напоминание
func (r *Repository) ListDueReminders(ctx context.Context, from, to time.Time) ([]*domain.BookingNotification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := notificationSelect().
		Where(squirrel.Eq{"b.status": domain.StatusConfirmed, "b.reminder_sent": false}).
		Where(squirrel.GtOrEq{"b.start_time": from}).
		Where(squirrel.Lt{"b.start_time": to}).
		OrderBy("b.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDueReminders - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDueReminders - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BookingNotification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDueReminders - scan row: %v", ErrScanRow, err)
		}
		result = append(result, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDueReminders - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// MarkReminderSent отмечает, что напоминание по бронированию отправлено
func (r *Repository) MarkReminderSent(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("reminder_sent", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkReminderSent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkReminderSent - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkReminderSent - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func notificationSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(notificationColumns...).
		From("bookings b").
		Join("hosts h ON h.id = b.host_id").
		Join("event_types e ON e.id = b.event_type_id")
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.HostID,
		&booking.EventTypeID,
		&booking.GuestName,
		&booking.GuestEmail,
		&booking.GuestNotes,
		&booking.GuestTimezone,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.CancelReason,
		&booking.CancelToken,
		&booking.ReminderSent,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func scanNotification(row rowScanner) (*domain.BookingNotification, error) {
	var n domain.BookingNotification

	err := row.Scan(
		&n.BookingID,
		&n.Status,
		&n.GuestName,
		&n.GuestEmail,
		&n.GuestTimezone,
		&n.HostName,
		&n.HostEmail,
		&n.EventTitle,
		&n.StartTime,
		&n.EndTime,
		&n.CancelToken,
		&n.CancelReason,
	)
	if err != nil {
		return nil, err
	}

	if n.HostName == "" {
		n.HostName = domain.DefaultHostDisplayName
	}

	return &n, nil
}
