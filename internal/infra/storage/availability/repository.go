package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

var availabilityColumns = []string{
	"id",
	"host_id",
	"day_of_week",
	"start_minute",
	"end_minute",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с недельными окнами доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает окно доступности
func (r *Repository) Create(ctx context.Context, a *domain.Availability) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability").
		Columns("host_id", "day_of_week", "start_minute", "end_minute", "is_active").
		Values(a.HostID, a.DayOfWeek, a.StartMinute, a.EndMinute, a.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// ListByHost получает все окна хоста, упорядоченные по дню недели и началу
func (r *Repository) ListByHost(ctx context.Context, hostID int64) ([]*domain.Availability, error) {
	return r.list(ctx, "ListByHost", squirrel.Eq{"host_id": hostID})
}

// ListActiveByHost получает только активные окна хоста
func (r *Repository) ListActiveByHost(ctx context.Context, hostID int64) ([]*domain.Availability, error) {
	return r.list(ctx, "ListActiveByHost", squirrel.Eq{"host_id": hostID, "is_active": true})
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From("availability").
		Where(where).
		OrderBy("day_of_week ASC", "start_minute ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	windows := make([]*domain.Availability, 0)

	for rows.Next() {
		a, err := scanAvailability(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		windows = append(windows, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return windows, nil
}

// DeleteByHost удаляет все окна хоста
func (r *Repository) DeleteByHost(ctx context.Context, hostID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability").
		Where(squirrel.Eq{"host_id": hostID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByHost - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByHost - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет окно хоста
func (r *Repository) Delete(ctx context.Context, hostID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability").
		Where(squirrel.Eq{"id": id, "host_id": hostID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAvailabilityNotFound
	}

	return nil
}

func scanAvailability(row rowScanner) (*domain.Availability, error) {
	var a domain.Availability
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&a.ID,
		&a.HostID,
		&a.DayOfWeek,
		&a.StartMinute,
		&a.EndMinute,
		&a.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}
