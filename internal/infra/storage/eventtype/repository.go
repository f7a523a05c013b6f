package eventtype

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/pgerr"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

var eventTypeColumns = []string{
	"id",
	"host_id",
	"title",
	"slug",
	"description",
	"duration_minutes",
	"color",
	"is_active",
	"requires_confirmation",
	"before_buffer_minutes",
	"after_buffer_minutes",
	"minimum_notice_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с типами событий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый тип события
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, et *domain.EventType) (*domain.EventType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("event_types").
		Columns(
			"host_id",
			"title",
			"slug",
			"description",
			"duration_minutes",
			"color",
			"is_active",
			"requires_confirmation",
			"before_buffer_minutes",
			"after_buffer_minutes",
			"minimum_notice_minutes",
		).
		Values(
			et.HostID,
			et.Title,
			et.Slug,
			et.Description,
			et.DurationMinutes,
			et.Color,
			et.IsActive,
			et.RequiresConfirmation,
			et.BeforeBufferMinutes,
			et.AfterBufferMinutes,
			et.MinimumNoticeMinutes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&et.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	et.CreatedAt = createdAt.Time
	et.UpdatedAt = updatedAt.Time

	return et, nil
}

// GetByID получает тип события по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.EventType, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetActiveBySlug получает активный тип события хоста по slug
func (r *Repository) GetActiveBySlug(ctx context.Context, hostID int64, slug string) (*domain.EventType, error) {
	return r.getOne(ctx, "GetActiveBySlug", squirrel.Eq{"host_id": hostID, "slug": slug, "is_active": true})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.EventType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(eventTypeColumns...).
		From("event_types").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	et, err := scanEventType(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan event type: %v", ErrScanRow, op, err)
	}

	return et, nil
}

// ListByHost получает все типы событий хоста (активные и нет), по дате создания
func (r *Repository) ListByHost(ctx context.Context, hostID int64) ([]*domain.EventType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(eventTypeColumns...).
		From("event_types").
		Where(squirrel.Eq{"host_id": hostID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByHost - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHost - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	eventTypes := make([]*domain.EventType, 0)

	for rows.Next() {
		et, err := scanEventType(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByHost - scan row: %v", ErrScanRow, err)
		}
		eventTypes = append(eventTypes, et)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByHost - rows error: %v", ErrScanRow, err)
	}

	return eventTypes, nil
}

// SlugExists проверяет, занят ли slug у хоста
// excludeID позволяет не учитывать сам обновляемый тип события (0 - не исключать)
func (r *Repository) SlugExists(ctx context.Context, hostID int64, slug string, excludeID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("event_types").
		Where(squirrel.Eq{"host_id": hostID, "slug": slug}).
		Limit(1)

	if excludeID > 0 {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: SlugExists - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: SlugExists - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// Update обновляет тип события хоста
func (r *Repository) Update(ctx context.Context, et *domain.EventType) (*domain.EventType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("event_types").
		Set("title", et.Title).
		Set("slug", et.Slug).
		Set("description", et.Description).
		Set("duration_minutes", et.DurationMinutes).
		Set("color", et.Color).
		Set("is_active", et.IsActive).
		Set("requires_confirmation", et.RequiresConfirmation).
		Set("before_buffer_minutes", et.BeforeBufferMinutes).
		Set("after_buffer_minutes", et.AfterBufferMinutes).
		Set("minimum_notice_minutes", et.MinimumNoticeMinutes).
		Where(squirrel.Eq{"id": et.ID, "host_id": et.HostID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventTypeNotFound
	}
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	et.CreatedAt = createdAt.Time
	et.UpdatedAt = updatedAt.Time

	return et, nil
}

// Delete удаляет тип события хоста
func (r *Repository) Delete(ctx context.Context, hostID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("event_types").
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
		return ErrEventTypeNotFound
	}

	return nil
}

func scanEventType(row rowScanner) (*domain.EventType, error) {
	var et domain.EventType
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&et.ID,
		&et.HostID,
		&et.Title,
		&et.Slug,
		&et.Description,
		&et.DurationMinutes,
		&et.Color,
		&et.IsActive,
		&et.RequiresConfirmation,
		&et.BeforeBufferMinutes,
		&et.AfterBufferMinutes,
		&et.MinimumNoticeMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	et.CreatedAt = createdAt.Time
	et.UpdatedAt = updatedAt.Time

	return &et, nil
}
