package host

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

const (
	constraintEmail    = "hosts_email_key"
	constraintUsername = "hosts_username_key"
)

var hostColumns = []string{
	"id",
	"name",
	"email",
	"username",
	"password_hash",
	"image",
	"timezone",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с хостами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория хостов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового хоста
func (r *Repository) Create(ctx context.Context, host *domain.Host) (*domain.Host, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("hosts").
		Columns("name", "email", "username", "password_hash", "image", "timezone").
		Values(host.Name, host.Email, host.Username, host.PasswordHash, host.Image, host.Timezone).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&host.ID, &createdAt, &updatedAt)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			switch pgerr.Constraint(err) {
			case constraintUsername:
				return nil, ErrUsernameTaken
			default:
				return nil, ErrEmailTaken
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	host.CreatedAt = createdAt.Time
	host.UpdatedAt = updatedAt.Time

	return host, nil
}

// GetByID получает хоста по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Host, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByEmail получает хоста по email (без учета регистра)
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Host, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Expr("LOWER(email) = LOWER(?)", email))
}

// GetByUsername получает хоста по публичному username
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.Host, error) {
	return r.getOne(ctx, "GetByUsername", squirrel.Eq{"username": username})
}

// UsernameExists проверяет, занят ли username
func (r *Repository) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	if errors.Is(err, ErrHostNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Host, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hostColumns...).
		From("hosts").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	host, err := scanHost(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan host: %v", ErrScanRow, op, err)
	}

	return host, nil
}

func scanHost(row rowScanner) (*domain.Host, error) {
	var host domain.Host
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&host.ID,
		&host.Name,
		&host.Email,
		&host.Username,
		&host.PasswordHash,
		&host.Image,
		&host.Timezone,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	host.CreatedAt = createdAt.Time
	host.UpdatedAt = updatedAt.Time

	return &host, nil
}
