package driver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
	"github.com/oniit/e-jadwal-public-web/pkg/psqlbuilder"
	"github.com/oniit/e-jadwal-public-web/pkg/txmanager"
)

const uniqueViolation = "23505"

var driverColumns = []string{
	"id",
	"code",
	"name",
	"phone",
	"detail",
	"created_at",
	"updated_at",
}

// Repository persists the driver directory.
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository creates a driver repository.
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a driver. A duplicate code yields ErrCodeTaken.
func (r *Repository) Create(ctx context.Context, d *domain.Driver) (*domain.Driver, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("drivers").
		Columns("code", "name", "phone", "detail").
		Values(d.Code, d.Name, d.Phone, d.Detail).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCodeTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return d, nil
}

// GetByID fetches one driver by row ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(driverColumns...).
		From("drivers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	d, err := scanDriver(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDriverNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan driver: %v", ErrScanRow, err)
	}
	return d, nil
}

// List returns all drivers ordered by code.
func (r *Repository) List(ctx context.Context) ([]*domain.Driver, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(driverColumns...).
		From("drivers").
		OrderBy("code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	drivers := make([]*domain.Driver, 0)
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan driver: %v", ErrScanRow, err)
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return drivers, nil
}

// Update rewrites a driver by ID.
func (r *Repository) Update(ctx context.Context, d *domain.Driver) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("drivers").
		Set("code", d.Code).
		Set("name", d.Name).
		Set("phone", d.Phone).
		Set("detail", d.Detail).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": d.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrCodeTaken
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrDriverNotFound
	}
	return nil
}

// Delete removes a driver by ID.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("drivers").
		Where(squirrel.Eq{"id": id}).
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
		return ErrDriverNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDriver(row rowScanner) (*domain.Driver, error) {
	var d domain.Driver
	err := row.Scan(
		&d.ID,
		&d.Code,
		&d.Name,
		&d.Phone,
		&d.Detail,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}
