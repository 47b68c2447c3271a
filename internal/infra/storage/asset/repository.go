package asset

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

var assetColumns = []string{
	"id",
	"code",
	"name",
	"kind",
	"capacity",
	"detail",
	"created_at",
	"updated_at",
}

// Repository persists the asset catalog.
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository creates an asset repository.
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a catalog entry. The unique index on code turns a duplicate
// into ErrCodeTaken.
func (r *Repository) Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("assets").
		Columns("code", "name", "kind", "capacity", "detail").
		Values(asset.Code, asset.Name, asset.Kind, asset.Capacity, asset.Detail).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&asset.ID, &asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCodeTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return asset, nil
}

// GetByCode fetches one catalog entry by its unique code.
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Asset, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(assetColumns...).
		From("assets").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	asset, err := scanAsset(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan asset: %v", ErrScanRow, err)
	}
	return asset, nil
}

// GetCountableByCodes fetches countable-item entries for the given codes,
// keyed by code. Codes without a countable entry are simply absent from the
// result, which the availability calculator treats as unavailable.
func (r *Repository) GetCountableByCodes(ctx context.Context, codes []string) (map[string]*domain.Asset, error) {
	result := make(map[string]*domain.Asset, len(codes))
	if len(codes) == 0 {
		return result, nil
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(assetColumns...).
		From("assets").
		Where(squirrel.Eq{"code": codes, "kind": domain.AssetKindItem}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCountableByCodes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCountableByCodes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetCountableByCodes - scan asset: %v", ErrScanRow, err)
		}
		result[asset.Code] = asset
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCountableByCodes - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// List returns the whole catalog ordered by kind and code.
func (r *Repository) List(ctx context.Context) ([]*domain.Asset, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(assetColumns...).
		From("assets").
		OrderBy("kind ASC", "code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	assets := make([]*domain.Asset, 0)
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan asset: %v", ErrScanRow, err)
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return assets, nil
}

// Update rewrites a catalog entry by ID.
func (r *Repository) Update(ctx context.Context, asset *domain.Asset) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("assets").
		Set("code", asset.Code).
		Set("name", asset.Name).
		Set("kind", asset.Kind).
		Set("capacity", asset.Capacity).
		Set("detail", asset.Detail).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": asset.ID}).
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
		return ErrAssetNotFound
	}
	return nil
}

// Delete removes a catalog entry by ID.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("assets").
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
		return ErrAssetNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAsset(row rowScanner) (*domain.Asset, error) {
	var asset domain.Asset
	err := row.Scan(
		&asset.ID,
		&asset.Code,
		&asset.Name,
		&asset.Kind,
		&asset.Capacity,
		&asset.Detail,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}
