package request

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
	"github.com/oniit/e-jadwal-public-web/pkg/psqlbuilder"
	"github.com/oniit/e-jadwal-public-web/pkg/shortid"
	"github.com/oniit/e-jadwal-public-web/pkg/txmanager"
)

const uniqueViolation = "23505"

var requestColumns = []string{
	"id",
	"request_id",
	"status",
	"booking_id",
	"booking_type",
	"start_at",
	"end_at",
	"user_name",
	"asset_code",
	"asset_name",
	"person_in_charge",
	"pic_phone",
	"notes",
	"activity_name",
	"destination",
	"driver_id",
	"driver_name",
	"letter_file",
	"rejection_reason",
	"approved_by",
	"approved_at",
	"created_at",
	"updated_at",
}

// Repository persists requests and their borrowed-item lines.
type Repository struct {
	db txmanager.DBExecutor

	idMaxAttempts int
}

// NewRepository creates a request repository. idMaxAttempts must be at least 1.
func NewRepository(db txmanager.DBExecutor, idMaxAttempts int) *Repository {
	if idMaxAttempts < 1 {
		idMaxAttempts = 1
	}
	return &Repository{db: db, idMaxAttempts: idMaxAttempts}
}

// Create inserts a pending request with its item lines.
//
// A request code is generated only when the entity does not already carry one,
// so re-saving keeps the code stable. Generated codes that collide with the
// unique index are regenerated a bounded number of times. A failed INSERT
// aborts the surrounding transaction, so when codes are generated each attempt
// runs under a savepoint; rolling back to it clears the aborted state before
// the next attempt.
func (r *Repository) Create(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	generated := req.RequestID == ""

	attempts := 1
	if generated {
		attempts = r.idMaxAttempts
	}

	useSavepoint := generated && txmanager.IsInTransaction(ctx)

	var lastErr error
	for i := 0; i < attempts; i++ {
		if generated {
			req.RequestID = shortid.RequestID()
		}

		if useSavepoint {
			if _, err := executor.ExecContext(ctx, "SAVEPOINT create_request"); err != nil {
				return nil, fmt.Errorf("%w: Create - set savepoint: %v", ErrExecQuery, err)
			}
		}

		err := r.insertRequest(ctx, executor, req)
		if err == nil {
			if err := r.insertItems(ctx, executor, req.ID, req.Items()); err != nil {
				return nil, err
			}
			return req, nil
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			if generated {
				if useSavepoint {
					if _, rbErr := executor.ExecContext(ctx, "ROLLBACK TO SAVEPOINT create_request"); rbErr != nil {
						return nil, fmt.Errorf("%w: Create - rollback to savepoint: %v", ErrExecQuery, rbErr)
					}
				}
				lastErr = err
				continue
			}
			return nil, ErrCodeTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil, fmt.Errorf("%w: after %d attempts: %v", ErrIDExhausted, attempts, lastErr)
}

func (r *Repository) insertRequest(ctx context.Context, executor txmanager.DBExecutor, req *domain.Request) error {
	activityName, destination, driverID, driverName := variantColumns(req)

	query, args, err := psqlbuilder.Insert("requests").
		Columns(
			"request_id",
			"status",
			"booking_type",
			"start_at",
			"end_at",
			"user_name",
			"asset_code",
			"asset_name",
			"person_in_charge",
			"pic_phone",
			"notes",
			"activity_name",
			"destination",
			"driver_id",
			"driver_name",
			"letter_file",
		).
		Values(
			req.RequestID,
			domain.StatusPending,
			req.Type,
			req.Window.Start,
			req.Window.End,
			req.UserName,
			req.AssetCode,
			req.AssetName,
			req.PersonInCharge,
			req.PICPhone,
			req.Notes,
			activityName,
			destination,
			driverID,
			driverName,
			req.LetterFile,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertRequest - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).
		Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt); err != nil {
		return err
	}
	req.Status = domain.StatusPending
	return nil
}

func variantColumns(req *domain.Request) (activityName, destination *string, driverID *int64, driverName *string) {
	if req.Room != nil && req.Room.ActivityName != "" {
		activityName = &req.Room.ActivityName
	}
	if req.Vehicle != nil {
		if req.Vehicle.Destination != "" {
			destination = &req.Vehicle.Destination
		}
		driverID = req.Vehicle.DriverID
		driverName = req.Vehicle.DriverName
	}
	return activityName, destination, driverID, driverName
}

func (r *Repository) insertItems(ctx context.Context, executor txmanager.DBExecutor, requestID int64, items []domain.BorrowedItem) error {
	if len(items) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("request_items").
		Columns("request_id", "asset_code", "asset_name", "quantity")
	for _, it := range items {
		builder = builder.Values(requestID, it.AssetCode, it.AssetName, it.Quantity)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertItems - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertItems - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// GetByID fetches one request by row ID, item lines included. Inside a
// managed transaction the row is locked with FOR UPDATE, so the approval
// state machine sees no concurrent decision.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByCode fetches one request by its public code, case-insensitively.
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Request, error) {
	return r.getOne(ctx, squirrel.Expr("UPPER(request_id) = UPPER(?)", code))
}

func (r *Repository) getOne(ctx context.Context, pred interface{}) (*domain.Request, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(requestColumns...).
		From("requests").
		Where(pred)

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	req, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan request: %v", ErrScanRow, err)
	}

	if err := r.loadItems(ctx, executor, []*domain.Request{req}); err != nil {
		return nil, err
	}
	return req, nil
}

// List returns all requests, newest first.
func (r *Repository) List(ctx context.Context) ([]*domain.Request, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requestColumns...).
		From("requests").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	requests, err := scanRequests(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, executor, requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// MarkApproved transitions a pending request to approved, recording the
// approver and the code of the booking created for it. The status guard in
// the WHERE clause makes a second decision against the same request fail
// with ErrRequestNotPending.
func (r *Repository) MarkApproved(ctx context.Context, id int64, approvedBy string, approvedAt time.Time, bookingID string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("requests").
		Set("status", domain.StatusApproved).
		Set("booking_id", bookingID).
		Set("approved_by", approvedBy).
		Set("approved_at", approvedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkApproved - build update query: %v", ErrBuildQuery, err)
	}

	return r.execTransition(ctx, executor, "MarkApproved", query, args)
}

// MarkRejected transitions a pending request to rejected with an optional
// reason. The same status guard applies as in MarkApproved.
func (r *Repository) MarkRejected(ctx context.Context, id int64, reason *string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("requests").
		Set("status", domain.StatusRejected).
		Set("rejection_reason", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkRejected - build update query: %v", ErrBuildQuery, err)
	}

	return r.execTransition(ctx, executor, "MarkRejected", query, args)
}

func (r *Repository) execTransition(ctx context.Context, executor txmanager.DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrRequestNotPending
	}
	return nil
}

// Delete removes a request; its item lines go with it via the FK cascade.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("requests").
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
		return ErrRequestNotFound
	}
	return nil
}

func (r *Repository) loadItems(ctx context.Context, executor txmanager.DBExecutor, requests []*domain.Request) error {
	ids := make([]int64, 0, len(requests))
	byID := make(map[int64]*domain.Request, len(requests))
	for _, req := range requests {
		if req.Room == nil {
			continue
		}
		ids = append(ids, req.ID)
		byID[req.ID] = req
	}
	if len(ids) == 0 {
		return nil
	}

	query, args, err := psqlbuilder.Select("request_id", "asset_code", "asset_name", "quantity").
		From("request_items").
		Where(squirrel.Eq{"request_id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			requestID int64
			item      domain.BorrowedItem
		)
		if err := rows.Scan(&requestID, &item.AssetCode, &item.AssetName, &item.Quantity); err != nil {
			return fmt.Errorf("%w: loadItems - scan item: %v", ErrScanRow, err)
		}
		if req, ok := byID[requestID]; ok {
			req.Room.BorrowedItems = append(req.Room.BorrowedItems, item)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadItems - rows error: %v", ErrScanRow, err)
	}
	return nil
}
