package booking

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

const (
	uniqueViolation    = "23505"
	exclusionViolation = "23P01"

	assetWindowConstraint  = "bookings_asset_window_excl"
	driverWindowConstraint = "bookings_driver_window_excl"
)

var bookingColumns = []string{
	"id",
	"booking_id",
	"booking_type",
	"start_at",
	"end_at",
	"submitted_at",
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
	"created_at",
	"updated_at",
}

// Repository persists confirmed bookings and their borrowed-item lines.
type Repository struct {
	db txmanager.DBExecutor

	// idMaxAttempts bounds code regeneration when the unique index reports
	// a collision.
	idMaxAttempts int
}

// NewRepository creates a booking repository. idMaxAttempts must be at least 1.
func NewRepository(db txmanager.DBExecutor, idMaxAttempts int) *Repository {
	if idMaxAttempts < 1 {
		idMaxAttempts = 1
	}
	return &Repository{db: db, idMaxAttempts: idMaxAttempts}
}

// Create inserts a confirmed booking with its item lines.
//
// A booking code is generated only when the entity does not already carry
// one, so re-saving keeps the code stable. Generated codes that collide with
// the unique index are regenerated a bounded number of times; after that the
// creation fails with ErrIDExhausted and the caller may retry.
//
// Callers run Create inside a transaction, so the booking row and its item
// lines commit together. A failed INSERT aborts the surrounding transaction,
// so when codes are generated each attempt runs under a savepoint; rolling
// back to it clears the aborted state before the next attempt.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	generated := b.BookingID == ""

	attempts := 1
	if generated {
		attempts = r.idMaxAttempts
	}

	useSavepoint := generated && txmanager.IsInTransaction(ctx)

	var lastErr error
	for i := 0; i < attempts; i++ {
		if generated {
			b.BookingID = shortid.BookingID(time.Now())
		}

		if useSavepoint {
			if _, err := executor.ExecContext(ctx, "SAVEPOINT create_booking"); err != nil {
				return nil, fmt.Errorf("%w: Create - set savepoint: %v", ErrExecQuery, err)
			}
		}

		err := r.insertBooking(ctx, executor, b)
		if err == nil {
			if err := r.insertItems(ctx, executor, b.ID, b.Items()); err != nil {
				return nil, err
			}
			return b, nil
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch string(pqErr.Code) {
			case uniqueViolation:
				if generated {
					if useSavepoint {
						if _, rbErr := executor.ExecContext(ctx, "ROLLBACK TO SAVEPOINT create_booking"); rbErr != nil {
							return nil, fmt.Errorf("%w: Create - rollback to savepoint: %v", ErrExecQuery, rbErr)
						}
					}
					lastErr = err
					continue
				}
				return nil, ErrCodeTaken
			case exclusionViolation:
				return nil, overlapError(pqErr)
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil, fmt.Errorf("%w: after %d attempts: %v", ErrIDExhausted, attempts, lastErr)
}

func (r *Repository) insertBooking(ctx context.Context, executor txmanager.DBExecutor, b *domain.Booking) error {
	var (
		activityName *string
		destination  *string
		driverID     *int64
		driverName   *string
	)
	if b.Room != nil && b.Room.ActivityName != "" {
		activityName = &b.Room.ActivityName
	}
	if b.Vehicle != nil {
		if b.Vehicle.Destination != "" {
			destination = &b.Vehicle.Destination
		}
		driverID = b.Vehicle.DriverID
		driverName = b.Vehicle.DriverName
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
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
		).
		Values(
			b.BookingID,
			b.Type,
			b.Window.Start,
			b.Window.End,
			b.UserName,
			b.AssetCode,
			b.AssetName,
			b.PersonInCharge,
			b.PICPhone,
			b.Notes,
			activityName,
			destination,
			driverID,
			driverName,
		).
		Suffix("RETURNING id, submitted_at, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertBooking - build insert query: %v", ErrBuildQuery, err)
	}

	return executor.QueryRowContext(ctx, query, args...).
		Scan(&b.ID, &b.SubmittedAt, &b.CreatedAt, &b.UpdatedAt)
}

func (r *Repository) insertItems(ctx context.Context, executor txmanager.DBExecutor, bookingID int64, items []domain.BorrowedItem) error {
	if len(items) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("booking_items").
		Columns("booking_id", "asset_code", "asset_name", "quantity")
	for _, it := range items {
		builder = builder.Values(bookingID, it.AssetCode, it.AssetName, it.Quantity)
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

// GetByID fetches one booking by row ID, item lines included.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByCode fetches one booking by its public code, case-insensitively.
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Expr("UPPER(booking_id) = UPPER(?)", code))
}

func (r *Repository) getOne(ctx context.Context, pred interface{}) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan booking: %v", ErrScanRow, err)
	}

	if err := r.loadItems(ctx, executor, []*domain.Booking{b}); err != nil {
		return nil, err
	}
	return b, nil
}

// GetOverlapping returns all confirmed bookings whose window overlaps w,
// item lines included. Windows are half-open, so bookings that merely touch
// an endpoint of w are not returned.
//
// Inside a managed transaction the rows are locked with FOR UPDATE; the
// conflict and availability checks that follow then race no concurrent
// writer.
func (r *Repository) GetOverlapping(ctx context.Context, w domain.Window) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Lt{"start_at": w.End}).
		Where(squirrel.Gt{"end_at": w.Start}).
		OrderBy("start_at ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, executor, bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// List returns all bookings ordered by window start, newest first.
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("start_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, executor, bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Update rewrites a booking's allocation fields and replaces its item lines.
// The booking code is never changed. Callers run Update inside a transaction.
func (r *Repository) Update(ctx context.Context, b *domain.Booking) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	var (
		activityName *string
		destination  *string
		driverID     *int64
		driverName   *string
	)
	if b.Room != nil && b.Room.ActivityName != "" {
		activityName = &b.Room.ActivityName
	}
	if b.Vehicle != nil {
		if b.Vehicle.Destination != "" {
			destination = &b.Vehicle.Destination
		}
		driverID = b.Vehicle.DriverID
		driverName = b.Vehicle.DriverName
	}

	query, args, err := psqlbuilder.Update("bookings").
		Set("booking_type", b.Type).
		Set("start_at", b.Window.Start).
		Set("end_at", b.Window.End).
		Set("user_name", b.UserName).
		Set("asset_code", b.AssetCode).
		Set("asset_name", b.AssetName).
		Set("person_in_charge", b.PersonInCharge).
		Set("pic_phone", b.PICPhone).
		Set("notes", b.Notes).
		Set("activity_name", activityName).
		Set("destination", destination).
		Set("driver_id", driverID).
		Set("driver_name", driverName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == exclusionViolation {
			return overlapError(pqErr)
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	if err := r.deleteItems(ctx, executor, b.ID); err != nil {
		return err
	}
	return r.insertItems(ctx, executor, b.ID, b.Items())
}

// Delete removes a booking; its item lines go with it via the FK cascade.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
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
		return ErrBookingNotFound
	}
	return nil
}

func (r *Repository) deleteItems(ctx context.Context, executor txmanager.DBExecutor, bookingID int64) error {
	query, args, err := psqlbuilder.Delete("booking_items").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: deleteItems - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: deleteItems - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// loadItems attaches booking_items rows to the room payloads of the given
// bookings.
func (r *Repository) loadItems(ctx context.Context, executor txmanager.DBExecutor, bookings []*domain.Booking) error {
	ids := make([]int64, 0, len(bookings))
	byID := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		if b.Room == nil {
			continue
		}
		ids = append(ids, b.ID)
		byID[b.ID] = b
	}
	if len(ids) == 0 {
		return nil
	}

	query, args, err := psqlbuilder.Select("booking_id", "asset_code", "asset_name", "quantity").
		From("booking_items").
		Where(squirrel.Eq{"booking_id": ids}).
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
			bookingID int64
			item      domain.BorrowedItem
		)
		if err := rows.Scan(&bookingID, &item.AssetCode, &item.AssetName, &item.Quantity); err != nil {
			return fmt.Errorf("%w: loadItems - scan item: %v", ErrScanRow, err)
		}
		if b, ok := byID[bookingID]; ok {
			b.Room.BorrowedItems = append(b.Room.BorrowedItems, item)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadItems - rows error: %v", ErrScanRow, err)
	}
	return nil
}

func overlapError(pqErr *pq.Error) error {
	if pqErr.Constraint == driverWindowConstraint {
		return ErrDriverWindowTaken
	}
	return ErrAssetWindowTaken
}
