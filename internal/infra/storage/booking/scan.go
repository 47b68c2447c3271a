package booking

import (
	"database/sql"
	"fmt"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b            domain.Booking
		activityName sql.NullString
		destination  sql.NullString
		driverID     sql.NullInt64
		driverName   sql.NullString
	)

	err := row.Scan(
		&b.ID,
		&b.BookingID,
		&b.Type,
		&b.Window.Start,
		&b.Window.End,
		&b.SubmittedAt,
		&b.UserName,
		&b.AssetCode,
		&b.AssetName,
		&b.PersonInCharge,
		&b.PICPhone,
		&b.Notes,
		&activityName,
		&destination,
		&driverID,
		&driverName,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	switch b.Type {
	case domain.BookingTypeVehicle:
		v := &domain.VehicleDetails{Destination: destination.String}
		if driverID.Valid {
			v.DriverID = &driverID.Int64
		}
		if driverName.Valid {
			v.DriverName = &driverName.String
		}
		b.Vehicle = v
	default:
		b.Room = &domain.RoomDetails{ActivityName: activityName.String}
	}

	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
