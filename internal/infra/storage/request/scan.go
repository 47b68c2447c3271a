package request

import (
	"database/sql"
	"fmt"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*domain.Request, error) {
	var (
		req          domain.Request
		activityName sql.NullString
		destination  sql.NullString
		driverID     sql.NullInt64
		driverName   sql.NullString
	)

	err := row.Scan(
		&req.ID,
		&req.RequestID,
		&req.Status,
		&req.BookingID,
		&req.Type,
		&req.Window.Start,
		&req.Window.End,
		&req.UserName,
		&req.AssetCode,
		&req.AssetName,
		&req.PersonInCharge,
		&req.PICPhone,
		&req.Notes,
		&activityName,
		&destination,
		&driverID,
		&driverName,
		&req.LetterFile,
		&req.RejectionReason,
		&req.ApprovedBy,
		&req.ApprovedAt,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	switch req.Type {
	case domain.BookingTypeVehicle:
		v := &domain.VehicleDetails{Destination: destination.String}
		if driverID.Valid {
			v.DriverID = &driverID.Int64
		}
		if driverName.Valid {
			v.DriverName = &driverName.String
		}
		req.Vehicle = v
	default:
		req.Room = &domain.RoomDetails{ActivityName: activityName.String}
	}

	return &req, nil
}

func scanRequests(rows *sql.Rows) ([]*domain.Request, error) {
	requests := make([]*domain.Request, 0)

	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRequests - scan row: %v", ErrScanRow, err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRequests - rows error: %v", ErrScanRow, err)
	}

	return requests, nil
}
