package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
	assetRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/asset"
	bookingRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/booking"
	driverRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/driver"
	"github.com/oniit/e-jadwal-public-web/internal/scheduling"
)

// UseCase rewrites an existing booking, re-running the conflict and
// availability checks with the booking excluded from its own checks.
type UseCase struct {
	bookingRepo BookingRepository
	assetRepo   AssetRepository
	driverRepo  DriverRepository
	hours       HoursValidator
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase wires the booking-update use case.
func NewUseCase(
	bookingRepo BookingRepository,
	assetRepo AssetRepository,
	driverRepo DriverRepository,
	hours HoursValidator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		assetRepo:   assetRepo,
		driverRepo:  driverRepo,
		hours:       hours,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute replaces the allocation fields of the booking addressed by
// req.BookingID. The moved booking does not conflict with itself: its old
// window is excluded from both checks, so shrinking or shifting a window
// always passes against its own prior state.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: code=%s, type=%s, asset=%s, window=%s..%s",
		req.BookingID, req.Type, req.AssetCode, req.Start.Format("2006-01-02 15:04"), req.End.Format("2006-01-02 15:04"))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	window := domain.Window{Start: req.Start, End: req.End}

	asset, err := uc.assetRepo.GetByCode(ctx, req.AssetCode)
	if err != nil {
		if errors.Is(err, assetRepo.ErrAssetNotFound) {
			uc.logger.Warn("UpdateBooking: asset %s not found", req.AssetCode)
			return nil, ErrAssetNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get asset %s: %v", req.AssetCode, err)
		return nil, fmt.Errorf("%w: failed to get asset: %v", ErrInternal, err)
	}
	if asset.Kind != req.Type.AssetKind() {
		uc.logger.Warn("UpdateBooking: asset %s has kind %s, booking type %s needs %s",
			asset.Code, asset.Kind, req.Type, req.Type.AssetKind())
		return nil, ErrAssetKindMismatch
	}

	if req.Type == domain.BookingTypeRoom {
		if err := uc.hours.Validate(window); err != nil {
			uc.logger.Warn("UpdateBooking: window outside business hours: %v", err)
			return nil, ErrOutsideBusinessHours
		}
	}

	var items []domain.BorrowedItem
	var catalog map[string]*domain.Asset
	var room *domain.RoomDetails
	var vehicle *domain.VehicleDetails

	switch req.Type {
	case domain.BookingTypeRoom:
		items = scheduling.AggregateItems(itemLines(req.Items))
		catalog, err = uc.lookupItems(ctx, items)
		if err != nil {
			return nil, err
		}
		snapshotItemNames(items, catalog)
		room = &domain.RoomDetails{ActivityName: req.ActivityName, BorrowedItems: items}

	case domain.BookingTypeVehicle:
		vehicle = &domain.VehicleDetails{Destination: req.Destination}
		if req.DriverID != nil {
			driver, err := uc.driverRepo.GetByID(ctx, *req.DriverID)
			if err != nil {
				if errors.Is(err, driverRepo.ErrDriverNotFound) {
					uc.logger.Warn("UpdateBooking: driver id=%d not found", *req.DriverID)
					return nil, ErrDriverNotFound
				}
				uc.logger.Error("UpdateBooking: failed to get driver id=%d: %v", *req.DriverID, err)
				return nil, fmt.Errorf("%w: failed to get driver: %v", ErrInternal, err)
			}
			vehicle.DriverID = &driver.ID
			vehicle.DriverName = &driver.Name
		}
	}

	var updated *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetByCode(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking %s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking %s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		confirmed, err := uc.bookingRepo.GetOverlapping(txCtx, window)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}

		var driverID *int64
		if vehicle != nil {
			driverID = vehicle.DriverID
		}
		proposal := scheduling.Proposal{
			Window:           window,
			Type:             req.Type,
			AssetCode:        asset.Code,
			DriverID:         driverID,
			ExcludeBookingID: existing.BookingID,
		}
		if err := scheduling.FindConflict(proposal, confirmed); err != nil {
			return conflictError(err)
		}

		if len(items) > 0 {
			if err := scheduling.CheckItemAvailability(window, items, confirmed, catalog, existing.BookingID); err != nil {
				return availabilityError(err)
			}
		}

		existing.Type = req.Type
		existing.Window = window
		existing.UserName = req.UserName
		existing.AssetCode = asset.Code
		existing.AssetName = asset.Name
		existing.PersonInCharge = req.PersonInCharge
		existing.PICPhone = req.PICPhone
		existing.Notes = req.Notes
		existing.Room = room
		existing.Vehicle = vehicle

		if err := uc.bookingRepo.Update(txCtx, existing); err != nil {
			return updateError(err)
		}

		updated = existing
		return nil
	})
	if err != nil {
		if !isExpectedFailure(err) {
			uc.logger.Error("UpdateBooking: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("UpdateBooking: updated booking %s (id=%d)", updated.BookingID, updated.ID)
	return FromDomainBooking(updated), nil
}

func (uc *UseCase) lookupItems(ctx context.Context, items []domain.BorrowedItem) (map[string]*domain.Asset, error) {
	if len(items) == 0 {
		return nil, nil
	}

	codes := make([]string, 0, len(items))
	for _, it := range items {
		codes = append(codes, it.AssetCode)
	}

	catalog, err := uc.assetRepo.GetCountableByCodes(ctx, codes)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to look up items: %v", err)
		return nil, fmt.Errorf("%w: failed to look up items: %v", ErrInternal, err)
	}

	for _, code := range codes {
		if _, ok := catalog[code]; !ok {
			uc.logger.Warn("UpdateBooking: item %s not in catalog", code)
			return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, code)
		}
	}
	return catalog, nil
}

func snapshotItemNames(items []domain.BorrowedItem, catalog map[string]*domain.Asset) {
	for i := range items {
		if asset, ok := catalog[items[i].AssetCode]; ok {
			items[i].AssetName = asset.Name
		}
	}
}

func conflictError(err error) error {
	var driverErr *scheduling.DriverConflictError
	if errors.As(err, &driverErr) {
		return fmt.Errorf("%w: %v", ErrDriverConflict, err)
	}
	return fmt.Errorf("%w: %v", ErrAssetConflict, err)
}

func availabilityError(err error) error {
	var stockErr *scheduling.StockError
	if errors.As(err, &stockErr) {
		return fmt.Errorf("%w: %v", ErrInsufficientStock, err)
	}
	return fmt.Errorf("%w: %v", ErrItemUnavailable, err)
}

func updateError(err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrAssetWindowTaken):
		return fmt.Errorf("%w: %v", ErrAssetConflict, err)
	case errors.Is(err, bookingRepo.ErrDriverWindowTaken):
		return fmt.Errorf("%w: %v", ErrDriverConflict, err)
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		return ErrBookingNotFound
	}
	return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
}

func isExpectedFailure(err error) bool {
	return errors.Is(err, ErrBookingNotFound) ||
		errors.Is(err, ErrAssetConflict) ||
		errors.Is(err, ErrDriverConflict) ||
		errors.Is(err, ErrItemUnavailable) ||
		errors.Is(err, ErrInsufficientStock)
}
