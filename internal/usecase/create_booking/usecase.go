package create_booking

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

// UseCase creates a confirmed booking after running the conflict and
// availability checks against the proposed window.
type UseCase struct {
	bookingRepo BookingRepository
	assetRepo   AssetRepository
	driverRepo  DriverRepository
	hours       HoursValidator
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase wires the booking-creation use case.
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

// Execute validates the request, snapshots catalog names, and creates the
// booking inside a serializable transaction so the check and the insert are
// one atomic step.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: type=%s, asset=%s, window=%s..%s, user=%s",
		req.Type, req.AssetCode, req.Start.Format("2006-01-02 15:04"), req.End.Format("2006-01-02 15:04"), req.UserName)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	window := domain.Window{Start: req.Start, End: req.End}

	asset, err := uc.assetRepo.GetByCode(ctx, req.AssetCode)
	if err != nil {
		if errors.Is(err, assetRepo.ErrAssetNotFound) {
			uc.logger.Warn("CreateBooking: asset %s not found", req.AssetCode)
			return nil, ErrAssetNotFound
		}
		uc.logger.Error("CreateBooking: failed to get asset %s: %v", req.AssetCode, err)
		return nil, fmt.Errorf("%w: failed to get asset: %v", ErrInternal, err)
	}
	if asset.Kind != req.Type.AssetKind() {
		uc.logger.Warn("CreateBooking: asset %s has kind %s, booking type %s needs %s",
			asset.Code, asset.Kind, req.Type, req.Type.AssetKind())
		return nil, ErrAssetKindMismatch
	}

	// The daily-hours rule applies to rooms only; vehicles travel outside
	// office hours.
	if req.Type == domain.BookingTypeRoom {
		if err := uc.hours.Validate(window); err != nil {
			uc.logger.Warn("CreateBooking: window outside business hours: %v", err)
			return nil, ErrOutsideBusinessHours
		}
	}

	booking := &domain.Booking{
		BookingID:      req.BookingID,
		Type:           req.Type,
		Window:         window,
		UserName:       req.UserName,
		AssetCode:      asset.Code,
		AssetName:      asset.Name,
		PersonInCharge: req.PersonInCharge,
		PICPhone:       req.PICPhone,
		Notes:          req.Notes,
	}

	var items []domain.BorrowedItem
	var catalog map[string]*domain.Asset

	switch req.Type {
	case domain.BookingTypeRoom:
		items = scheduling.AggregateItems(itemLines(req.Items))
		catalog, err = uc.lookupItems(ctx, items)
		if err != nil {
			return nil, err
		}
		snapshotItemNames(items, catalog)
		booking.Room = &domain.RoomDetails{
			ActivityName:  req.ActivityName,
			BorrowedItems: items,
		}

	case domain.BookingTypeVehicle:
		vehicle := &domain.VehicleDetails{Destination: req.Destination}
		if req.DriverID != nil {
			driver, err := uc.driverRepo.GetByID(ctx, *req.DriverID)
			if err != nil {
				if errors.Is(err, driverRepo.ErrDriverNotFound) {
					uc.logger.Warn("CreateBooking: driver id=%d not found", *req.DriverID)
					return nil, ErrDriverNotFound
				}
				uc.logger.Error("CreateBooking: failed to get driver id=%d: %v", *req.DriverID, err)
				return nil, fmt.Errorf("%w: failed to get driver: %v", ErrInternal, err)
			}
			vehicle.DriverID = &driver.ID
			vehicle.DriverName = &driver.Name
		}
		booking.Vehicle = vehicle
	}

	var created *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		confirmed, err := uc.bookingRepo.GetOverlapping(txCtx, window)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}

		proposal := scheduling.Proposal{
			Window:    window,
			Type:      req.Type,
			AssetCode: asset.Code,
			DriverID:  booking.DriverID(),
		}
		if err := scheduling.FindConflict(proposal, confirmed); err != nil {
			return conflictError(err)
		}

		if len(items) > 0 {
			if err := scheduling.CheckItemAvailability(window, items, confirmed, catalog, ""); err != nil {
				return availabilityError(err)
			}
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return createError(err)
		}
		return nil
	})
	if err != nil {
		if !isExpectedFailure(err) {
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking %s (id=%d)", created.BookingID, created.ID)
	return FromDomainBooking(created), nil
}

// lookupItems resolves the countable-catalog entries for all requested item
// codes. Codes absent from the catalog are rejected here with the same error
// the availability check would produce, so the caller sees one taxonomy.
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
		uc.logger.Error("CreateBooking: failed to look up items: %v", err)
		return nil, fmt.Errorf("%w: failed to look up items: %v", ErrInternal, err)
	}

	for _, code := range codes {
		if _, ok := catalog[code]; !ok {
			uc.logger.Warn("CreateBooking: item %s not in catalog", code)
			return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, code)
		}
	}
	return catalog, nil
}

// snapshotItemNames copies catalog names onto the item lines before they are
// stored, so later catalog renames do not change booking history.
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

// createError maps the database-level overlap constraints to the same
// conflict errors the in-transaction check produces. A lost race surfaces as
// a conflict, never as a silent double booking.
func createError(err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrAssetWindowTaken):
		return fmt.Errorf("%w: %v", ErrAssetConflict, err)
	case errors.Is(err, bookingRepo.ErrDriverWindowTaken):
		return fmt.Errorf("%w: %v", ErrDriverConflict, err)
	case errors.Is(err, bookingRepo.ErrCodeTaken):
		return ErrCodeTaken
	}
	return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
}

func isExpectedFailure(err error) bool {
	return errors.Is(err, ErrAssetConflict) ||
		errors.Is(err, ErrDriverConflict) ||
		errors.Is(err, ErrItemUnavailable) ||
		errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, ErrCodeTaken)
}
