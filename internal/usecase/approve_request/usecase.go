package approve_request

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
	assetRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/asset"
	bookingRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/booking"
	driverRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/driver"
	requestRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/request"
	"github.com/oniit/e-jadwal-public-web/internal/scheduling"
)

// UseCase approves a pending request: it re-runs the conflict and
// availability checks against the current schedule, materializes a booking
// from the request, and moves the request to its terminal state. All of it
// happens in one serializable transaction, so a failed check leaves the
// request pending and the schedule untouched.
type UseCase struct {
	requestRepo  RequestRepository
	bookingRepo  BookingRepository
	assetRepo    AssetRepository
	driverRepo   DriverRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase wires the request-approval use case.
func NewUseCase(
	requestRepo RequestRepository,
	bookingRepo BookingRepository,
	assetRepo AssetRepository,
	driverRepo DriverRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo:  requestRepo,
		bookingRepo:  bookingRepo,
		assetRepo:    assetRepo,
		driverRepo:   driverRepo,
		txManager:    txManager,
		timeProvider: RealTimeProvider{},
		logger:       logger,
	}
}

// Execute decides the request identified by req.RequestID. Approval happens
// at most once: the request row is locked for the duration of the decision
// and the status guard rejects a second transition.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApproveRequest: code=%s, approver=%s", req.RequestID, req.ApprovedBy)

	if strings.TrimSpace(req.RequestID) == "" {
		return nil, fmt.Errorf("%w: request code is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ApprovedBy) == "" {
		return nil, fmt.Errorf("%w: approver is required", ErrInvalidInput)
	}

	approvedAt := uc.timeProvider.Now()

	var response *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		pending, err := uc.requestRepo.GetByCode(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				uc.logger.Warn("ApproveRequest: request %s not found", req.RequestID)
				return ErrRequestNotFound
			}
			uc.logger.Error("ApproveRequest: failed to get request %s: %v", req.RequestID, err)
			return fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}

		if !pending.IsPending() {
			uc.logger.Warn("ApproveRequest: request %s already %s", pending.RequestID, pending.Status)
			return ErrRequestNotPending
		}

		booking, catalog, err := uc.materialize(txCtx, pending, req.DriverID)
		if err != nil {
			return err
		}

		confirmed, err := uc.bookingRepo.GetOverlapping(txCtx, pending.Window)
		if err != nil {
			uc.logger.Error("ApproveRequest: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}

		proposal := scheduling.Proposal{
			Window:    pending.Window,
			Type:      pending.Type,
			AssetCode: booking.AssetCode,
			DriverID:  booking.DriverID(),
		}
		if err := scheduling.FindConflict(proposal, confirmed); err != nil {
			return conflictError(err)
		}

		if items := booking.Items(); len(items) > 0 {
			if err := scheduling.CheckItemAvailability(pending.Window, items, confirmed, catalog, ""); err != nil {
				return availabilityError(err)
			}
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return createError(err)
		}

		if err := uc.requestRepo.MarkApproved(txCtx, pending.ID, req.ApprovedBy, approvedAt, created.BookingID); err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotPending) {
				return ErrRequestNotPending
			}
			uc.logger.Error("ApproveRequest: failed to mark request %s approved: %v", pending.RequestID, err)
			return fmt.Errorf("%w: failed to mark request approved: %v", ErrInternal, err)
		}

		response = &Response{
			RequestID:  pending.RequestID,
			Status:     domain.StatusApproved,
			ApprovedBy: req.ApprovedBy,
			ApprovedAt: approvedAt,
			Booking:    fromDomainBooking(created),
		}
		return nil
	})
	if err != nil {
		if !isExpectedFailure(err) {
			uc.logger.Error("ApproveRequest: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("ApproveRequest: request %s approved, booking %s created",
		response.RequestID, response.Booking.BookingID)
	return response, nil
}

// materialize builds the booking the approval will commit, re-snapshotting
// catalog and directory names so the booking reflects the state at decision
// time, not at submission time.
func (uc *UseCase) materialize(ctx context.Context, pending *domain.Request, driverOverride *int64) (*domain.Booking, map[string]*domain.Asset, error) {
	asset, err := uc.assetRepo.GetByCode(ctx, pending.AssetCode)
	if err != nil {
		if errors.Is(err, assetRepo.ErrAssetNotFound) {
			uc.logger.Warn("ApproveRequest: asset %s left the catalog", pending.AssetCode)
			return nil, nil, ErrAssetNotFound
		}
		uc.logger.Error("ApproveRequest: failed to get asset %s: %v", pending.AssetCode, err)
		return nil, nil, fmt.Errorf("%w: failed to get asset: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		Type:           pending.Type,
		Window:         pending.Window,
		UserName:       pending.UserName,
		AssetCode:      asset.Code,
		AssetName:      asset.Name,
		PersonInCharge: pending.PersonInCharge,
		PICPhone:       pending.PICPhone,
		Notes:          pending.Notes,
	}

	var catalog map[string]*domain.Asset

	switch pending.Type {
	case domain.BookingTypeRoom:
		items := make([]domain.BorrowedItem, len(pending.Items()))
		copy(items, pending.Items())

		catalog, err = uc.lookupItems(ctx, items)
		if err != nil {
			return nil, nil, err
		}
		for i := range items {
			if a, ok := catalog[items[i].AssetCode]; ok {
				items[i].AssetName = a.Name
			}
		}

		activityName := ""
		if pending.Room != nil {
			activityName = pending.Room.ActivityName
		}
		booking.Room = &domain.RoomDetails{ActivityName: activityName, BorrowedItems: items}

	case domain.BookingTypeVehicle:
		destination := ""
		if pending.Vehicle != nil {
			destination = pending.Vehicle.Destination
		}
		vehicle := &domain.VehicleDetails{Destination: destination}

		driverID := pending.DriverID()
		if driverOverride != nil {
			driverID = driverOverride
		}
		if driverID != nil {
			driver, err := uc.driverRepo.GetByID(ctx, *driverID)
			if err != nil {
				if errors.Is(err, driverRepo.ErrDriverNotFound) {
					uc.logger.Warn("ApproveRequest: driver id=%d not found", *driverID)
					return nil, nil, ErrDriverNotFound
				}
				uc.logger.Error("ApproveRequest: failed to get driver id=%d: %v", *driverID, err)
				return nil, nil, fmt.Errorf("%w: failed to get driver: %v", ErrInternal, err)
			}
			vehicle.DriverID = &driver.ID
			vehicle.DriverName = &driver.Name
		}
		booking.Vehicle = vehicle
	}

	return booking, catalog, nil
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
		uc.logger.Error("ApproveRequest: failed to look up items: %v", err)
		return nil, fmt.Errorf("%w: failed to look up items: %v", ErrInternal, err)
	}

	for _, code := range codes {
		if _, ok := catalog[code]; !ok {
			uc.logger.Warn("ApproveRequest: item %s left the catalog", code)
			return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, code)
		}
	}
	return catalog, nil
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

func createError(err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrAssetWindowTaken):
		return fmt.Errorf("%w: %v", ErrAssetConflict, err)
	case errors.Is(err, bookingRepo.ErrDriverWindowTaken):
		return fmt.Errorf("%w: %v", ErrDriverConflict, err)
	}
	return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
}

func isExpectedFailure(err error) bool {
	return errors.Is(err, ErrRequestNotFound) ||
		errors.Is(err, ErrRequestNotPending) ||
		errors.Is(err, ErrAssetNotFound) ||
		errors.Is(err, ErrDriverNotFound) ||
		errors.Is(err, ErrAssetConflict) ||
		errors.Is(err, ErrDriverConflict) ||
		errors.Is(err, ErrItemUnavailable) ||
		errors.Is(err, ErrInsufficientStock)
}
