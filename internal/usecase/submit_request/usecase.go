package submit_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
	assetRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/asset"
	driverRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/driver"
	"github.com/oniit/e-jadwal-public-web/internal/scheduling"
)

// UseCase records a pending request. Submission validates and normalizes the
// input but runs no conflict or availability checks; the window is only
// contended when an approver decides on the request.
type UseCase struct {
	requestRepo RequestRepository
	assetRepo   AssetRepository
	driverRepo  DriverRepository
	hours       HoursValidator
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase wires the request-submission use case.
func NewUseCase(
	requestRepo RequestRepository,
	assetRepo AssetRepository,
	driverRepo DriverRepository,
	hours HoursValidator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo: requestRepo,
		assetRepo:   assetRepo,
		driverRepo:  driverRepo,
		hours:       hours,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute validates the submission, snapshots catalog names, and stores the
// request as pending. Overlapping pending requests are allowed; they compete
// at approval time.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitRequest: type=%s, asset=%s, window=%s..%s, user=%s",
		req.Type, req.AssetCode, req.Start.Format("2006-01-02 15:04"), req.End.Format("2006-01-02 15:04"), req.UserName)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitRequest: validation failed: %v", err)
		return nil, err
	}

	window := domain.Window{Start: req.Start, End: req.End}

	asset, err := uc.assetRepo.GetByCode(ctx, req.AssetCode)
	if err != nil {
		if errors.Is(err, assetRepo.ErrAssetNotFound) {
			uc.logger.Warn("SubmitRequest: asset %s not found", req.AssetCode)
			return nil, ErrAssetNotFound
		}
		uc.logger.Error("SubmitRequest: failed to get asset %s: %v", req.AssetCode, err)
		return nil, fmt.Errorf("%w: failed to get asset: %v", ErrInternal, err)
	}
	if asset.Kind != req.Type.AssetKind() {
		uc.logger.Warn("SubmitRequest: asset %s has kind %s, request type %s needs %s",
			asset.Code, asset.Kind, req.Type, req.Type.AssetKind())
		return nil, ErrAssetKindMismatch
	}

	if req.Type == domain.BookingTypeRoom {
		if err := uc.hours.Validate(window); err != nil {
			uc.logger.Warn("SubmitRequest: window outside business hours: %v", err)
			return nil, ErrOutsideBusinessHours
		}
	}

	request := &domain.Request{
		Status:         domain.StatusPending,
		Type:           req.Type,
		Window:         window,
		UserName:       req.UserName,
		AssetCode:      asset.Code,
		AssetName:      asset.Name,
		PersonInCharge: req.PersonInCharge,
		PICPhone:       req.PICPhone,
		Notes:          req.Notes,
		LetterFile:     req.LetterFile,
	}

	switch req.Type {
	case domain.BookingTypeRoom:
		items := scheduling.AggregateItems(itemLines(req.Items))
		if err := uc.snapshotItemNames(ctx, items); err != nil {
			return nil, err
		}
		request.Room = &domain.RoomDetails{
			ActivityName:  req.ActivityName,
			BorrowedItems: items,
		}

	case domain.BookingTypeVehicle:
		vehicle := &domain.VehicleDetails{Destination: req.Destination}
		if req.DriverID != nil {
			driver, err := uc.driverRepo.GetByID(ctx, *req.DriverID)
			if err != nil {
				if errors.Is(err, driverRepo.ErrDriverNotFound) {
					uc.logger.Warn("SubmitRequest: driver id=%d not found", *req.DriverID)
					return nil, ErrDriverNotFound
				}
				uc.logger.Error("SubmitRequest: failed to get driver id=%d: %v", *req.DriverID, err)
				return nil, fmt.Errorf("%w: failed to get driver: %v", ErrInternal, err)
			}
			vehicle.DriverID = &driver.ID
			vehicle.DriverName = &driver.Name
		}
		request.Vehicle = vehicle
	}

	var created *domain.Request

	// The request row and its item lines commit together.
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err = uc.requestRepo.Create(txCtx, request)
		if err != nil {
			uc.logger.Error("SubmitRequest: failed to create request: %v", err)
			return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitRequest: created request %s (id=%d)", created.RequestID, created.ID)
	return FromDomainRequest(created), nil
}

// snapshotItemNames resolves catalog names for the item lines. Unknown codes
// are rejected at submission so an approver never sees a request referencing
// items that do not exist.
func (uc *UseCase) snapshotItemNames(ctx context.Context, items []domain.BorrowedItem) error {
	if len(items) == 0 {
		return nil
	}

	codes := make([]string, 0, len(items))
	for _, it := range items {
		codes = append(codes, it.AssetCode)
	}

	catalog, err := uc.assetRepo.GetCountableByCodes(ctx, codes)
	if err != nil {
		uc.logger.Error("SubmitRequest: failed to look up items: %v", err)
		return fmt.Errorf("%w: failed to look up items: %v", ErrInternal, err)
	}

	for i := range items {
		asset, ok := catalog[items[i].AssetCode]
		if !ok {
			uc.logger.Warn("SubmitRequest: item %s not in catalog", items[i].AssetCode)
			return fmt.Errorf("%w: %s", ErrItemUnavailable, items[i].AssetCode)
		}
		items[i].AssetName = asset.Name
	}
	return nil
}
