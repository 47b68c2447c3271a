package assets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
	assetRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/asset"
)

// Service handles the asset catalog: rooms, vehicles, and countable items.
type Service struct {
	assetRepo AssetRepository
	logger    Logger
}

// NewService creates the asset catalog service.
func NewService(assetRepo AssetRepository, logger Logger) *Service {
	return &Service{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

// Create adds an asset to the catalog. Codes are unique across all kinds.
func (s *Service) Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	s.logger.Info("Create: adding asset code=%s, kind=%s", asset.Code, asset.Kind)

	if err := validateAsset(asset); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.assetRepo.Create(ctx, asset)
	if err != nil {
		if errors.Is(err, assetRepo.ErrCodeTaken) {
			s.logger.Warn("Create: asset code %s already used", asset.Code)
			return nil, ErrCodeTaken
		}
		s.logger.Error("Create: repository error for asset %s: %v", asset.Code, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: added asset %s (id=%d)", created.Code, created.ID)
	return created, nil
}

// GetByCode fetches one asset by its code.
func (s *Service) GetByCode(ctx context.Context, code string) (*domain.Asset, error) {
	asset, err := s.assetRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, assetRepo.ErrAssetNotFound) {
			s.logger.Warn("GetByCode: asset %s not found", code)
			return nil, ErrAssetNotFound
		}
		s.logger.Error("GetByCode: repository error for asset %s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}
	return asset, nil
}

// List returns the whole catalog.
func (s *Service) List(ctx context.Context) ([]*domain.Asset, error) {
	catalog, err := s.assetRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d assets", len(catalog))
	return catalog, nil
}

// Update rewrites an asset addressed by code. Renames flow into future
// bookings only; stored snapshots keep the old name.
func (s *Service) Update(ctx context.Context, code string, asset *domain.Asset) (*domain.Asset, error) {
	s.logger.Info("Update: updating asset %s", code)

	if err := validateAsset(asset); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	existing, err := s.assetRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, assetRepo.ErrAssetNotFound) {
			s.logger.Warn("Update: asset %s not found", code)
			return nil, ErrAssetNotFound
		}
		s.logger.Error("Update: repository error for asset %s: %v", code, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	asset.ID = existing.ID
	if err := s.assetRepo.Update(ctx, asset); err != nil {
		switch {
		case errors.Is(err, assetRepo.ErrAssetNotFound):
			return nil, ErrAssetNotFound
		case errors.Is(err, assetRepo.ErrCodeTaken):
			s.logger.Warn("Update: asset code %s already used", asset.Code)
			return nil, ErrCodeTaken
		}
		s.logger.Error("Update: repository error for asset %s: %v", code, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated asset %s (id=%d)", asset.Code, asset.ID)
	return asset, nil
}

// Delete removes an asset from the catalog. Existing bookings keep their
// snapshotted names and stay untouched.
func (s *Service) Delete(ctx context.Context, code string) error {
	s.logger.Info("Delete: deleting asset %s", code)

	asset, err := s.assetRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, assetRepo.ErrAssetNotFound) {
			s.logger.Warn("Delete: asset %s not found", code)
			return ErrAssetNotFound
		}
		s.logger.Error("Delete: repository error for asset %s: %v", code, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.assetRepo.Delete(ctx, asset.ID); err != nil {
		if errors.Is(err, assetRepo.ErrAssetNotFound) {
			return ErrAssetNotFound
		}
		s.logger.Error("Delete: repository error for asset %s: %v", code, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted asset %s (id=%d)", asset.Code, asset.ID)
	return nil
}

func validateAsset(asset *domain.Asset) error {
	if strings.TrimSpace(asset.Code) == "" {
		return fmt.Errorf("%w: asset code is required", ErrInvalidInput)
	}
	if strings.TrimSpace(asset.Name) == "" {
		return fmt.Errorf("%w: asset name is required", ErrInvalidInput)
	}
	if !domain.ValidAssetKind(asset.Kind) {
		return fmt.Errorf("%w: unknown asset kind %q", ErrInvalidInput, asset.Kind)
	}
	if asset.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", ErrInvalidInput)
	}
	if asset.Kind == domain.AssetKindItem && asset.Capacity < 1 {
		return fmt.Errorf("%w: countable items need a capacity of at least 1", ErrInvalidInput)
	}
	return nil
}
