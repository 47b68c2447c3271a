package drivers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
	driverRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/driver"
)

// Service handles the driver directory.
type Service struct {
	driverRepo DriverRepository
	logger     Logger
}

// NewService creates the driver directory service.
func NewService(driverRepo DriverRepository, logger Logger) *Service {
	return &Service{
		driverRepo: driverRepo,
		logger:     logger,
	}
}

// Create adds a driver to the directory.
func (s *Service) Create(ctx context.Context, driver *domain.Driver) (*domain.Driver, error) {
	s.logger.Info("Create: adding driver code=%s", driver.Code)

	if err := validateDriver(driver); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.driverRepo.Create(ctx, driver)
	if err != nil {
		if errors.Is(err, driverRepo.ErrCodeTaken) {
			s.logger.Warn("Create: driver code %s already used", driver.Code)
			return nil, ErrCodeTaken
		}
		s.logger.Error("Create: repository error for driver %s: %v", driver.Code, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: added driver %s (id=%d)", created.Code, created.ID)
	return created, nil
}

// GetByID fetches one driver.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, driverRepo.ErrDriverNotFound) {
			s.logger.Warn("GetByID: driver id=%d not found", id)
			return nil, ErrDriverNotFound
		}
		s.logger.Error("GetByID: repository error for driver id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return driver, nil
}

// List returns the whole directory.
func (s *Service) List(ctx context.Context) ([]*domain.Driver, error) {
	directory, err := s.driverRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d drivers", len(directory))
	return directory, nil
}

// Update rewrites a driver. Renames flow into future bookings only; stored
// snapshots keep the old name.
func (s *Service) Update(ctx context.Context, id int64, driver *domain.Driver) (*domain.Driver, error) {
	s.logger.Info("Update: updating driver id=%d", id)

	if err := validateDriver(driver); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	driver.ID = id
	if err := s.driverRepo.Update(ctx, driver); err != nil {
		switch {
		case errors.Is(err, driverRepo.ErrDriverNotFound):
			s.logger.Warn("Update: driver id=%d not found", id)
			return nil, ErrDriverNotFound
		case errors.Is(err, driverRepo.ErrCodeTaken):
			s.logger.Warn("Update: driver code %s already used", driver.Code)
			return nil, ErrCodeTaken
		}
		s.logger.Error("Update: repository error for driver id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated driver %s (id=%d)", driver.Code, driver.ID)
	return driver, nil
}

// Delete removes a driver from the directory. Existing bookings keep their
// snapshotted driver names.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting driver id=%d", id)

	if err := s.driverRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, driverRepo.ErrDriverNotFound) {
			s.logger.Warn("Delete: driver id=%d not found", id)
			return ErrDriverNotFound
		}
		s.logger.Error("Delete: repository error for driver id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted driver id=%d", id)
	return nil
}

func validateDriver(driver *domain.Driver) error {
	if strings.TrimSpace(driver.Code) == "" {
		return fmt.Errorf("%w: driver code is required", ErrInvalidInput)
	}
	if strings.TrimSpace(driver.Name) == "" {
		return fmt.Errorf("%w: driver name is required", ErrInvalidInput)
	}
	return nil
}
