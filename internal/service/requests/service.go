package requests

import (
	"context"
	"errors"
	"fmt"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
	requestRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/request"
)

// Service handles request reads, rejection, and removal. Approval re-runs
// the full conflict pipeline and lives in its own use case.
type Service struct {
	requestRepo RequestRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService creates the request service.
func NewService(requestRepo RequestRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		requestRepo: requestRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID fetches a request by row ID.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	s.logger.Info("GetByID: fetching request id=%d", id)

	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("GetByID: request id=%d not found", id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetByID: repository error for request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return req, nil
}

// GetByCode fetches a request by its public code, case-insensitively.
func (s *Service) GetByCode(ctx context.Context, code string) (*domain.Request, error) {
	s.logger.Info("GetByCode: fetching request %s", code)

	req, err := s.requestRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("GetByCode: request %s not found", code)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetByCode: repository error for request %s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}

	return req, nil
}

// List returns all requests, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.Request, error) {
	reqs, err := s.requestRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d requests", len(reqs))
	return reqs, nil
}

// Reject moves a pending request to its rejected terminal state and returns
// the request as decided. The request row is locked while the decision
// commits, so a concurrent approval and rejection cannot both win.
func (s *Service) Reject(ctx context.Context, code string, reason *string) (*domain.Request, error) {
	s.logger.Info("Reject: rejecting request %s", code)

	var rejected *domain.Request

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		req, err := s.requestRepo.GetByCode(txCtx, code)
		if err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				s.logger.Warn("Reject: request %s not found", code)
				return ErrRequestNotFound
			}
			s.logger.Error("Reject: repository error for request %s: %v", code, err)
			return fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
		}

		if !req.IsPending() {
			s.logger.Warn("Reject: request %s already %s", req.RequestID, req.Status)
			return ErrRequestNotPending
		}

		if err := s.requestRepo.MarkRejected(txCtx, req.ID, reason); err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotPending) {
				return ErrRequestNotPending
			}
			s.logger.Error("Reject: repository error for request %s: %v", code, err)
			return fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
		}

		req.Status = domain.StatusRejected
		req.RejectionReason = reason
		rejected = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Reject: rejected request %s", code)
	return rejected, nil
}

// Delete removes a request regardless of its state. Bookings produced by an
// earlier approval stay; the two are decoupled after the decision.
func (s *Service) Delete(ctx context.Context, code string) error {
	s.logger.Info("Delete: deleting request %s", code)

	req, err := s.requestRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("Delete: request %s not found", code)
			return ErrRequestNotFound
		}
		s.logger.Error("Delete: repository error for request %s: %v", code, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.requestRepo.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			return ErrRequestNotFound
		}
		s.logger.Error("Delete: repository error for request %s: %v", code, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted request %s (id=%d)", req.RequestID, req.ID)
	return nil
}
