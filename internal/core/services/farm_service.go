package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AgroBov/cattle_ledger_app/internal/apperrors"
	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portsrepo "github.com/AgroBov/cattle_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
	"github.com/AgroBov/cattle_ledger_app/internal/middleware"
)

// farmService manages farm master data.
type farmService struct {
	farmRepo          portsrepo.FarmRepositoryFacade
	reconciliationSvc portssvc.ReconciliationSvcFacade
}

// NewFarmService creates a new FarmService.
func NewFarmService(farmRepo portsrepo.FarmRepositoryFacade, reconciliationSvc portssvc.ReconciliationSvcFacade) portssvc.FarmSvcFacade {
	return &farmService{
		farmRepo:          farmRepo,
		reconciliationSvc: reconciliationSvc,
	}
}

var _ portssvc.FarmSvcFacade = (*farmService)(nil)

// CreateFarm registers a new farm and provisions a zero snapshot row for
// every active category.
func (s *farmService) CreateFarm(ctx context.Context, req dto.CreateFarmRequest, creatorUserID string) (*domain.Farm, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	farm := domain.Farm{
		FarmID:   uuid.NewString(),
		Name:     req.Name,
		Location: req.Location,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.farmRepo.SaveFarm(ctx, farm); err != nil {
		logger.Error("Failed to save farm", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save farm: %w", err)
	}

	if err := s.reconciliationSvc.EnsureBalancesForFarm(ctx, farm.FarmID, creatorUserID); err != nil {
		logger.Error("Failed to provision balances for new farm", slog.String("error", err.Error()), slog.String("farm_id", farm.FarmID))
		return nil, fmt.Errorf("failed to provision balances: %w", err)
	}

	logger.Info("Farm created", slog.String("farm_id", farm.FarmID))
	return &farm, nil
}

// GetFarmByID retrieves a farm by its ID.
func (s *farmService) GetFarmByID(ctx context.Context, farmID string) (*domain.Farm, error) {
	return s.farmRepo.FindFarmByID(ctx, farmID)
}

// ListFarms retrieves farms, optionally including deactivated ones.
func (s *farmService) ListFarms(ctx context.Context, includeInactive bool) ([]domain.Farm, error) {
	return s.farmRepo.ListFarms(ctx, includeInactive)
}

// UpdateFarm applies a partial update to a farm.
func (s *farmService) UpdateFarm(ctx context.Context, farmID string, req dto.UpdateFarmRequest, requestingUserID string) (*domain.Farm, error) {
	farm, err := s.farmRepo.FindFarmByID(ctx, farmID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		farm.Name = *req.Name
	}
	if req.Location != nil {
		farm.Location = *req.Location
	}
	if req.IsActive != nil {
		farm.IsActive = *req.IsActive
	}
	farm.LastUpdatedAt = time.Now().UTC()
	farm.LastUpdatedBy = requestingUserID

	if err := s.farmRepo.UpdateFarm(ctx, *farm); err != nil {
		return nil, fmt.Errorf("failed to update farm: %w", err)
	}
	return farm, nil
}

// DeactivateFarm marks a farm inactive. Its ledger history stays intact.
func (s *farmService) DeactivateFarm(ctx context.Context, farmID string, requestingUserID string) error {
	farm, err := s.farmRepo.FindFarmByID(ctx, farmID)
	if err != nil {
		return err
	}
	if !farm.IsActive {
		return fmt.Errorf("%w: farm %s is already inactive", apperrors.ErrValidation, farmID)
	}

	farm.IsActive = false
	farm.LastUpdatedAt = time.Now().UTC()
	farm.LastUpdatedBy = requestingUserID

	if err := s.farmRepo.UpdateFarm(ctx, *farm); err != nil {
		return fmt.Errorf("failed to deactivate farm: %w", err)
	}
	return nil
}
