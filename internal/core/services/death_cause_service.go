package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portsrepo "github.com/AgroBov/cattle_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
)

// deathCauseService manages death cause master data.
type deathCauseService struct {
	deathCauseRepo portsrepo.DeathCauseRepositoryFacade
}

// NewDeathCauseService creates a new DeathCauseService.
func NewDeathCauseService(deathCauseRepo portsrepo.DeathCauseRepositoryFacade) portssvc.DeathCauseSvcFacade {
	return &deathCauseService{deathCauseRepo: deathCauseRepo}
}

var _ portssvc.DeathCauseSvcFacade = (*deathCauseService)(nil)

// CreateDeathCause registers a new death cause.
func (s *deathCauseService) CreateDeathCause(ctx context.Context, req dto.CreateDeathCauseRequest, creatorUserID string) (*domain.DeathCause, error) {
	cause := domain.DeathCause{
		DeathCauseID: uuid.NewString(),
		Name:         req.Name,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.deathCauseRepo.SaveDeathCause(ctx, cause); err != nil {
		return nil, fmt.Errorf("failed to save death cause: %w", err)
	}
	return &cause, nil
}

// GetDeathCauseByID retrieves a death cause by its ID.
func (s *deathCauseService) GetDeathCauseByID(ctx context.Context, deathCauseID string) (*domain.DeathCause, error) {
	return s.deathCauseRepo.FindDeathCauseByID(ctx, deathCauseID)
}

// ListDeathCauses retrieves death causes, optionally including deactivated ones.
func (s *deathCauseService) ListDeathCauses(ctx context.Context, includeInactive bool) ([]domain.DeathCause, error) {
	return s.deathCauseRepo.ListDeathCauses(ctx, includeInactive)
}
