package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AgroBov/cattle_ledger_app/internal/apperrors"
	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portsrepo "github.com/AgroBov/cattle_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
	"github.com/AgroBov/cattle_ledger_app/internal/middleware"
)

// concurrencyRetryBudget bounds how many times a write is replayed after
// losing a version race. Each attempt re-reads the balance and re-validates,
// so a retried operation can still fail on insufficient stock.
const concurrencyRetryBudget = 3

var (
	ErrFutureMovement    = errors.New("movement date cannot be in the future")
	ErrCompositeViaEntry = errors.New("composite operations must use the transfer, reclassify or weaning endpoints")
	ErrClientNotAllowed  = errors.New("client reference is only valid for sale and donation movements")
	ErrCauseNotAllowed   = errors.New("death cause reference is only valid for death movements")
)

// movementService provides the single-leg ledger write and read operations.
type movementService struct {
	movementRepo   portsrepo.MovementRepositoryFacade
	balanceRepo    portsrepo.BalanceRepositoryFacade
	farmRepo       portsrepo.FarmRepositoryFacade
	categoryRepo   portsrepo.CategoryRepositoryFacade
	clientRepo     portsrepo.ClientRepositoryFacade
	deathCauseRepo portsrepo.DeathCauseRepositoryFacade
}

// NewMovementService creates a new MovementService.
func NewMovementService(
	movementRepo portsrepo.MovementRepositoryFacade,
	balanceRepo portsrepo.BalanceRepositoryFacade,
	farmRepo portsrepo.FarmRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
	deathCauseRepo portsrepo.DeathCauseRepositoryFacade,
) portssvc.MovementSvcFacade {
	return &movementService{
		movementRepo:   movementRepo,
		balanceRepo:    balanceRepo,
		farmRepo:       farmRepo,
		categoryRepo:   categoryRepo,
		clientRepo:     clientRepo,
		deathCauseRepo: deathCauseRepo,
	}
}

var _ portssvc.MovementSvcFacade = (*movementService)(nil)

// RecordEntry validates and commits an entry movement.
func (s *movementService) RecordEntry(ctx context.Context, req dto.RecordMovementRequest, creatorUserID string) (*domain.Movement, *domain.StockBalance, error) {
	return s.record(ctx, req, domain.Entry, creatorUserID)
}

// RecordExit validates and commits an exit movement.
func (s *movementService) RecordExit(ctx context.Context, req dto.RecordMovementRequest, creatorUserID string) (*domain.Movement, *domain.StockBalance, error) {
	return s.record(ctx, req, domain.Exit, creatorUserID)
}

func (s *movementService) record(ctx context.Context, req dto.RecordMovementRequest, wantDirection domain.MovementDirection, creatorUserID string) (*domain.Movement, *domain.StockBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	operation := domain.OperationType(req.Operation)
	direction, err := operation.Direction()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if direction != wantDirection {
		return nil, nil, fmt.Errorf("%w: operation %s is an %s operation", apperrors.ErrValidation, operation, strings.ToLower(string(direction)))
	}
	if operation.IsComposite() {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrCompositeViaEntry.Error())
	}

	now := time.Now().UTC()
	occurredAt, err := resolveOccurredAt(req.OccurredAt)
	if err != nil {
		return nil, nil, err
	}

	if err := s.validateReferences(ctx, req, operation); err != nil {
		return nil, nil, err
	}

	movement := domain.Movement{
		MovementID:   uuid.NewString(),
		FarmID:       req.FarmID,
		CategoryID:   req.CategoryID,
		Direction:    direction,
		Operation:    operation,
		Quantity:     req.Quantity,
		OccurredAt:   occurredAt,
		ClientID:     req.ClientID,
		DeathCauseID: req.DeathCauseID,
		Metadata:     req.Metadata.ToDomainMetadata(),
		CreatedAt:    now,
		CreatedBy:    creatorUserID,
	}

	for attempt := 0; attempt < concurrencyRetryBudget; attempt++ {
		balance, err := s.currentBalance(ctx, req.FarmID, req.CategoryID, creatorUserID)
		if err != nil {
			return nil, nil, err
		}

		newQuantity := balance.CurrentQuantity + movement.SignedQuantity()
		if newQuantity < 0 {
			return nil, nil, fmt.Errorf("%w: have %d, need %d", apperrors.ErrInsufficientStock, balance.CurrentQuantity, movement.Quantity)
		}

		err = s.movementRepo.SaveMovement(ctx, movement, domain.BalanceUpdate{
			BalanceID:       balance.BalanceID,
			NewQuantity:     newQuantity,
			ExpectedVersion: balance.Version,
		})
		if errors.Is(err, apperrors.ErrConcurrencyConflict) {
			logger.Warn("Balance version conflict, retrying movement",
				slog.String("farm_id", req.FarmID),
				slog.String("category_id", req.CategoryID),
				slog.Int("attempt", attempt+1),
			)
			continue
		}
		if err != nil {
			logger.Error("Failed to save movement", slog.String("error", err.Error()), slog.String("movement_id", movement.MovementID))
			return nil, nil, fmt.Errorf("failed to save movement: %w", err)
		}

		committed := *balance
		committed.CurrentQuantity = newQuantity
		committed.Version = balance.Version + 1
		committed.UpdatedAt = now
		return &movement, &committed, nil
	}

	logger.Error("Movement retry budget exhausted",
		slog.String("farm_id", req.FarmID),
		slog.String("category_id", req.CategoryID),
	)
	return nil, nil, fmt.Errorf("%w: retry budget exhausted", apperrors.ErrConcurrencyConflict)
}

// currentBalance fetches the snapshot row, provisioning the zero row on first
// use of a (farm, category) pair.
func (s *movementService) currentBalance(ctx context.Context, farmID, categoryID string, creatorUserID string) (*domain.StockBalance, error) {
	balance, err := s.balanceRepo.FindBalance(ctx, farmID, categoryID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return s.balanceRepo.EnsureBalance(ctx, farmID, categoryID, creatorUserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balance: %w", err)
	}
	return balance, nil
}

// validateReferences checks the farm, category and the operation-specific
// references against master data.
func (s *movementService) validateReferences(ctx context.Context, req dto.RecordMovementRequest, operation domain.OperationType) error {
	farm, err := s.farmRepo.FindFarmByID(ctx, req.FarmID)
	if err != nil {
		return fmt.Errorf("farm %s: %w", req.FarmID, err)
	}
	if !farm.IsActive {
		return fmt.Errorf("%w: farm %s is inactive", apperrors.ErrValidation, req.FarmID)
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return fmt.Errorf("category %s: %w", req.CategoryID, err)
	}
	if !category.IsActive {
		return fmt.Errorf("%w: category %s is inactive", apperrors.ErrValidation, req.CategoryID)
	}

	if operation.RequiresClient() {
		if req.ClientID == nil {
			return fmt.Errorf("%w: operation %s requires a client", apperrors.ErrValidation, operation)
		}
		client, err := s.clientRepo.FindClientByID(ctx, *req.ClientID)
		if err != nil {
			return fmt.Errorf("client %s: %w", *req.ClientID, err)
		}
		if !client.IsActive {
			return fmt.Errorf("%w: client %s is inactive", apperrors.ErrValidation, *req.ClientID)
		}
	} else if req.ClientID != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrClientNotAllowed.Error())
	}

	if operation.RequiresDeathCause() {
		if req.DeathCauseID == nil {
			return fmt.Errorf("%w: operation %s requires a death cause", apperrors.ErrValidation, operation)
		}
		if _, err := s.deathCauseRepo.FindDeathCauseByID(ctx, *req.DeathCauseID); err != nil {
			return fmt.Errorf("death cause %s: %w", *req.DeathCauseID, err)
		}
	} else if req.DeathCauseID != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrCauseNotAllowed.Error())
	}

	return nil
}

// GetMovementByID retrieves a single ledger entry.
func (s *movementService) GetMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	movement, err := s.movementRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// GetMovementsByCorrelationID retrieves every leg of a composite operation.
func (s *movementService) GetMovementsByCorrelationID(ctx context.Context, correlationID string) ([]domain.Movement, error) {
	movements, err := s.movementRepo.FindMovementsByCorrelationID(ctx, correlationID)
	if err != nil {
		return nil, err
	}
	if len(movements) == 0 {
		return nil, fmt.Errorf("correlation %s: %w", correlationID, apperrors.ErrNotFound)
	}
	return movements, nil
}

// ListMovements retrieves a filtered, paginated slice of ledger history.
func (s *movementService) ListMovements(ctx context.Context, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	filter := domain.MovementFilter{
		FarmID:     params.FarmID,
		CategoryID: params.CategoryID,
		Start:      params.Start,
		End:        params.End,
	}
	if params.Operation != nil {
		operation := domain.OperationType(*params.Operation)
		if _, err := operation.Direction(); err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		filter.Operation = &operation
	}

	movements, nextToken, err := s.movementRepo.ListMovements(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list movements from repository", "error", err)
		return nil, fmt.Errorf("failed to retrieve movements: %w", err)
	}

	return &dto.ListMovementsResponse{
		Movements: dto.ToMovementResponses(movements),
		NextToken: nextToken,
	}, nil
}
