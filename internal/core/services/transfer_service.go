package services

import (
	"context"
	"errors"
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

var (
	ErrSameFarm        = errors.New("source and destination farm must differ")
	ErrSameCategory    = errors.New("source and destination category must differ")
	ErrEmptyWeaning    = errors.New("weaning requires at least one positive quantity")
	ErrNotWeaningGroup = errors.New("category is not a weaning source")
)

// transferService provides the composite paired-leg operations. Both legs of
// a pair and both balance updates commit in a single database transaction.
type transferService struct {
	movementRepo portsrepo.MovementRepositoryFacade
	balanceRepo  portsrepo.BalanceRepositoryFacade
	farmRepo     portsrepo.FarmRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewTransferService creates a new TransferService.
func NewTransferService(
	movementRepo portsrepo.MovementRepositoryFacade,
	balanceRepo portsrepo.BalanceRepositoryFacade,
	farmRepo portsrepo.FarmRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
) portssvc.TransferSvcFacade {
	return &transferService{
		movementRepo: movementRepo,
		balanceRepo:  balanceRepo,
		farmRepo:     farmRepo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// pairSpec describes one composite operation before it is committed: the exit
// leg (farm, category) side and the entry leg side share quantity, instant
// and metadata.
type pairSpec struct {
	exitFarmID      string
	exitCategoryID  string
	entryFarmID     string
	entryCategoryID string
	exitOp          domain.OperationType
	entryOp         domain.OperationType
	quantity        int64
	occurredAt      time.Time
	metadata        domain.MovementMetadata
}

// Transfer moves animals of one category between two farms.
func (s *transferService) Transfer(ctx context.Context, req dto.TransferRequest, creatorUserID string) (*domain.TransferResult, error) {
	if req.SourceFarmID == req.DestFarmID {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrSameFarm.Error())
	}
	if err := s.validateFarm(ctx, req.SourceFarmID); err != nil {
		return nil, err
	}
	if err := s.validateFarm(ctx, req.DestFarmID); err != nil {
		return nil, err
	}
	if err := s.validateCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	occurredAt, err := resolveOccurredAt(req.OccurredAt)
	if err != nil {
		return nil, err
	}

	return s.commitPair(ctx, pairSpec{
		exitFarmID:      req.SourceFarmID,
		exitCategoryID:  req.CategoryID,
		entryFarmID:     req.DestFarmID,
		entryCategoryID: req.CategoryID,
		exitOp:          domain.OpTransferOut,
		entryOp:         domain.OpTransferIn,
		quantity:        req.Quantity,
		occurredAt:      occurredAt,
		metadata:        req.Metadata.ToDomainMetadata(),
	}, creatorUserID)
}

// Reclassify moves animals between two categories within one farm.
func (s *transferService) Reclassify(ctx context.Context, req dto.ReclassifyRequest, creatorUserID string) (*domain.TransferResult, error) {
	if req.SourceCategoryID == req.DestCategoryID {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrSameCategory.Error())
	}
	if err := s.validateFarm(ctx, req.FarmID); err != nil {
		return nil, err
	}
	if err := s.validateCategory(ctx, req.SourceCategoryID); err != nil {
		return nil, err
	}
	if err := s.validateCategory(ctx, req.DestCategoryID); err != nil {
		return nil, err
	}

	occurredAt, err := resolveOccurredAt(req.OccurredAt)
	if err != nil {
		return nil, err
	}

	return s.commitPair(ctx, pairSpec{
		exitFarmID:      req.FarmID,
		exitCategoryID:  req.SourceCategoryID,
		entryFarmID:     req.FarmID,
		entryCategoryID: req.DestCategoryID,
		exitOp:          domain.OpReclassifyOut,
		entryOp:         domain.OpReclassifyIn,
		quantity:        req.Quantity,
		occurredAt:      occurredAt,
		metadata:        req.Metadata.ToDomainMetadata(),
	}, creatorUserID)
}

// Wean applies the fixed weaning rules within one farm: male calves become
// steers, female calves become heifers. Each nonzero group commits as its own
// atomic pair.
func (s *transferService) Wean(ctx context.Context, req dto.WeaningRequest, creatorUserID string) ([]domain.MovementPair, error) {
	if req.Males <= 0 && req.Females <= 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrEmptyWeaning.Error())
	}
	if err := s.validateFarm(ctx, req.FarmID); err != nil {
		return nil, err
	}

	occurredAt, err := resolveOccurredAt(req.OccurredAt)
	if err != nil {
		return nil, err
	}

	groups := []struct {
		sourceSlug string
		quantity   int64
	}{
		{domain.SlugCalfMale, req.Males},
		{domain.SlugCalfFemale, req.Females},
	}

	var pairs []domain.MovementPair
	for _, group := range groups {
		if group.quantity <= 0 {
			continue
		}
		destSlug, ok := domain.WeaningRules[group.sourceSlug]
		if !ok {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInternal, ErrNotWeaningGroup.Error())
		}

		source, err := s.categoryRepo.FindCategoryBySlug(ctx, group.sourceSlug)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", group.sourceSlug, err)
		}
		dest, err := s.categoryRepo.FindCategoryBySlug(ctx, destSlug)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", destSlug, err)
		}

		result, err := s.commitPair(ctx, pairSpec{
			exitFarmID:      req.FarmID,
			exitCategoryID:  source.CategoryID,
			entryFarmID:     req.FarmID,
			entryCategoryID: dest.CategoryID,
			exitOp:          domain.OpWeaningOut,
			entryOp:         domain.OpWeaningIn,
			quantity:        group.quantity,
			occurredAt:      occurredAt,
		}, creatorUserID)
		if err != nil {
			return pairs, err
		}
		pairs = append(pairs, result.Pair)
	}

	return pairs, nil
}

// commitPair builds and commits one correlated movement pair, replaying the
// whole read-validate-write cycle on version conflicts.
func (s *transferService) commitPair(ctx context.Context, spec pairSpec, creatorUserID string) (*domain.TransferResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	correlationID := uuid.NewString()

	exitLeg := domain.Movement{
		MovementID:    uuid.NewString(),
		FarmID:        spec.exitFarmID,
		CategoryID:    spec.exitCategoryID,
		Direction:     domain.Exit,
		Operation:     spec.exitOp,
		Quantity:      spec.quantity,
		OccurredAt:    spec.occurredAt,
		CorrelationID: &correlationID,
		Metadata:      spec.metadata,
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
	}
	entryLeg := domain.Movement{
		MovementID:    uuid.NewString(),
		FarmID:        spec.entryFarmID,
		CategoryID:    spec.entryCategoryID,
		Direction:     domain.Entry,
		Operation:     spec.entryOp,
		Quantity:      spec.quantity,
		OccurredAt:    spec.occurredAt,
		CorrelationID: &correlationID,
		Metadata:      spec.metadata,
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
	}
	pair := domain.MovementPair{Exit: exitLeg, Entry: entryLeg}

	for attempt := 0; attempt < concurrencyRetryBudget; attempt++ {
		sourceBalance, err := s.currentBalance(ctx, spec.exitFarmID, spec.exitCategoryID, creatorUserID)
		if err != nil {
			return nil, err
		}
		destBalance, err := s.currentBalance(ctx, spec.entryFarmID, spec.entryCategoryID, creatorUserID)
		if err != nil {
			return nil, err
		}

		newSource := sourceBalance.CurrentQuantity - spec.quantity
		if newSource < 0 {
			return nil, fmt.Errorf("%w: have %d, need %d", apperrors.ErrInsufficientStock, sourceBalance.CurrentQuantity, spec.quantity)
		}
		newDest := destBalance.CurrentQuantity + spec.quantity

		err = s.movementRepo.SaveMovementPair(ctx, pair,
			domain.BalanceUpdate{
				BalanceID:       sourceBalance.BalanceID,
				NewQuantity:     newSource,
				ExpectedVersion: sourceBalance.Version,
			},
			domain.BalanceUpdate{
				BalanceID:       destBalance.BalanceID,
				NewQuantity:     newDest,
				ExpectedVersion: destBalance.Version,
			},
		)
		if errors.Is(err, apperrors.ErrConcurrencyConflict) {
			logger.Warn("Balance version conflict, retrying pair",
				slog.String("correlation_id", correlationID),
				slog.Int("attempt", attempt+1),
			)
			continue
		}
		if err != nil {
			logger.Error("Failed to save movement pair", slog.String("error", err.Error()), slog.String("correlation_id", correlationID))
			return nil, fmt.Errorf("failed to save movement pair: %w", err)
		}

		source := *sourceBalance
		source.CurrentQuantity = newSource
		source.Version = sourceBalance.Version + 1
		source.UpdatedAt = now
		dest := *destBalance
		dest.CurrentQuantity = newDest
		dest.Version = destBalance.Version + 1
		dest.UpdatedAt = now
		return &domain.TransferResult{Pair: pair, Source: source, Destination: dest}, nil
	}

	logger.Error("Pair retry budget exhausted", slog.String("correlation_id", correlationID))
	return nil, fmt.Errorf("%w: retry budget exhausted", apperrors.ErrConcurrencyConflict)
}

func (s *transferService) currentBalance(ctx context.Context, farmID, categoryID string, creatorUserID string) (*domain.StockBalance, error) {
	balance, err := s.balanceRepo.FindBalance(ctx, farmID, categoryID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return s.balanceRepo.EnsureBalance(ctx, farmID, categoryID, creatorUserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balance: %w", err)
	}
	return balance, nil
}

func (s *transferService) validateFarm(ctx context.Context, farmID string) error {
	farm, err := s.farmRepo.FindFarmByID(ctx, farmID)
	if err != nil {
		return fmt.Errorf("farm %s: %w", farmID, err)
	}
	if !farm.IsActive {
		return fmt.Errorf("%w: farm %s is inactive", apperrors.ErrValidation, farmID)
	}
	return nil
}

func (s *transferService) validateCategory(ctx context.Context, categoryID string) error {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("category %s: %w", categoryID, err)
	}
	if !category.IsActive {
		return fmt.Errorf("%w: category %s is inactive", apperrors.ErrValidation, categoryID)
	}
	return nil
}

// resolveOccurredAt defaults a missing instant to now and rejects future ones.
func resolveOccurredAt(occurredAt *time.Time) (time.Time, error) {
	now := time.Now().UTC()
	if occurredAt == nil {
		return now, nil
	}
	t := occurredAt.UTC()
	if t.After(now) {
		return time.Time{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrFutureMovement.Error())
	}
	return t, nil
}
