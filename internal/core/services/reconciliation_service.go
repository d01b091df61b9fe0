package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AgroBov/cattle_ledger_app/internal/apperrors"
	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portsrepo "github.com/AgroBov/cattle_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/middleware"
)

// reconciliationService repairs and provisions snapshot rows. The ledger is
// the source of truth here; a snapshot that disagrees with it is overwritten,
// never the other way around.
type reconciliationService struct {
	movementRepo portsrepo.MovementRepositoryFacade
	balanceRepo  portsrepo.BalanceRepositoryFacade
	farmRepo     portsrepo.FarmRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(
	movementRepo portsrepo.MovementRepositoryFacade,
	balanceRepo portsrepo.BalanceRepositoryFacade,
	farmRepo portsrepo.FarmRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		movementRepo: movementRepo,
		balanceRepo:  balanceRepo,
		farmRepo:     farmRepo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// Reconcile rebuilds one snapshot row from the ledger. The returned report
// describes the state that was found; Consistent true means nothing was
// written. Idempotent: reconciling a consistent row is a no-op.
func (s *reconciliationService) Reconcile(ctx context.Context, farmID, categoryID string, requestingUserID string) (*domain.ConsistencyReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	for attempt := 0; attempt < concurrencyRetryBudget; attempt++ {
		balance, err := s.ensureBalance(ctx, farmID, categoryID, requestingUserID)
		if err != nil {
			return nil, err
		}

		ledgerValue, err := s.movementRepo.SignedSumAll(ctx, farmID, categoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to compute ledger sum: %w", err)
		}

		drift := balance.CurrentQuantity - ledgerValue
		report := &domain.ConsistencyReport{
			FarmID:         farmID,
			CategoryID:     categoryID,
			Consistent:     drift == 0,
			SnapshotValue:  balance.CurrentQuantity,
			LedgerValue:    ledgerValue,
			Drift:          drift,
			BalanceVersion: balance.Version,
		}
		if drift == 0 {
			return report, nil
		}

		err = s.balanceRepo.OverwriteBalance(ctx, domain.BalanceUpdate{
			BalanceID:       balance.BalanceID,
			NewQuantity:     ledgerValue,
			ExpectedVersion: balance.Version,
		})
		if errors.Is(err, apperrors.ErrConcurrencyConflict) {
			logger.Warn("Balance changed under reconciliation, retrying",
				slog.String("farm_id", farmID),
				slog.String("category_id", categoryID),
				slog.Int("attempt", attempt+1),
			)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to overwrite balance: %w", err)
		}

		logger.Info("Snapshot drift repaired",
			slog.String("farm_id", farmID),
			slog.String("category_id", categoryID),
			slog.Int64("drift", drift),
			slog.Int64("rebuilt_quantity", ledgerValue),
		)
		report.BalanceVersion = balance.Version + 1
		return report, nil
	}

	return nil, fmt.Errorf("%w: retry budget exhausted", apperrors.ErrConcurrencyConflict)
}

// ReconcileAll reconciles every snapshot row in the system and returns one
// report per row.
func (s *reconciliationService) ReconcileAll(ctx context.Context, requestingUserID string) ([]domain.ConsistencyReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	balances, err := s.balanceRepo.ListAllBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}

	reports := make([]domain.ConsistencyReport, 0, len(balances))
	repaired := 0
	for _, balance := range balances {
		report, err := s.Reconcile(ctx, balance.FarmID, balance.CategoryID, requestingUserID)
		if err != nil {
			return reports, fmt.Errorf("reconcile %s/%s: %w", balance.FarmID, balance.CategoryID, err)
		}
		if !report.Consistent {
			repaired++
		}
		reports = append(reports, *report)
	}

	logger.Info("Reconciliation sweep finished",
		slog.Int("checked", len(reports)),
		slog.Int("repaired", repaired),
	)
	return reports, nil
}

// EnsureBalanceRow idempotently provisions the zero-quantity snapshot row for
// one (farm, category) pair.
func (s *reconciliationService) EnsureBalanceRow(ctx context.Context, farmID, categoryID string, requestingUserID string) (*domain.StockBalance, error) {
	if _, err := s.farmRepo.FindFarmByID(ctx, farmID); err != nil {
		return nil, fmt.Errorf("farm %s: %w", farmID, err)
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		return nil, fmt.Errorf("category %s: %w", categoryID, err)
	}
	return s.balanceRepo.EnsureBalance(ctx, farmID, categoryID, requestingUserID)
}

// EnsureBalancesForFarm provisions snapshot rows for a farm across every
// active category.
func (s *reconciliationService) EnsureBalancesForFarm(ctx context.Context, farmID string, requestingUserID string) error {
	if _, err := s.farmRepo.FindFarmByID(ctx, farmID); err != nil {
		return fmt.Errorf("farm %s: %w", farmID, err)
	}
	categories, err := s.categoryRepo.ListCategories(ctx, false)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	for _, category := range categories {
		if _, err := s.balanceRepo.EnsureBalance(ctx, farmID, category.CategoryID, requestingUserID); err != nil {
			return fmt.Errorf("ensure balance %s/%s: %w", farmID, category.CategoryID, err)
		}
	}
	return nil
}

// EnsureBalancesForCategory provisions snapshot rows for a category across
// every active farm.
func (s *reconciliationService) EnsureBalancesForCategory(ctx context.Context, categoryID string, requestingUserID string) error {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		return fmt.Errorf("category %s: %w", categoryID, err)
	}
	farms, err := s.farmRepo.ListFarms(ctx, false)
	if err != nil {
		return fmt.Errorf("failed to list farms: %w", err)
	}
	for _, farm := range farms {
		if _, err := s.balanceRepo.EnsureBalance(ctx, farm.FarmID, categoryID, requestingUserID); err != nil {
			return fmt.Errorf("ensure balance %s/%s: %w", farm.FarmID, categoryID, err)
		}
	}
	return nil
}

func (s *reconciliationService) ensureBalance(ctx context.Context, farmID, categoryID string, requestingUserID string) (*domain.StockBalance, error) {
	balance, err := s.balanceRepo.FindBalance(ctx, farmID, categoryID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return s.balanceRepo.EnsureBalance(ctx, farmID, categoryID, requestingUserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balance: %w", err)
	}
	return balance, nil
}
