package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AgroBov/cattle_ledger_app/internal/apperrors"
	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portsrepo "github.com/AgroBov/cattle_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/middleware"
)

// stockQueryService answers balance and period questions. Snapshot reads come
// from the cache table; point-in-time and consistency answers always derive
// from the ledger.
type stockQueryService struct {
	movementRepo portsrepo.MovementRepositoryFacade
	balanceRepo  portsrepo.BalanceRepositoryFacade
}

// NewStockQueryService creates a new StockQueryService.
func NewStockQueryService(movementRepo portsrepo.MovementRepositoryFacade, balanceRepo portsrepo.BalanceRepositoryFacade) portssvc.StockQuerySvcFacade {
	return &stockQueryService{
		movementRepo: movementRepo,
		balanceRepo:  balanceRepo,
	}
}

var _ portssvc.StockQuerySvcFacade = (*stockQueryService)(nil)

// GetBalance retrieves the cached snapshot for one (farm, category) pair.
func (s *stockQueryService) GetBalance(ctx context.Context, farmID, categoryID string) (*domain.StockBalance, error) {
	return s.balanceRepo.FindBalance(ctx, farmID, categoryID)
}

// ListBalancesByFarm retrieves every snapshot row of a farm.
func (s *stockQueryService) ListBalancesByFarm(ctx context.Context, farmID string) ([]domain.StockBalance, error) {
	return s.balanceRepo.ListBalancesByFarm(ctx, farmID)
}

// ListAllBalances retrieves every snapshot row in the system.
func (s *stockQueryService) ListAllBalances(ctx context.Context) ([]domain.StockBalance, error) {
	return s.balanceRepo.ListAllBalances(ctx)
}

// BalanceAsOf reconstructs a quantity from the ledger alone. A zero asOf
// means the full ledger sum.
func (s *stockQueryService) BalanceAsOf(ctx context.Context, farmID, categoryID string, asOf time.Time) (int64, error) {
	if asOf.IsZero() {
		return s.movementRepo.SignedSumAll(ctx, farmID, categoryID)
	}
	return s.movementRepo.SignedSumAsOf(ctx, farmID, categoryID, asOf.UTC())
}

// PeriodStock summarizes one (farm, category) pair over [start, end].
func (s *stockQueryService) PeriodStock(ctx context.Context, farmID, categoryID string, start, end time.Time) (*domain.PeriodStock, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if end.Before(start) {
		return nil, fmt.Errorf("%w: period end precedes start", apperrors.ErrValidation)
	}
	start = start.UTC()
	end = end.UTC()

	opening, err := s.movementRepo.SignedSumBefore(ctx, farmID, categoryID, start)
	if err != nil {
		logger.Error("Failed to compute opening quantity", "error", err)
		return nil, fmt.Errorf("failed to compute opening quantity: %w", err)
	}

	sums, err := s.movementRepo.SumByOperation(ctx, farmID, categoryID, start, end)
	if err != nil {
		logger.Error("Failed to compute period totals", "error", err)
		return nil, fmt.Errorf("failed to compute period totals: %w", err)
	}

	entries := make(map[domain.OperationType]int64)
	exits := make(map[domain.OperationType]int64)
	closing := opening
	for operation, quantity := range sums {
		direction, err := operation.Direction()
		if err != nil {
			return nil, fmt.Errorf("%w: ledger holds unknown operation %s", apperrors.ErrIntegrityViolation, operation)
		}
		if direction == domain.Entry {
			entries[operation] = quantity
			closing += quantity
		} else {
			exits[operation] = quantity
			closing -= quantity
		}
	}

	return &domain.PeriodStock{
		FarmID:     farmID,
		CategoryID: categoryID,
		Start:      start,
		End:        end,
		Opening:    opening,
		Entries:    entries,
		Exits:      exits,
		Closing:    closing,
	}, nil
}

// VerifyConsistency compares the snapshot against the ledger-derived sum
// without modifying anything. A missing snapshot row counts as zero.
func (s *stockQueryService) VerifyConsistency(ctx context.Context, farmID, categoryID string) (*domain.ConsistencyReport, error) {
	var snapshotValue, version int64
	balance, err := s.balanceRepo.FindBalance(ctx, farmID, categoryID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if balance != nil {
		snapshotValue = balance.CurrentQuantity
		version = balance.Version
	}

	ledgerValue, err := s.movementRepo.SignedSumAll(ctx, farmID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute ledger sum: %w", err)
	}

	drift := snapshotValue - ledgerValue
	return &domain.ConsistencyReport{
		FarmID:         farmID,
		CategoryID:     categoryID,
		Consistent:     drift == 0,
		SnapshotValue:  snapshotValue,
		LedgerValue:    ledgerValue,
		Drift:          drift,
		BalanceVersion: version,
	}, nil
}
