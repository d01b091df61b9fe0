package repositories

import (
	"context"

	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
)

// BalanceReader defines read operations over the snapshot table
type BalanceReader interface {
	// FindBalance retrieves the snapshot row for one (farm, category) pair.
	FindBalance(ctx context.Context, farmID, categoryID string) (*domain.StockBalance, error)

	// ListBalancesByFarm retrieves every snapshot row of a farm.
	ListBalancesByFarm(ctx context.Context, farmID string) ([]domain.StockBalance, error)

	// ListAllBalances retrieves every snapshot row in the system.
	ListAllBalances(ctx context.Context) ([]domain.StockBalance, error)
}

// BalanceWriter defines write operations over the snapshot table
type BalanceWriter interface {
	// EnsureBalance idempotently creates the zero-quantity snapshot row for a
	// (farm, category) pair and returns the row, existing or new.
	EnsureBalance(ctx context.Context, farmID, categoryID string, creatorUserID string) (*domain.StockBalance, error)

	// OverwriteBalance applies a version-guarded write to one snapshot row.
	// Used by reconciliation to rebuild a drifted snapshot from the ledger.
	// A stale ExpectedVersion returns apperrors.ErrConcurrencyConflict.
	OverwriteBalance(ctx context.Context, update domain.BalanceUpdate) error
}

// BalanceRepositoryFacade combines all snapshot repository interfaces
type BalanceRepositoryFacade interface {
	BalanceReader
	BalanceWriter
}
