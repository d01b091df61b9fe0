package services

import (
	"context"

	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
)

// ReconciliationSvcFacade defines the snapshot repair and provisioning
// operations. Snapshots are disposable; everything here rebuilds them from
// the ledger.
type ReconciliationSvcFacade interface {
	// Reconcile rebuilds one snapshot row from the ledger and reports the
	// drift that was found. Idempotent: a consistent row is left untouched.
	Reconcile(ctx context.Context, farmID, categoryID string, requestingUserID string) (*domain.ConsistencyReport, error)

	// ReconcileAll reconciles every snapshot row in the system.
	ReconcileAll(ctx context.Context, requestingUserID string) ([]domain.ConsistencyReport, error)

	// EnsureBalanceRow idempotently provisions the zero-quantity snapshot row
	// for one (farm, category) pair.
	EnsureBalanceRow(ctx context.Context, farmID, categoryID string, requestingUserID string) (*domain.StockBalance, error)

	// EnsureBalancesForFarm provisions snapshot rows for a farm across every
	// active category.
	EnsureBalancesForFarm(ctx context.Context, farmID string, requestingUserID string) error

	// EnsureBalancesForCategory provisions snapshot rows for a category
	// across every active farm.
	EnsureBalancesForCategory(ctx context.Context, categoryID string, requestingUserID string) error
}
