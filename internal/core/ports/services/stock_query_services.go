package services

import (
	"context"
	"time"

	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
)

// StockReaderSvc defines snapshot read operations
type StockReaderSvc interface {
	// GetBalance retrieves the cached snapshot for one (farm, category) pair.
	GetBalance(ctx context.Context, farmID, categoryID string) (*domain.StockBalance, error)

	// ListBalancesByFarm retrieves every snapshot row of a farm.
	ListBalancesByFarm(ctx context.Context, farmID string) ([]domain.StockBalance, error)

	// ListAllBalances retrieves every snapshot row in the system.
	ListAllBalances(ctx context.Context) ([]domain.StockBalance, error)
}

// StockCalculatorSvc defines ledger-derived calculations
type StockCalculatorSvc interface {
	// BalanceAsOf reconstructs the quantity at an instant from the ledger
	// alone. A zero asOf means the full ledger sum.
	BalanceAsOf(ctx context.Context, farmID, categoryID string, asOf time.Time) (int64, error)

	// PeriodStock summarizes one (farm, category) pair over [start, end]:
	// opening quantity, per-operation totals, and closing quantity.
	PeriodStock(ctx context.Context, farmID, categoryID string, start, end time.Time) (*domain.PeriodStock, error)

	// VerifyConsistency compares the snapshot against the ledger-derived sum
	// without modifying anything.
	VerifyConsistency(ctx context.Context, farmID, categoryID string) (*domain.ConsistencyReport, error)
}

// StockQuerySvcFacade combines all stock query service interfaces
type StockQuerySvcFacade interface {
	StockReaderSvc
	StockCalculatorSvc
}
