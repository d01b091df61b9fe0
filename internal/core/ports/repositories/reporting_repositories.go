package repositories

import (
	"context"
	"time"

	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
)

// ReportingRepository defines bulk read operations for period stock reports
type ReportingRepository interface {
	// GetCategoryPeriodRows retrieves per-category opening, per-operation
	// period totals, and closing quantities for one farm over [from, to].
	GetCategoryPeriodRows(ctx context.Context, farmID string, from, to time.Time) ([]domain.CategoryPeriodRow, error)

	// GetMovementDetails retrieves the detail lines (deaths, sales,
	// slaughters, donations) of one farm over [from, to].
	GetMovementDetails(ctx context.Context, farmID string, from, to time.Time) ([]domain.MovementDetail, error)
}
