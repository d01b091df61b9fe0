package services

import (
	"context"
	"time"

	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
)

// ReportingService defines the period stock report operations
type ReportingService interface {
	// FarmReport builds the period stock report for one farm. The inclusive
	// from and to dates are expanded to full-day UTC bounds.
	FarmReport(ctx context.Context, farmID string, from, to time.Time) (*domain.FarmReport, error)

	// ConsolidatedReport builds the period stock report across every active farm.
	ConsolidatedReport(ctx context.Context, from, to time.Time) (*domain.ConsolidatedReport, error)
}
