package services

import (
	"context"
	"fmt"
	"time"

	"github.com/AgroBov/cattle_ledger_app/internal/apperrors"
	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portsrepo "github.com/AgroBov/cattle_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/middleware"
)

// reportingService builds period stock reports straight from the ledger.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
	farmRepo      portsrepo.FarmRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, farmRepo portsrepo.FarmRepositoryFacade) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: reportingRepo,
		farmRepo:      farmRepo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// FarmReport builds the period stock report for one farm.
func (s *reportingService) FarmReport(ctx context.Context, farmID string, from, to time.Time) (*domain.FarmReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	farm, err := s.farmRepo.FindFarmByID(ctx, farmID)
	if err != nil {
		return nil, fmt.Errorf("farm %s: %w", farmID, err)
	}

	start, end, err := dayBounds(from, to)
	if err != nil {
		return nil, err
	}

	categories, err := s.reportingRepo.GetCategoryPeriodRows(ctx, farmID, start, end)
	if err != nil {
		logger.Error("Failed to build category period rows", "error", err, "farm_id", farmID)
		return nil, fmt.Errorf("failed to build category rows: %w", err)
	}

	details, err := s.reportingRepo.GetMovementDetails(ctx, farmID, start, end)
	if err != nil {
		logger.Error("Failed to fetch movement details", "error", err, "farm_id", farmID)
		return nil, fmt.Errorf("failed to fetch movement details: %w", err)
	}

	var totalStock int64
	for _, row := range categories {
		totalStock += row.Closing
	}

	return &domain.FarmReport{
		FarmID:     farm.FarmID,
		FarmName:   farm.Name,
		Start:      start,
		End:        end,
		Categories: categories,
		Details:    details,
		TotalStock: totalStock,
	}, nil
}

// ConsolidatedReport builds the period stock report across every active farm.
func (s *reportingService) ConsolidatedReport(ctx context.Context, from, to time.Time) (*domain.ConsolidatedReport, error) {
	start, end, err := dayBounds(from, to)
	if err != nil {
		return nil, err
	}

	farms, err := s.farmRepo.ListFarms(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}

	report := &domain.ConsolidatedReport{
		Start: start,
		End:   end,
		Farms: make([]domain.FarmReport, 0, len(farms)),
	}
	for _, farm := range farms {
		farmReport, err := s.FarmReport(ctx, farm.FarmID, from, to)
		if err != nil {
			return nil, err
		}
		report.Farms = append(report.Farms, *farmReport)
		report.TotalStock += farmReport.TotalStock
	}
	return report, nil
}

// dayBounds expands two inclusive dates to full-day UTC instants.
func dayBounds(from, to time.Time) (time.Time, time.Time, error) {
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: period end precedes start", apperrors.ErrValidation)
	}
	from = from.UTC()
	to = to.UTC()
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999999999, time.UTC)
	return start, end, nil
}
