package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/AgroBov/cattle_ledger_app/internal/apperrors"
	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockFarmRepo      *MockFarmRepository
	service           portssvc.ReportingService
	farm              domain.Farm
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockFarmRepo = new(MockFarmRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockFarmRepo)
	suite.farm = domain.Farm{FarmID: uuid.NewString(), Name: "North pasture", IsActive: true}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestFarmReport_ExpandsDayBounds() {
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 8, 0, 0, 0, time.UTC)
	wantStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 6, 30, 23, 59, 59, 999999999, time.UTC)

	rows := []domain.CategoryPeriodRow{
		{CategoryID: uuid.NewString(), CategoryName: "Cows", Opening: 40, Closing: 45},
		{CategoryID: uuid.NewString(), CategoryName: "Bulls", Opening: 3, Closing: 2},
	}
	suite.mockFarmRepo.On("FindFarmByID", mock.Anything, suite.farm.FarmID).Return(&suite.farm, nil).Once()
	suite.mockReportingRepo.On("GetCategoryPeriodRows", mock.Anything, suite.farm.FarmID, wantStart, wantEnd).Return(rows, nil).Once()
	suite.mockReportingRepo.On("GetMovementDetails", mock.Anything, suite.farm.FarmID, wantStart, wantEnd).Return([]domain.MovementDetail{}, nil).Once()

	report, err := suite.service.FarmReport(ctx, suite.farm.FarmID, from, to)

	suite.Require().NoError(err)
	suite.Equal(wantStart, report.Start)
	suite.Equal(wantEnd, report.End)
	suite.Equal(suite.farm.Name, report.FarmName)
	suite.Equal(int64(47), report.TotalStock)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestFarmReport_EndBeforeStart() {
	ctx := context.Background()
	from := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)
	suite.mockFarmRepo.On("FindFarmByID", mock.Anything, suite.farm.FarmID).Return(&suite.farm, nil).Once()

	_, err := suite.service.FarmReport(ctx, suite.farm.FarmID, from, to)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetCategoryPeriodRows", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestConsolidatedReport_SumsFarms() {
	ctx := context.Background()
	otherFarm := domain.Farm{FarmID: uuid.NewString(), Name: "South pasture", IsActive: true}
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	wantStart := from
	wantEnd := time.Date(2025, 6, 30, 23, 59, 59, 999999999, time.UTC)

	suite.mockFarmRepo.On("ListFarms", mock.Anything, false).Return([]domain.Farm{suite.farm, otherFarm}, nil).Once()
	suite.mockFarmRepo.On("FindFarmByID", mock.Anything, suite.farm.FarmID).Return(&suite.farm, nil).Once()
	suite.mockFarmRepo.On("FindFarmByID", mock.Anything, otherFarm.FarmID).Return(&otherFarm, nil).Once()
	suite.mockReportingRepo.On("GetCategoryPeriodRows", mock.Anything, suite.farm.FarmID, wantStart, wantEnd).
		Return([]domain.CategoryPeriodRow{{Closing: 30}}, nil).Once()
	suite.mockReportingRepo.On("GetCategoryPeriodRows", mock.Anything, otherFarm.FarmID, wantStart, wantEnd).
		Return([]domain.CategoryPeriodRow{{Closing: 12}}, nil).Once()
	suite.mockReportingRepo.On("GetMovementDetails", mock.Anything, mock.AnythingOfType("string"), wantStart, wantEnd).
		Return([]domain.MovementDetail{}, nil).Twice()

	report, err := suite.service.ConsolidatedReport(ctx, from, to)

	suite.Require().NoError(err)
	suite.Require().Len(report.Farms, 2)
	suite.Equal(int64(42), report.TotalStock)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
