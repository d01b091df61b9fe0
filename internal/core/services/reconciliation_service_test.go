package services_test

import (
	"context"
	"testing"

	"github.com/AgroBov/cattle_ledger_app/internal/apperrors"
	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockMovementRepo *MockMovementRepository
	mockBalanceRepo  *MockBalanceRepository
	mockFarmRepo     *MockFarmRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.ReconciliationSvcFacade
	farmID           string
	categoryID       string
	userID           string
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockBalanceRepo = new(MockBalanceRepository)
	suite.mockFarmRepo = new(MockFarmRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewReconciliationService(
		suite.mockMovementRepo,
		suite.mockBalanceRepo,
		suite.mockFarmRepo,
		suite.mockCategoryRepo,
	)
	suite.farmID = uuid.NewString()
	suite.categoryID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *ReconciliationServiceTestSuite) balance(quantity, version int64) *domain.StockBalance {
	return &domain.StockBalance{
		BalanceID:       uuid.NewString(),
		FarmID:          suite.farmID,
		CategoryID:      suite.categoryID,
		CurrentQuantity: quantity,
		Version:         version,
	}
}

// --- Test Cases ---

func (suite *ReconciliationServiceTestSuite) TestReconcile_ConsistentRowIsNoOp() {
	ctx := context.Background()
	suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.farmID, suite.categoryID).Return(suite.balance(20, 5), nil).Once()
	suite.mockMovementRepo.On("SignedSumAll", mock.Anything, suite.farmID, suite.categoryID).Return(int64(20), nil).Once()

	report, err := suite.service.Reconcile(ctx, suite.farmID, suite.categoryID, suite.userID)

	suite.Require().NoError(err)
	suite.True(report.Consistent)
	suite.Equal(int64(5), report.BalanceVersion)
	suite.mockBalanceRepo.AssertNotCalled(suite.T(), "OverwriteBalance", mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_RepairsDrift() {
	ctx := context.Background()
	drifted := suite.balance(20, 5)
	suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.farmID, suite.categoryID).Return(drifted, nil).Once()
	suite.mockMovementRepo.On("SignedSumAll", mock.Anything, suite.farmID, suite.categoryID).Return(int64(26), nil).Once()
	suite.mockBalanceRepo.On("OverwriteBalance", mock.Anything, domain.BalanceUpdate{
		BalanceID:       drifted.BalanceID,
		NewQuantity:     26,
		ExpectedVersion: 5,
	}).Return(nil).Once()

	report, err := suite.service.Reconcile(ctx, suite.farmID, suite.categoryID, suite.userID)

	suite.Require().NoError(err)
	suite.False(report.Consistent)
	suite.Equal(int64(-6), report.Drift)
	suite.Equal(int64(26), report.LedgerValue)
	suite.Equal(int64(6), report.BalanceVersion)
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_ProvisionsMissingRow() {
	ctx := context.Background()
	fresh := suite.balance(0, 1)
	suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.farmID, suite.categoryID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockBalanceRepo.On("EnsureBalance", mock.Anything, suite.farmID, suite.categoryID, suite.userID).Return(fresh, nil).Once()
	suite.mockMovementRepo.On("SignedSumAll", mock.Anything, suite.farmID, suite.categoryID).Return(int64(0), nil).Once()

	report, err := suite.service.Reconcile(ctx, suite.farmID, suite.categoryID, suite.userID)

	suite.Require().NoError(err)
	suite.True(report.Consistent)
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_RetriesOnConcurrentWrite() {
	ctx := context.Background()
	first := suite.balance(20, 5)
	second := suite.balance(22, 6)
	suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.farmID, suite.categoryID).Return(first, nil).Once()
	suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.farmID, suite.categoryID).Return(second, nil).Once()
	suite.mockMovementRepo.On("SignedSumAll", mock.Anything, suite.farmID, suite.categoryID).Return(int64(26), nil).Twice()
	suite.mockBalanceRepo.On("OverwriteBalance", mock.Anything, domain.BalanceUpdate{
		BalanceID:       first.BalanceID,
		NewQuantity:     26,
		ExpectedVersion: 5,
	}).Return(apperrors.ErrConcurrencyConflict).Once()
	suite.mockBalanceRepo.On("OverwriteBalance", mock.Anything, domain.BalanceUpdate{
		BalanceID:       second.BalanceID,
		NewQuantity:     26,
		ExpectedVersion: 6,
	}).Return(nil).Once()

	report, err := suite.service.Reconcile(ctx, suite.farmID, suite.categoryID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(7), report.BalanceVersion)
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestReconcileAll_ReportsEveryRow() {
	ctx := context.Background()
	otherFarmID := uuid.NewString()
	rows := []domain.StockBalance{
		{BalanceID: uuid.NewString(), FarmID: suite.farmID, CategoryID: suite.categoryID, CurrentQuantity: 10, Version: 2},
		{BalanceID: uuid.NewString(), FarmID: otherFarmID, CategoryID: suite.categoryID, CurrentQuantity: 4, Version: 1},
	}
	suite.mockBalanceRepo.On("ListAllBalances", mock.Anything).Return(rows, nil).Once()
	suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.farmID, suite.categoryID).Return(&rows[0], nil).Once()
	suite.mockBalanceRepo.On("FindBalance", mock.Anything, otherFarmID, suite.categoryID).Return(&rows[1], nil).Once()
	suite.mockMovementRepo.On("SignedSumAll", mock.Anything, suite.farmID, suite.categoryID).Return(int64(10), nil).Once()
	suite.mockMovementRepo.On("SignedSumAll", mock.Anything, otherFarmID, suite.categoryID).Return(int64(9), nil).Once()
	suite.mockBalanceRepo.On("OverwriteBalance", mock.Anything, domain.BalanceUpdate{
		BalanceID:       rows[1].BalanceID,
		NewQuantity:     9,
		ExpectedVersion: 1,
	}).Return(nil).Once()

	reports, err := suite.service.ReconcileAll(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(reports, 2)
	suite.True(reports[0].Consistent)
	suite.False(reports[1].Consistent)
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestEnsureBalancesForFarm_CoversActiveCategories() {
	ctx := context.Background()
	farm := domain.Farm{FarmID: suite.farmID, IsActive: true}
	categories := []domain.Category{
		{CategoryID: uuid.NewString(), IsActive: true},
		{CategoryID: uuid.NewString(), IsActive: true},
	}
	suite.mockFarmRepo.On("FindFarmByID", mock.Anything, suite.farmID).Return(&farm, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", mock.Anything, false).Return(categories, nil).Once()
	for _, category := range categories {
		suite.mockBalanceRepo.On("EnsureBalance", mock.Anything, suite.farmID, category.CategoryID, suite.userID).
			Return(&domain.StockBalance{BalanceID: uuid.NewString(), FarmID: suite.farmID, CategoryID: category.CategoryID, Version: 1}, nil).Once()
	}

	err := suite.service.EnsureBalancesForFarm(ctx, suite.farmID, suite.userID)

	suite.Require().NoError(err)
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestEnsureBalanceRow_UnknownFarm() {
	ctx := context.Background()
	suite.mockFarmRepo.On("FindFarmByID", mock.Anything, suite.farmID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.EnsureBalanceRow(ctx, suite.farmID, suite.categoryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBalanceRepo.AssertNotCalled(suite.T(), "EnsureBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
