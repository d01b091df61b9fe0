package services_test

import (
	"context"
	"testing"

	"github.com/AgroBov/cattle_ledger_app/internal/apperrors"
	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/core/services"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo      *MockCategoryRepository
	mockReconciliationSvc *MockReconciliationService
	service               portssvc.CategorySvcFacade
	userID                string
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockReconciliationSvc = new(MockReconciliationService)
	suite.service = services.NewCategoryService(suite.mockCategoryRepo, suite.mockReconciliationSvc)
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *CategoryServiceTestSuite) TestCreateCategory_CustomWithoutSlug() {
	ctx := context.Background()
	suite.mockCategoryRepo.On("SaveCategory", mock.Anything, mock.AnythingOfType("domain.Category")).Return(nil).Once()
	suite.mockReconciliationSvc.On("EnsureBalancesForCategory", mock.Anything, mock.AnythingOfType("string"), suite.userID).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Oxen", DisplayOrder: 10}, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(category.CategoryID)
	suite.Nil(category.Slug)
	suite.False(category.IsSystem)
	suite.True(category.IsActive)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
	suite.mockReconciliationSvc.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeactivateCategory_SystemRejected() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	slug := domain.SlugCows
	system := domain.Category{CategoryID: categoryID, Slug: &slug, IsSystem: true, IsActive: true}
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, categoryID).Return(&system, nil).Once()

	err := suite.service.DeactivateCategory(ctx, categoryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "UpdateCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeactivateCategory_Custom() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	custom := domain.Category{CategoryID: categoryID, IsSystem: false, IsActive: true}
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, categoryID).Return(&custom, nil).Once()
	suite.mockCategoryRepo.On("UpdateCategory", mock.Anything, mock.MatchedBy(func(c domain.Category) bool {
		return c.CategoryID == categoryID && !c.IsActive
	})).Return(nil).Once()

	err := suite.service.DeactivateCategory(ctx, categoryID, suite.userID)

	suite.Require().NoError(err)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
