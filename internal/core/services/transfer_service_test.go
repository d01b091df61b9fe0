package services_test

import (
	"context"
	"testing"

	"github.com/AgroBov/cattle_ledger_app/internal/apperrors"
	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/core/services"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
	"github.com/AgroBov/cattle_ledger_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type TransferServiceTestSuite struct {
	suite.Suite
	mockMovementRepo *MockMovementRepository
	mockBalanceRepo  *MockBalanceRepository
	mockFarmRepo     *MockFarmRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.TransferSvcFacade
	sourceFarm       domain.Farm
	destFarm         domain.Farm
	category         domain.Category
	userID           string
}

func (suite *TransferServiceTestSuite) SetupTest() {
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockBalanceRepo = new(MockBalanceRepository)
	suite.mockFarmRepo = new(MockFarmRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewTransferService(
		suite.mockMovementRepo,
		suite.mockBalanceRepo,
		suite.mockFarmRepo,
		suite.mockCategoryRepo,
	)

	suite.userID = uuid.NewString()
	suite.sourceFarm = domain.Farm{FarmID: uuid.NewString(), Name: "North pasture", IsActive: true}
	suite.destFarm = domain.Farm{FarmID: uuid.NewString(), Name: "South pasture", IsActive: true}
	suite.category = domain.Category{CategoryID: uuid.NewString(), Name: "Steers", IsActive: true}
}

func (suite *TransferServiceTestSuite) balanceFor(farmID, categoryID string, quantity, version int64) *domain.StockBalance {
	return &domain.StockBalance{
		BalanceID:       uuid.NewString(),
		FarmID:          farmID,
		CategoryID:      categoryID,
		CurrentQuantity: quantity,
		Version:         version,
	}
}

// --- Test Cases ---

func (suite *TransferServiceTestSuite) TestTransfer_Success() {
	ctx := context.Background()
	suite.mockFarmRepo.On("FindFarmByID", mock.Anything, suite.sourceFarm.FarmID).Return(&suite.sourceFarm, nil).Once()
	suite.mockFarmRepo.On("FindFarmByID", mock.Anything, suite.destFarm.FarmID).Return(&suite.destFarm, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.category.CategoryID).Return(&suite.category, nil).Once()

	sourceBalance := suite.balanceFor(suite.sourceFarm.FarmID, suite.category.CategoryID, 30, 4)
	destBalance := suite.balanceFor(suite.destFarm.FarmID, suite.category.CategoryID, 5, 2)
	suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.sourceFarm.FarmID, suite.category.CategoryID).Return(sourceBalance, nil).Once()
	suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.destFarm.FarmID, suite.category.CategoryID).Return(destBalance, nil).Once()

	suite.mockMovementRepo.On("SaveMovementPair", mock.Anything, mock.AnythingOfType("domain.MovementPair"),
		domain.BalanceUpdate{BalanceID: sourceBalance.BalanceID, NewQuantity: 20, ExpectedVersion: 4},
		domain.BalanceUpdate{BalanceID: destBalance.BalanceID, NewQuantity: 15, ExpectedVersion: 2},
	).Return(nil).Once()

	result, err := suite.service.Transfer(ctx, dto.TransferRequest{
		SourceFarmID: suite.sourceFarm.FarmID,
		DestFarmID:   suite.destFarm.FarmID,
		CategoryID:   suite.category.CategoryID,
		Quantity:     10,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(domain.OpTransferOut, result.Pair.Exit.Operation)
	suite.Equal(domain.OpTransferIn, result.Pair.Entry.Operation)
	suite.Require().NotNil(result.Pair.Exit.CorrelationID)
	suite.Require().NotNil(result.Pair.Entry.CorrelationID)
	suite.Equal(*result.Pair.Exit.CorrelationID, *result.Pair.Entry.CorrelationID)
	suite.Equal(result.Pair.Exit.OccurredAt, result.Pair.Entry.OccurredAt)
	suite.Equal(int64(20), result.Source.CurrentQuantity)
	suite.Equal(int64(15), result.Destination.CurrentQuantity)
	suite.Equal(int64(5), result.Source.Version)
	suite.Equal(int64(3), result.Destination.Version)

	suite.mockMovementRepo.AssertExpectations(suite.T())
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestTransfer_LegsShareTimestampsButNotIDs() {
	// Both legs are stamped with one occurred_at and one created_at, so the
	// ledger listing cannot order them by timestamps alone; their movement
	// IDs must stay distinct to keep keyset cursors unambiguous.
	ctx := context.Background()
	suite.mockFarmRepo.On("FindFarmByID", mock.Anything, suite.sourceFarm.FarmID).Return(&suite.sourceFarm, nil).Once()
	suite.mockFarmRepo.On("FindFarmByID", mock.Anything, suite.destFarm.FarmID).Return(&suite.destFarm, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.category.CategoryID).Return(&suite.category, nil).Once()

	sourceBalance := suite.balanceFor(suite.sourceFarm.FarmID, suite.category.CategoryID, 30, 4)
	destBalance := suite.balanceFor(suite.destFarm.FarmID, suite.category.CategoryID, 5, 2)
	suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.sourceFarm.FarmID, suite.category.CategoryID).Return(sourceBalance, nil).Once()
	suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.destFarm.FarmID, suite.category.CategoryID).Return(destBalance, nil).Once()

	var savedPair domain.MovementPair
	suite.mockMovementRepo.On("SaveMovementPair", mock.Anything, mock.AnythingOfType("domain.MovementPair"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedPair = args.Get(1).(domain.MovementPair)
		}).Return(nil).Once()

	_, err := suite.service.Transfer(ctx, dto.TransferRequest{
		SourceFarmID: suite.sourceFarm.FarmID,
		DestFarmID:   suite.destFarm.FarmID,
		CategoryID:   suite.category.CategoryID,
		Quantity:     10,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.True(savedPair.Exit.OccurredAt.Equal(savedPair.Entry.OccurredAt))
	suite.True(savedPair.Exit.CreatedAt.Equal(savedPair.Entry.CreatedAt))
	suite.NotEmpty(savedPair.Exit.MovementID)
	suite.NotEmpty(savedPair.Entry.MovementID)
	suite.NotEqual(savedPair.Exit.MovementID, savedPair.Entry.MovementID)

	exitToken := pagination.EncodeToken(savedPair.Exit.OccurredAt, savedPair.Exit.CreatedAt, savedPair.Exit.MovementID)
	entryToken := pagination.EncodeToken(savedPair.Entry.OccurredAt, savedPair.Entry.CreatedAt, savedPair.Entry.MovementID)
	suite.NotEqual(exitToken, entryToken)
}

func (suite *TransferServiceTestSuite) TestTransfer_SameFarmRejected() {
	ctx := context.Background()

	_, err := suite.service.Transfer(ctx, dto.TransferRequest{
		SourceFarmID: suite.sourceFarm.FarmID,
		DestFarmID:   suite.sourceFarm.FarmID,
		CategoryID:   suite.category.CategoryID,
		Quantity:     10,
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovementPair", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestTransfer_InsufficientSourceStock() {
	ctx := context.Background()
	suite.mockFarmRepo.On("FindFarmByID", mock.Anything, suite.sourceFarm.FarmID).Return(&suite.sourceFarm, nil).Once()
	suite.mockFarmRepo.On("FindFarmByID", mock.Anything, suite.destFarm.FarmID).Return(&suite.destFarm, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.category.CategoryID).Return(&suite.category, nil).Once()

	sourceBalance := suite.balanceFor(suite.sourceFarm.FarmID, suite.category.CategoryID, 3, 1)
	destBalance := suite.balanceFor(suite.destFarm.FarmID, suite.category.CategoryID, 0, 1)
	suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.sourceFarm.FarmID, suite.category.CategoryID).Return(sourceBalance, nil).Once()
	suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.destFarm.FarmID, suite.category.CategoryID).Return(destBalance, nil).Once()

	_, err := suite.service.Transfer(ctx, dto.TransferRequest{
		SourceFarmID: suite.sourceFarm.FarmID,
		DestFarmID:   suite.destFarm.FarmID,
		CategoryID:   suite.category.CategoryID,
		Quantity:     10,
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovementPair", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestReclassify_SameCategoryRejected() {
	ctx := context.Background()

	_, err := suite.service.Reclassify(ctx, dto.ReclassifyRequest{
		FarmID:           suite.sourceFarm.FarmID,
		SourceCategoryID: suite.category.CategoryID,
		DestCategoryID:   suite.category.CategoryID,
		Quantity:         4,
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransferServiceTestSuite) TestReclassify_Success() {
	ctx := context.Background()
	destCategory := domain.Category{CategoryID: uuid.NewString(), Name: "Cows", IsActive: true}
	suite.mockFarmRepo.On("FindFarmByID", mock.Anything, suite.sourceFarm.FarmID).Return(&suite.sourceFarm, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.category.CategoryID).Return(&suite.category, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, destCategory.CategoryID).Return(&destCategory, nil).Once()

	sourceBalance := suite.balanceFor(suite.sourceFarm.FarmID, suite.category.CategoryID, 12, 9)
	destBalance := suite.balanceFor(suite.sourceFarm.FarmID, destCategory.CategoryID, 1, 1)
	suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.sourceFarm.FarmID, suite.category.CategoryID).Return(sourceBalance, nil).Once()
	suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.sourceFarm.FarmID, destCategory.CategoryID).Return(destBalance, nil).Once()

	suite.mockMovementRepo.On("SaveMovementPair", mock.Anything, mock.AnythingOfType("domain.MovementPair"),
		domain.BalanceUpdate{BalanceID: sourceBalance.BalanceID, NewQuantity: 8, ExpectedVersion: 9},
		domain.BalanceUpdate{BalanceID: destBalance.BalanceID, NewQuantity: 5, ExpectedVersion: 1},
	).Return(nil).Once()

	result, err := suite.service.Reclassify(ctx, dto.ReclassifyRequest{
		FarmID:           suite.sourceFarm.FarmID,
		SourceCategoryID: suite.category.CategoryID,
		DestCategoryID:   destCategory.CategoryID,
		Quantity:         4,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.OpReclassifyOut, result.Pair.Exit.Operation)
	suite.Equal(domain.OpReclassifyIn, result.Pair.Entry.Operation)
	suite.Equal(suite.sourceFarm.FarmID, result.Pair.Entry.FarmID)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestWean_RejectsEmptyRequest() {
	ctx := context.Background()

	_, err := suite.service.Wean(ctx, dto.WeaningRequest{FarmID: suite.sourceFarm.FarmID}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransferServiceTestSuite) TestWean_MalesOnly() {
	ctx := context.Background()
	calfMale := domain.Category{CategoryID: uuid.NewString(), IsActive: true}
	steer := domain.Category{CategoryID: uuid.NewString(), IsActive: true}

	suite.mockFarmRepo.On("FindFarmByID", mock.Anything, suite.sourceFarm.FarmID).Return(&suite.sourceFarm, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryBySlug", mock.Anything, domain.SlugCalfMale).Return(&calfMale, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryBySlug", mock.Anything, domain.SlugSteer2Y).Return(&steer, nil).Once()

	sourceBalance := suite.balanceFor(suite.sourceFarm.FarmID, calfMale.CategoryID, 20, 3)
	destBalance := suite.balanceFor(suite.sourceFarm.FarmID, steer.CategoryID, 0, 1)
	suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.sourceFarm.FarmID, calfMale.CategoryID).Return(sourceBalance, nil).Once()
	suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.sourceFarm.FarmID, steer.CategoryID).Return(destBalance, nil).Once()

	suite.mockMovementRepo.On("SaveMovementPair", mock.Anything, mock.AnythingOfType("domain.MovementPair"),
		domain.BalanceUpdate{BalanceID: sourceBalance.BalanceID, NewQuantity: 12, ExpectedVersion: 3},
		domain.BalanceUpdate{BalanceID: destBalance.BalanceID, NewQuantity: 8, ExpectedVersion: 1},
	).Return(nil).Once()

	pairs, err := suite.service.Wean(ctx, dto.WeaningRequest{FarmID: suite.sourceFarm.FarmID, Males: 8}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(pairs, 1)
	suite.Equal(domain.OpWeaningOut, pairs[0].Exit.Operation)
	suite.Equal(domain.OpWeaningIn, pairs[0].Entry.Operation)
	suite.Equal(calfMale.CategoryID, pairs[0].Exit.CategoryID)
	suite.Equal(steer.CategoryID, pairs[0].Entry.CategoryID)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestWean_BothGroupsCommitSeparately() {
	ctx := context.Background()
	calfMale := domain.Category{CategoryID: uuid.NewString(), IsActive: true}
	steer := domain.Category{CategoryID: uuid.NewString(), IsActive: true}
	calfFemale := domain.Category{CategoryID: uuid.NewString(), IsActive: true}
	heifer := domain.Category{CategoryID: uuid.NewString(), IsActive: true}

	suite.mockFarmRepo.On("FindFarmByID", mock.Anything, suite.sourceFarm.FarmID).Return(&suite.sourceFarm, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryBySlug", mock.Anything, domain.SlugCalfMale).Return(&calfMale, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryBySlug", mock.Anything, domain.SlugSteer2Y).Return(&steer, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryBySlug", mock.Anything, domain.SlugCalfFemale).Return(&calfFemale, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryBySlug", mock.Anything, domain.SlugHeifer2Y).Return(&heifer, nil).Once()

	for _, categoryID := range []string{calfMale.CategoryID, steer.CategoryID, calfFemale.CategoryID, heifer.CategoryID} {
		suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.sourceFarm.FarmID, categoryID).
			Return(suite.balanceFor(suite.sourceFarm.FarmID, categoryID, 50, 1), nil).Once()
	}
	suite.mockMovementRepo.On("SaveMovementPair", mock.Anything, mock.AnythingOfType("domain.MovementPair"), mock.AnythingOfType("domain.BalanceUpdate"), mock.AnythingOfType("domain.BalanceUpdate")).Return(nil).Twice()

	pairs, err := suite.service.Wean(ctx, dto.WeaningRequest{FarmID: suite.sourceFarm.FarmID, Males: 5, Females: 7}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(pairs, 2)
	suite.NotEqual(*pairs[0].Exit.CorrelationID, *pairs[1].Exit.CorrelationID)
	suite.Equal(int64(5), pairs[0].Exit.Quantity)
	suite.Equal(int64(7), pairs[1].Exit.Quantity)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestTransfer_RetryBudgetExhausted() {
	ctx := context.Background()
	suite.mockFarmRepo.On("FindFarmByID", mock.Anything, suite.sourceFarm.FarmID).Return(&suite.sourceFarm, nil).Once()
	suite.mockFarmRepo.On("FindFarmByID", mock.Anything, suite.destFarm.FarmID).Return(&suite.destFarm, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.category.CategoryID).Return(&suite.category, nil).Once()

	suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.sourceFarm.FarmID, suite.category.CategoryID).
		Return(suite.balanceFor(suite.sourceFarm.FarmID, suite.category.CategoryID, 30, 4), nil).Times(3)
	suite.mockBalanceRepo.On("FindBalance", mock.Anything, suite.destFarm.FarmID, suite.category.CategoryID).
		Return(suite.balanceFor(suite.destFarm.FarmID, suite.category.CategoryID, 5, 2), nil).Times(3)
	suite.mockMovementRepo.On("SaveMovementPair", mock.Anything, mock.AnythingOfType("domain.MovementPair"), mock.AnythingOfType("domain.BalanceUpdate"), mock.AnythingOfType("domain.BalanceUpdate")).
		Return(apperrors.ErrConcurrencyConflict).Times(3)

	_, err := suite.service.Transfer(ctx, dto.TransferRequest{
		SourceFarmID: suite.sourceFarm.FarmID,
		DestFarmID:   suite.destFarm.FarmID,
		CategoryID:   suite.category.CategoryID,
		Quantity:     10,
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConcurrencyConflict)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func TestTransferServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}
