package services_test

import (
	"context"
	"time"

	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portsrepo "github.com/AgroBov/cattle_ledger_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock MovementRepository ---
type MockMovementRepository struct {
	mock.Mock
}

var _ portsrepo.MovementRepositoryFacade = (*MockMovementRepository)(nil)

func (m *MockMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) FindMovementsByCorrelationID(ctx context.Context, correlationID string) ([]domain.Movement, error) {
	args := m.Called(ctx, correlationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, filter domain.MovementFilter, limit int, nextToken *string) ([]domain.Movement, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Movement), returnedNextToken, args.Error(2)
}

func (m *MockMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement, update domain.BalanceUpdate) error {
	args := m.Called(ctx, movement, update)
	return args.Error(0)
}

func (m *MockMovementRepository) SaveMovementPair(ctx context.Context, pair domain.MovementPair, exitUpdate domain.BalanceUpdate, entryUpdate domain.BalanceUpdate) error {
	args := m.Called(ctx, pair, exitUpdate, entryUpdate)
	return args.Error(0)
}

func (m *MockMovementRepository) SignedSumBefore(ctx context.Context, farmID, categoryID string, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, farmID, categoryID, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovementRepository) SignedSumAsOf(ctx context.Context, farmID, categoryID string, asOf time.Time) (int64, error) {
	args := m.Called(ctx, farmID, categoryID, asOf)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovementRepository) SignedSumAll(ctx context.Context, farmID, categoryID string) (int64, error) {
	args := m.Called(ctx, farmID, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovementRepository) SumByOperation(ctx context.Context, farmID, categoryID string, start, end time.Time) (map[domain.OperationType]int64, error) {
	args := m.Called(ctx, farmID, categoryID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.OperationType]int64), args.Error(1)
}

// --- Mock BalanceRepository ---
type MockBalanceRepository struct {
	mock.Mock
}

var _ portsrepo.BalanceRepositoryFacade = (*MockBalanceRepository)(nil)

func (m *MockBalanceRepository) FindBalance(ctx context.Context, farmID, categoryID string) (*domain.StockBalance, error) {
	args := m.Called(ctx, farmID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockBalance), args.Error(1)
}

func (m *MockBalanceRepository) ListBalancesByFarm(ctx context.Context, farmID string) ([]domain.StockBalance, error) {
	args := m.Called(ctx, farmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockBalance), args.Error(1)
}

func (m *MockBalanceRepository) ListAllBalances(ctx context.Context) ([]domain.StockBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockBalance), args.Error(1)
}

func (m *MockBalanceRepository) EnsureBalance(ctx context.Context, farmID, categoryID string, creatorUserID string) (*domain.StockBalance, error) {
	args := m.Called(ctx, farmID, categoryID, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockBalance), args.Error(1)
}

func (m *MockBalanceRepository) OverwriteBalance(ctx context.Context, update domain.BalanceUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

// --- Mock FarmRepository ---
type MockFarmRepository struct {
	mock.Mock
}

var _ portsrepo.FarmRepositoryFacade = (*MockFarmRepository)(nil)

func (m *MockFarmRepository) SaveFarm(ctx context.Context, farm domain.Farm) error {
	args := m.Called(ctx, farm)
	return args.Error(0)
}

func (m *MockFarmRepository) FindFarmByID(ctx context.Context, farmID string) (*domain.Farm, error) {
	args := m.Called(ctx, farmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farm), args.Error(1)
}

func (m *MockFarmRepository) ListFarms(ctx context.Context, includeInactive bool) ([]domain.Farm, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Farm), args.Error(1)
}

func (m *MockFarmRepository) UpdateFarm(ctx context.Context, farm domain.Farm) error {
	args := m.Called(ctx, farm)
	return args.Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, includeInactive bool) ([]domain.Category, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, includeInactive bool) ([]domain.Client, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

// --- Mock DeathCauseRepository ---
type MockDeathCauseRepository struct {
	mock.Mock
}

var _ portsrepo.DeathCauseRepositoryFacade = (*MockDeathCauseRepository)(nil)

func (m *MockDeathCauseRepository) SaveDeathCause(ctx context.Context, cause domain.DeathCause) error {
	args := m.Called(ctx, cause)
	return args.Error(0)
}

func (m *MockDeathCauseRepository) FindDeathCauseByID(ctx context.Context, deathCauseID string) (*domain.DeathCause, error) {
	args := m.Called(ctx, deathCauseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeathCause), args.Error(1)
}

func (m *MockDeathCauseRepository) ListDeathCauses(ctx context.Context, includeInactive bool) ([]domain.DeathCause, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeathCause), args.Error(1)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetCategoryPeriodRows(ctx context.Context, farmID string, from, to time.Time) ([]domain.CategoryPeriodRow, error) {
	args := m.Called(ctx, farmID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryPeriodRow), args.Error(1)
}

func (m *MockReportingRepository) GetMovementDetails(ctx context.Context, farmID string, from, to time.Time) ([]domain.MovementDetail, error) {
	args := m.Called(ctx, farmID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MovementDetail), args.Error(1)
}
