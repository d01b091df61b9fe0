package services

import (
	"context"

	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
)

// FarmSvcFacade defines the farm master data operations
type FarmSvcFacade interface {
	// CreateFarm registers a new farm and provisions its snapshot rows.
	CreateFarm(ctx context.Context, req dto.CreateFarmRequest, creatorUserID string) (*domain.Farm, error)

	// GetFarmByID retrieves a farm by its ID.
	GetFarmByID(ctx context.Context, farmID string) (*domain.Farm, error)

	// ListFarms retrieves farms, optionally including deactivated ones.
	ListFarms(ctx context.Context, includeInactive bool) ([]domain.Farm, error)

	// UpdateFarm applies a partial update to a farm.
	UpdateFarm(ctx context.Context, farmID string, req dto.UpdateFarmRequest, requestingUserID string) (*domain.Farm, error)

	// DeactivateFarm marks a farm inactive. Ledger history is never deleted.
	DeactivateFarm(ctx context.Context, farmID string, requestingUserID string) error
}

// CategorySvcFacade defines the animal category master data operations
type CategorySvcFacade interface {
	// CreateCategory registers a custom category and provisions its snapshot rows.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)

	// GetCategoryByID retrieves a category by its ID.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// GetCategoryBySlug retrieves a system category by its programmatic slug.
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)

	// ListCategories retrieves categories ordered by display order.
	ListCategories(ctx context.Context, includeInactive bool) ([]domain.Category, error)

	// DeactivateCategory marks a custom category inactive. System categories
	// cannot be deactivated.
	DeactivateCategory(ctx context.Context, categoryID string, requestingUserID string) error
}

// ClientSvcFacade defines the client master data operations
type ClientSvcFacade interface {
	// CreateClient registers a new client.
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error)

	// GetClientByID retrieves a client by its ID.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves clients, optionally including deactivated ones.
	ListClients(ctx context.Context, includeInactive bool) ([]domain.Client, error)

	// DeactivateClient marks a client inactive.
	DeactivateClient(ctx context.Context, clientID string, requestingUserID string) error
}

// DeathCauseSvcFacade defines the death cause master data operations
type DeathCauseSvcFacade interface {
	// CreateDeathCause registers a new death cause.
	CreateDeathCause(ctx context.Context, req dto.CreateDeathCauseRequest, creatorUserID string) (*domain.DeathCause, error)

	// GetDeathCauseByID retrieves a death cause by its ID.
	GetDeathCauseByID(ctx context.Context, deathCauseID string) (*domain.DeathCause, error)

	// ListDeathCauses retrieves death causes, optionally including deactivated ones.
	ListDeathCauses(ctx context.Context, includeInactive bool) ([]domain.DeathCause, error)
}
