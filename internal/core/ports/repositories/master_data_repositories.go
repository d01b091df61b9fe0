package repositories

import (
	"context"

	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
)

// FarmRepositoryFacade defines persistence operations for farms
type FarmRepositoryFacade interface {
	// SaveFarm persists a new farm.
	SaveFarm(ctx context.Context, farm domain.Farm) error

	// FindFarmByID retrieves a farm by its unique identifier.
	FindFarmByID(ctx context.Context, farmID string) (*domain.Farm, error)

	// ListFarms retrieves farms, optionally including deactivated ones.
	ListFarms(ctx context.Context, includeInactive bool) ([]domain.Farm, error)

	// UpdateFarm persists changes to an existing farm.
	UpdateFarm(ctx context.Context, farm domain.Farm) error
}

// CategoryRepositoryFacade defines persistence operations for animal categories
type CategoryRepositoryFacade interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// FindCategoryByID retrieves a category by its unique identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// FindCategoryBySlug retrieves a system category by its programmatic slug.
	FindCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)

	// ListCategories retrieves categories ordered by display order.
	ListCategories(ctx context.Context, includeInactive bool) ([]domain.Category, error)

	// UpdateCategory persists changes to an existing category.
	UpdateCategory(ctx context.Context, category domain.Category) error
}

// ClientRepositoryFacade defines persistence operations for clients
type ClientRepositoryFacade interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// FindClientByID retrieves a client by its unique identifier.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves clients, optionally including deactivated ones.
	ListClients(ctx context.Context, includeInactive bool) ([]domain.Client, error)

	// UpdateClient persists changes to an existing client.
	UpdateClient(ctx context.Context, client domain.Client) error
}

// DeathCauseRepositoryFacade defines persistence operations for death causes
type DeathCauseRepositoryFacade interface {
	// SaveDeathCause persists a new death cause.
	SaveDeathCause(ctx context.Context, cause domain.DeathCause) error

	// FindDeathCauseByID retrieves a death cause by its unique identifier.
	FindDeathCauseByID(ctx context.Context, deathCauseID string) (*domain.DeathCause, error)

	// ListDeathCauses retrieves death causes, optionally including deactivated ones.
	ListDeathCauses(ctx context.Context, includeInactive bool) ([]domain.DeathCause, error)
}
