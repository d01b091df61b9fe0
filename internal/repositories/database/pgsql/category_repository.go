package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AgroBov/cattle_ledger_app/internal/apperrors"
	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portsrepo "github.com/AgroBov/cattle_ledger_app/internal/core/ports/repositories"
	"github.com/AgroBov/cattle_ledger_app/internal/models"
	"github.com/AgroBov/cattle_ledger_app/internal/utils/mapping"
)

const categoryColumns = `category_id, name, slug, description, is_system, is_active, display_order, created_at`

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category master data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// SaveCategory persists a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		INSERT INTO animal_categories (category_id, name, slug, description, is_system, is_active, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.Name,
		m.Slug,
		m.Description,
		m.IsSystem,
		m.IsActive,
		m.DisplayOrder,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewAppError(409, "category "+m.Name+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save category "+m.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by its unique identifier.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM animal_categories WHERE category_id = $1;`
	return r.findOne(ctx, query, categoryID)
}

// FindCategoryBySlug retrieves a system category by its programmatic slug.
func (r *PgxCategoryRepository) FindCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM animal_categories WHERE slug = $1;`
	return r.findOne(ctx, query, slug)
}

func (r *PgxCategoryRepository) findOne(ctx context.Context, query string, arg interface{}) (*domain.Category, error) {
	var m models.Category
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.CategoryID,
		&m.Name,
		&m.Slug,
		&m.Description,
		&m.IsSystem,
		&m.IsActive,
		&m.DisplayOrder,
		&m.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find category", err)
	}

	category := mapping.ToDomainCategory(m)
	return &category, nil
}

// ListCategories retrieves categories ordered by display order.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, includeInactive bool) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM animal_categories`
	if !includeInactive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY display_order, name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var m models.Category
		if err := rows.Scan(
			&m.CategoryID,
			&m.Name,
			&m.Slug,
			&m.Description,
			&m.IsSystem,
			&m.IsActive,
			&m.DisplayOrder,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category row", err)
		}
		categories = append(categories, mapping.ToDomainCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category rows", err)
	}
	return categories, nil
}

// UpdateCategory persists changes to an existing category.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		UPDATE animal_categories
		SET name = $1, description = $2, is_active = $3, display_order = $4
		WHERE category_id = $5;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Description,
		m.IsActive,
		m.DisplayOrder,
		m.CategoryID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update category "+m.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
