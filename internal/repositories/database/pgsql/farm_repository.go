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

const farmColumns = `farm_id, name, location, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxFarmRepository struct {
	BaseRepository
}

// newPgxFarmRepository creates a new repository for farm master data.
func newPgxFarmRepository(pool *pgxpool.Pool) portsrepo.FarmRepositoryFacade {
	return &PgxFarmRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FarmRepositoryFacade = (*PgxFarmRepository)(nil)

// SaveFarm persists a new farm.
func (r *PgxFarmRepository) SaveFarm(ctx context.Context, farm domain.Farm) error {
	m := mapping.ToModelFarm(farm)
	query := `
		INSERT INTO farms (farm_id, name, location, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.FarmID,
		m.Name,
		m.Location,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewAppError(409, "farm "+m.FarmID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save farm "+m.FarmID, err)
	}
	return nil
}

// FindFarmByID retrieves a farm by its unique identifier.
func (r *PgxFarmRepository) FindFarmByID(ctx context.Context, farmID string) (*domain.Farm, error) {
	query := `SELECT ` + farmColumns + ` FROM farms WHERE farm_id = $1;`

	var m models.Farm
	err := r.Pool.QueryRow(ctx, query, farmID).Scan(
		&m.FarmID,
		&m.Name,
		&m.Location,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find farm "+farmID, err)
	}

	farm := mapping.ToDomainFarm(m)
	return &farm, nil
}

// ListFarms retrieves farms ordered by name.
func (r *PgxFarmRepository) ListFarms(ctx context.Context, includeInactive bool) ([]domain.Farm, error) {
	query := `SELECT ` + farmColumns + ` FROM farms`
	if !includeInactive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query farms", err)
	}
	defer rows.Close()

	var farms []domain.Farm
	for rows.Next() {
		var m models.Farm
		if err := rows.Scan(
			&m.FarmID,
			&m.Name,
			&m.Location,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan farm row", err)
		}
		farms = append(farms, mapping.ToDomainFarm(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating farm rows", err)
	}
	return farms, nil
}

// UpdateFarm persists changes to an existing farm.
func (r *PgxFarmRepository) UpdateFarm(ctx context.Context, farm domain.Farm) error {
	m := mapping.ToModelFarm(farm)
	query := `
		UPDATE farms
		SET name = $1, location = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE farm_id = $6;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Location,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.FarmID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update farm "+m.FarmID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
