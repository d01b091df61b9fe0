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

type PgxDeathCauseRepository struct {
	BaseRepository
}

// newPgxDeathCauseRepository creates a new repository for death cause master data.
func newPgxDeathCauseRepository(pool *pgxpool.Pool) portsrepo.DeathCauseRepositoryFacade {
	return &PgxDeathCauseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DeathCauseRepositoryFacade = (*PgxDeathCauseRepository)(nil)

// SaveDeathCause persists a new death cause.
func (r *PgxDeathCauseRepository) SaveDeathCause(ctx context.Context, cause domain.DeathCause) error {
	query := `
		INSERT INTO death_causes (death_cause_id, name, is_active, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query,
		cause.DeathCauseID,
		cause.Name,
		cause.IsActive,
		cause.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewAppError(409, "death cause "+cause.Name+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save death cause "+cause.DeathCauseID, err)
	}
	return nil
}

// FindDeathCauseByID retrieves a death cause by its unique identifier.
func (r *PgxDeathCauseRepository) FindDeathCauseByID(ctx context.Context, deathCauseID string) (*domain.DeathCause, error) {
	query := `SELECT death_cause_id, name, is_active, created_at FROM death_causes WHERE death_cause_id = $1;`

	var m models.DeathCause
	err := r.Pool.QueryRow(ctx, query, deathCauseID).Scan(
		&m.DeathCauseID,
		&m.Name,
		&m.IsActive,
		&m.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find death cause "+deathCauseID, err)
	}

	cause := mapping.ToDomainDeathCause(m)
	return &cause, nil
}

// ListDeathCauses retrieves death causes ordered by name.
func (r *PgxDeathCauseRepository) ListDeathCauses(ctx context.Context, includeInactive bool) ([]domain.DeathCause, error) {
	query := `SELECT death_cause_id, name, is_active, created_at FROM death_causes`
	if !includeInactive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query death causes", err)
	}
	defer rows.Close()

	var causes []domain.DeathCause
	for rows.Next() {
		var m models.DeathCause
		if err := rows.Scan(
			&m.DeathCauseID,
			&m.Name,
			&m.IsActive,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan death cause row", err)
		}
		causes = append(causes, mapping.ToDomainDeathCause(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating death cause rows", err)
	}
	return causes, nil
}
