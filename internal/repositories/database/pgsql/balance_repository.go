package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AgroBov/cattle_ledger_app/internal/apperrors"
	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portsrepo "github.com/AgroBov/cattle_ledger_app/internal/core/ports/repositories"
	"github.com/AgroBov/cattle_ledger_app/internal/models"
	"github.com/AgroBov/cattle_ledger_app/internal/utils/mapping"
)

const balanceColumns = `balance_id, farm_id, category_id, current_quantity, version, updated_at`

type PgxBalanceRepository struct {
	BaseRepository
}

// newPgxBalanceRepository creates a new repository for the snapshot table.
func newPgxBalanceRepository(pool *pgxpool.Pool) portsrepo.BalanceRepositoryFacade {
	return &PgxBalanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BalanceRepositoryFacade = (*PgxBalanceRepository)(nil)

// FindBalance retrieves the snapshot row for one (farm, category) pair.
func (r *PgxBalanceRepository) FindBalance(ctx context.Context, farmID, categoryID string) (*domain.StockBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM stock_balances WHERE farm_id = $1 AND category_id = $2;`

	var m models.StockBalance
	err := r.Pool.QueryRow(ctx, query, farmID, categoryID).Scan(
		&m.BalanceID,
		&m.FarmID,
		&m.CategoryID,
		&m.CurrentQuantity,
		&m.Version,
		&m.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find balance for farm "+farmID, err)
	}

	balance := mapping.ToDomainStockBalance(m)
	return &balance, nil
}

// ListBalancesByFarm retrieves every snapshot row of a farm.
func (r *PgxBalanceRepository) ListBalancesByFarm(ctx context.Context, farmID string) ([]domain.StockBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM stock_balances WHERE farm_id = $1 ORDER BY category_id;`
	rows, err := r.Pool.Query(ctx, query, farmID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query balances for farm "+farmID, err)
	}
	defer rows.Close()
	return scanBalances(rows)
}

// ListAllBalances retrieves every snapshot row in the system.
func (r *PgxBalanceRepository) ListAllBalances(ctx context.Context) ([]domain.StockBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM stock_balances ORDER BY farm_id, category_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query balances", err)
	}
	defer rows.Close()
	return scanBalances(rows)
}

// EnsureBalance idempotently creates the zero-quantity snapshot row for a
// (farm, category) pair and returns the row, existing or new. Concurrent
// callers race harmlessly on the unique constraint.
func (r *PgxBalanceRepository) EnsureBalance(ctx context.Context, farmID, categoryID string, creatorUserID string) (*domain.StockBalance, error) {
	query := `
		INSERT INTO stock_balances (balance_id, farm_id, category_id, current_quantity, version, updated_at)
		VALUES ($1, $2, $3, 0, 1, $4)
		ON CONFLICT (farm_id, category_id) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query, uuid.NewString(), farmID, categoryID, time.Now().UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return nil, apperrors.NewAppError(422, "balance references missing farm or category", apperrors.ErrIntegrityViolation)
		}
		return nil, apperrors.NewAppError(500, "failed to ensure balance for farm "+farmID, err)
	}

	return r.FindBalance(ctx, farmID, categoryID)
}

// OverwriteBalance applies a version-guarded write to one snapshot row.
func (r *PgxBalanceRepository) OverwriteBalance(ctx context.Context, update domain.BalanceUpdate) error {
	tag, err := r.Pool.Exec(ctx, guardedBalanceUpdateQuery,
		update.NewQuantity,
		time.Now().UTC(),
		update.BalanceID,
		update.ExpectedVersion,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" { // check_violation
			return apperrors.NewAppError(500, "balance "+update.BalanceID+" violated non-negativity constraint", apperrors.ErrIntegrityViolation)
		}
		return apperrors.NewAppError(500, "failed to overwrite balance "+update.BalanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConcurrencyConflict
	}
	return nil
}

func scanBalances(rows pgx.Rows) ([]domain.StockBalance, error) {
	var modelBalances []models.StockBalance
	for rows.Next() {
		var m models.StockBalance
		if err := rows.Scan(
			&m.BalanceID,
			&m.FarmID,
			&m.CategoryID,
			&m.CurrentQuantity,
			&m.Version,
			&m.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan balance row", err)
		}
		modelBalances = append(modelBalances, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating balance rows", err)
	}
	return mapping.ToDomainStockBalanceSlice(modelBalances), nil
}
