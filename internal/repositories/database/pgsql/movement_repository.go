package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AgroBov/cattle_ledger_app/internal/apperrors"
	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portsrepo "github.com/AgroBov/cattle_ledger_app/internal/core/ports/repositories"
	"github.com/AgroBov/cattle_ledger_app/internal/models"
	"github.com/AgroBov/cattle_ledger_app/internal/utils/mapping"
	"github.com/AgroBov/cattle_ledger_app/internal/utils/pagination"
)

const movementColumns = `
	movement_id, farm_id, category_id, direction, operation, quantity,
	occurred_at, correlation_id, client_id, death_cause_id, metadata,
	created_at, created_by
`

const insertMovementQuery = `
	INSERT INTO animal_movements (
		movement_id, farm_id, category_id, direction, operation, quantity,
		occurred_at, correlation_id, client_id, death_cause_id, metadata,
		created_at, created_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

// guardedBalanceUpdateQuery only touches the row while it still carries the
// expected version. Zero rows affected means a concurrent writer won.
const guardedBalanceUpdateQuery = `
	UPDATE stock_balances
	SET current_quantity = $1, version = version + 1, updated_at = $2
	WHERE balance_id = $3 AND version = $4;
`

type PgxMovementRepository struct {
	BaseRepository
}

// newPgxMovementRepository creates a new repository for the movement ledger.
func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryFacade {
	return &PgxMovementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MovementRepositoryFacade = (*PgxMovementRepository)(nil)

// SaveMovement inserts one ledger row and applies its version-guarded balance
// update inside a single database transaction.
func (r *PgxMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement, update domain.BalanceUpdate) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertMovementTx(ctx, tx, movement); err != nil {
		return err
	}
	if err := applyBalanceUpdateTx(ctx, tx, update, movement.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SaveMovementPair inserts both legs of a composite operation and applies
// both balance updates inside a single database transaction. A version
// conflict on either row aborts the whole pair.
func (r *PgxMovementRepository) SaveMovementPair(ctx context.Context, pair domain.MovementPair, exitUpdate domain.BalanceUpdate, entryUpdate domain.BalanceUpdate) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertMovementTx(ctx, tx, pair.Exit); err != nil {
		return err
	}
	if err := insertMovementTx(ctx, tx, pair.Entry); err != nil {
		return err
	}
	if err := applyBalanceUpdateTx(ctx, tx, exitUpdate, pair.Exit.CreatedAt); err != nil {
		return err
	}
	if err := applyBalanceUpdateTx(ctx, tx, entryUpdate, pair.Entry.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func insertMovementTx(ctx context.Context, tx pgx.Tx, movement domain.Movement) error {
	m, err := mapping.ToModelMovement(movement)
	if err != nil {
		return apperrors.NewAppError(500, "failed to serialize movement metadata", err)
	}

	_, err = tx.Exec(ctx, insertMovementQuery,
		m.MovementID,
		m.FarmID,
		m.CategoryID,
		m.Direction,
		m.Operation,
		m.Quantity,
		m.OccurredAt,
		m.CorrelationID,
		m.ClientID,
		m.DeathCauseID,
		m.Metadata,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return mapMovementInsertError(m.MovementID, err)
	}
	return nil
}

func applyBalanceUpdateTx(ctx context.Context, tx pgx.Tx, update domain.BalanceUpdate, now time.Time) error {
	tag, err := tx.Exec(ctx, guardedBalanceUpdateQuery,
		update.NewQuantity,
		now,
		update.BalanceID,
		update.ExpectedVersion,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" { // check_violation
			return apperrors.NewAppError(500, "balance "+update.BalanceID+" violated non-negativity constraint", apperrors.ErrIntegrityViolation)
		}
		return apperrors.NewAppError(500, "failed to update balance "+update.BalanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConcurrencyConflict
	}
	return nil
}

func mapMovementInsertError(movementID string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return apperrors.NewAppError(409, "movement "+movementID+" already exists", apperrors.ErrDuplicate)
		case "23503": // foreign_key_violation
			return apperrors.NewAppError(422, "movement "+movementID+" references missing master data", apperrors.ErrIntegrityViolation)
		case "23514": // check_violation
			return apperrors.NewAppError(500, "movement "+movementID+" violated a check constraint", apperrors.ErrIntegrityViolation)
		}
	}
	return apperrors.NewAppError(500, "failed to insert movement "+movementID, err)
}

// FindMovementByID retrieves one ledger entry.
func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM animal_movements WHERE movement_id = $1;`

	var m models.Movement
	err := r.Pool.QueryRow(ctx, query, movementID).Scan(
		&m.MovementID,
		&m.FarmID,
		&m.CategoryID,
		&m.Direction,
		&m.Operation,
		&m.Quantity,
		&m.OccurredAt,
		&m.CorrelationID,
		&m.ClientID,
		&m.DeathCauseID,
		&m.Metadata,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find movement "+movementID, err)
	}

	movement, err := mapping.ToDomainMovement(m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to decode movement "+movementID, err)
	}
	return &movement, nil
}

// FindMovementsByCorrelationID retrieves every leg committed under one
// correlation ID, exit leg first.
func (r *PgxMovementRepository) FindMovementsByCorrelationID(ctx context.Context, correlationID string) ([]domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM animal_movements WHERE correlation_id = $1 ORDER BY direction DESC, movement_id;`

	rows, err := r.Pool.Query(ctx, query, correlationID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query movements for correlation "+correlationID, err)
	}
	defer rows.Close()

	modelMovements, err := scanMovements(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainMovementSlice(modelMovements)
}

// ListMovements retrieves a filtered page of ledger history, newest first.
// Keyset pagination orders on (occurred_at, created_at, movement_id) so that
// rows sharing both timestamps still paginate without loss.
func (r *PgxMovementRepository) ListMovements(ctx context.Context, filter domain.MovementFilter, limit int, nextToken *string) ([]domain.Movement, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + movementColumns + ` FROM animal_movements WHERE 1=1`
	args := []interface{}{}

	appendArg := func(clause string, value interface{}) {
		args = append(args, value)
		query += " AND " + clause + " $" + strconv.Itoa(len(args))
	}

	if filter.FarmID != nil {
		appendArg("farm_id =", *filter.FarmID)
	}
	if filter.CategoryID != nil {
		appendArg("category_id =", *filter.CategoryID)
	}
	if filter.Operation != nil {
		appendArg("operation =", string(*filter.Operation))
	}
	if filter.Start != nil {
		appendArg("occurred_at >=", filter.Start.UTC())
	}
	if filter.End != nil {
		appendArg("occurred_at <=", filter.End.UTC())
	}

	if nextToken != nil && *nextToken != "" {
		lastOccurredAt, lastCreatedAt, lastMovementID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastOccurredAt, lastCreatedAt, lastMovementID)
		query += " AND (occurred_at, created_at, movement_id) < ($" + strconv.Itoa(len(args)-2) + ", $" + strconv.Itoa(len(args)-1) + ", $" + strconv.Itoa(len(args)) + ")"
	}

	args = append(args, fetchLimit)
	query += " ORDER BY occurred_at DESC, created_at DESC, movement_id DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query movements", err)
	}
	defer rows.Close()

	modelMovements, err := scanMovements(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	results := modelMovements
	if len(modelMovements) > limit {
		last := modelMovements[limit-1]
		newToken := pagination.EncodeToken(last.OccurredAt, last.CreatedAt, last.MovementID)
		nextTokenVal = &newToken
		results = modelMovements[:limit]
	}

	movements, err := mapping.ToDomainMovementSlice(results)
	if err != nil {
		return nil, nil, err
	}
	return movements, nextTokenVal, nil
}

func scanMovements(rows pgx.Rows) ([]models.Movement, error) {
	var modelMovements []models.Movement
	for rows.Next() {
		var m models.Movement
		if err := rows.Scan(
			&m.MovementID,
			&m.FarmID,
			&m.CategoryID,
			&m.Direction,
			&m.Operation,
			&m.Quantity,
			&m.OccurredAt,
			&m.CorrelationID,
			&m.ClientID,
			&m.DeathCauseID,
			&m.Metadata,
			&m.CreatedAt,
			&m.CreatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan movement row", err)
		}
		modelMovements = append(modelMovements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating movement rows", err)
	}
	return modelMovements, nil
}

// signedSumExpr folds the direction into a signed quantity.
const signedSumExpr = `COALESCE(SUM(CASE WHEN direction = 'ENTRY' THEN quantity ELSE -quantity END), 0)`

// SignedSumBefore returns the signed sum of movements strictly before cutoff.
func (r *PgxMovementRepository) SignedSumBefore(ctx context.Context, farmID, categoryID string, cutoff time.Time) (int64, error) {
	query := `SELECT ` + signedSumExpr + ` FROM animal_movements WHERE farm_id = $1 AND category_id = $2 AND occurred_at < $3;`
	return r.signedSum(ctx, query, farmID, categoryID, cutoff)
}

// SignedSumAsOf returns the signed sum of movements at or before asOf.
func (r *PgxMovementRepository) SignedSumAsOf(ctx context.Context, farmID, categoryID string, asOf time.Time) (int64, error) {
	query := `SELECT ` + signedSumExpr + ` FROM animal_movements WHERE farm_id = $1 AND category_id = $2 AND occurred_at <= $3;`
	return r.signedSum(ctx, query, farmID, categoryID, asOf)
}

// SignedSumAll returns the signed sum of the whole ledger for one pair.
func (r *PgxMovementRepository) SignedSumAll(ctx context.Context, farmID, categoryID string) (int64, error) {
	query := `SELECT ` + signedSumExpr + ` FROM animal_movements WHERE farm_id = $1 AND category_id = $2;`
	return r.signedSum(ctx, query, farmID, categoryID)
}

func (r *PgxMovementRepository) signedSum(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var sum int64
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return 0, apperrors.NewAppError(500, "failed to compute ledger sum", err)
	}
	return sum, nil
}

// SumByOperation returns per-operation quantity totals over [start, end].
func (r *PgxMovementRepository) SumByOperation(ctx context.Context, farmID, categoryID string, start, end time.Time) (map[domain.OperationType]int64, error) {
	query := `
		SELECT operation, COALESCE(SUM(quantity), 0)
		FROM animal_movements
		WHERE farm_id = $1 AND category_id = $2 AND occurred_at >= $3 AND occurred_at <= $4
		GROUP BY operation;
	`
	rows, err := r.Pool.Query(ctx, query, farmID, categoryID, start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to compute per-operation totals", err)
	}
	defer rows.Close()

	sums := make(map[domain.OperationType]int64)
	for rows.Next() {
		var operation string
		var total int64
		if err := rows.Scan(&operation, &total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan operation total", err)
		}
		sums[domain.OperationType(operation)] = total
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating operation totals", err)
	}
	return sums, nil
}
