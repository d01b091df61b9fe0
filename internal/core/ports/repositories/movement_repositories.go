package repositories

import (
	"context"
	"time"

	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
)

// MovementReader defines read operations over the movement ledger
type MovementReader interface {
	// FindMovementByID retrieves a specific ledger entry by its unique identifier.
	FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error)

	// FindMovementsByCorrelationID retrieves every leg committed under one correlation ID.
	FindMovementsByCorrelationID(ctx context.Context, correlationID string) ([]domain.Movement, error)

	// ListMovements retrieves a filtered, paginated slice of ledger history using token-based pagination.
	// It returns the movements, a token for the next page, and an error.
	ListMovements(ctx context.Context, filter domain.MovementFilter, limit int, nextToken *string) ([]domain.Movement, *string, error)
}

// MovementWriter defines the atomic write operations of the ledger. Each call
// commits the ledger rows and the version-guarded balance updates in a single
// database transaction; a stale ExpectedVersion fails the whole call with
// apperrors.ErrConcurrencyConflict.
type MovementWriter interface {
	// SaveMovement persists one ledger entry and applies its balance update atomically.
	SaveMovement(ctx context.Context, movement domain.Movement, update domain.BalanceUpdate) error

	// SaveMovementPair persists both legs of a composite operation and applies
	// both balance updates atomically. Either everything commits or nothing does.
	SaveMovementPair(ctx context.Context, pair domain.MovementPair, exitUpdate domain.BalanceUpdate, entryUpdate domain.BalanceUpdate) error
}

// LedgerAggregator defines signed-sum calculations over the ledger. These are
// the source of truth that snapshots are verified and rebuilt against.
type LedgerAggregator interface {
	// SignedSumBefore returns the signed quantity sum of movements that
	// occurred strictly before the cutoff.
	SignedSumBefore(ctx context.Context, farmID, categoryID string, cutoff time.Time) (int64, error)

	// SignedSumAsOf returns the signed quantity sum of movements that
	// occurred at or before the given instant.
	SignedSumAsOf(ctx context.Context, farmID, categoryID string, asOf time.Time) (int64, error)

	// SignedSumAll returns the signed quantity sum of the full ledger for one
	// (farm, category) pair.
	SignedSumAll(ctx context.Context, farmID, categoryID string) (int64, error)

	// SumByOperation returns per-operation quantity totals over [start, end].
	SumByOperation(ctx context.Context, farmID, categoryID string, start, end time.Time) (map[domain.OperationType]int64, error)
}

// MovementRepositoryFacade combines all ledger repository interfaces
// This is a facade for clients that need access to all operations
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
	LedgerAggregator
}
