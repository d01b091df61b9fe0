package services

import (
	"context"

	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
)

// MovementReaderSvc defines read operations over the movement ledger
type MovementReaderSvc interface {
	// GetMovementByID retrieves a specific ledger entry by its ID.
	GetMovementByID(ctx context.Context, movementID string) (*domain.Movement, error)

	// GetMovementsByCorrelationID retrieves every leg committed under one correlation ID.
	GetMovementsByCorrelationID(ctx context.Context, correlationID string) ([]domain.Movement, error)

	// ListMovements retrieves a filtered, paginated slice of ledger history.
	ListMovements(ctx context.Context, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error)
}

// MovementWriterSvc defines the simple (single-leg) write operations
type MovementWriterSvc interface {
	// RecordEntry validates and commits an entry movement, returning the
	// committed ledger row and the post-operation balance.
	RecordEntry(ctx context.Context, req dto.RecordMovementRequest, creatorUserID string) (*domain.Movement, *domain.StockBalance, error)

	// RecordExit validates and commits an exit movement. Fails with
	// apperrors.ErrInsufficientStock when the balance would go negative.
	RecordExit(ctx context.Context, req dto.RecordMovementRequest, creatorUserID string) (*domain.Movement, *domain.StockBalance, error)
}

// MovementSvcFacade combines all ledger-writing service interfaces
type MovementSvcFacade interface {
	MovementReaderSvc
	MovementWriterSvc
}
