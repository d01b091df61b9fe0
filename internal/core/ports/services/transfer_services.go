package services

import (
	"context"

	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
)

// TransferSvcFacade defines the composite (paired-leg) operations. Every
// operation commits both legs and both balance updates atomically; partial
// application is impossible.
type TransferSvcFacade interface {
	// Transfer moves animals of one category between two farms.
	Transfer(ctx context.Context, req dto.TransferRequest, creatorUserID string) (*domain.TransferResult, error)

	// Reclassify moves animals between two categories within one farm.
	Reclassify(ctx context.Context, req dto.ReclassifyRequest, creatorUserID string) (*domain.TransferResult, error)

	// Wean applies the fixed weaning rules: male calves become steers,
	// female calves become heifers. One pair is committed per nonzero
	// quantity.
	Wean(ctx context.Context, req dto.WeaningRequest, creatorUserID string) ([]domain.MovementPair, error)
}
