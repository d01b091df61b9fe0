package dto

import (
	"time"

	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
)

// TransferRequest is the payload for a farm-to-farm transfer.
type TransferRequest struct {
	SourceFarmID string                   `json:"sourceFarmID" binding:"required,uuid"`
	DestFarmID   string                   `json:"destFarmID" binding:"required,uuid"`
	CategoryID   string                   `json:"categoryID" binding:"required,uuid"`
	Quantity     int64                    `json:"quantity" binding:"required,gt=0"`
	OccurredAt   *time.Time               `json:"occurredAt,omitempty"`
	Metadata     *MovementMetadataRequest `json:"metadata,omitempty"`
}

// ReclassifyRequest is the payload for a category reclassification within a
// single farm.
type ReclassifyRequest struct {
	FarmID           string                   `json:"farmID" binding:"required,uuid"`
	SourceCategoryID string                   `json:"sourceCategoryID" binding:"required,uuid"`
	DestCategoryID   string                   `json:"destCategoryID" binding:"required,uuid"`
	Quantity         int64                    `json:"quantity" binding:"required,gt=0"`
	OccurredAt       *time.Time               `json:"occurredAt,omitempty"`
	Metadata         *MovementMetadataRequest `json:"metadata,omitempty"`
}

// WeaningRequest is the payload for the fixed-rule weaning reclassification.
// At least one quantity must be positive.
type WeaningRequest struct {
	FarmID     string     `json:"farmID" binding:"required,uuid"`
	Males      int64      `json:"males" binding:"gte=0"`
	Females    int64      `json:"females" binding:"gte=0"`
	OccurredAt *time.Time `json:"occurredAt,omitempty"`
}

// MovementPairResponse is the two correlated legs of a composite operation.
type MovementPairResponse struct {
	Exit  MovementResponse `json:"exit"`
	Entry MovementResponse `json:"entry"`
}

// TransferResponse reports a completed composite operation alongside the
// resulting balances of both affected rows.
type TransferResponse struct {
	Pair                MovementPairResponse `json:"pair"`
	SourceQuantity      int64                `json:"sourceQuantity"`
	DestinationQuantity int64                `json:"destinationQuantity"`
}

// WeaningResponse reports every pair committed by a weaning operation.
type WeaningResponse struct {
	Pairs []MovementPairResponse `json:"pairs"`
}

// ToMovementPairResponse converts a domain MovementPair.
func ToMovementPairResponse(p domain.MovementPair) MovementPairResponse {
	return MovementPairResponse{
		Exit:  ToMovementResponse(&p.Exit),
		Entry: ToMovementResponse(&p.Entry),
	}
}
