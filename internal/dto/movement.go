package dto

import (
	"time"

	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MovementMetadataRequest carries the optional operation-specific facts of a
// movement request.
type MovementMetadataRequest struct {
	WeightKg   *decimal.Decimal  `json:"weightKg,omitempty"`
	TotalPrice *decimal.Decimal  `json:"totalPrice,omitempty"`
	Notes      string            `json:"notes,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// ToDomainMetadata converts the request metadata to its domain form.
func (m *MovementMetadataRequest) ToDomainMetadata() domain.MovementMetadata {
	if m == nil {
		return domain.MovementMetadata{}
	}
	return domain.MovementMetadata{
		WeightKg:   m.WeightKg,
		TotalPrice: m.TotalPrice,
		Notes:      m.Notes,
		Extra:      m.Extra,
	}
}

// RecordMovementRequest is the payload for recording a simple entry or exit.
type RecordMovementRequest struct {
	FarmID       string                   `json:"farmID" binding:"required,uuid"`
	CategoryID   string                   `json:"categoryID" binding:"required,uuid"`
	Operation    string                   `json:"operation" binding:"required"`
	Quantity     int64                    `json:"quantity" binding:"required,gt=0"`
	OccurredAt   *time.Time               `json:"occurredAt,omitempty"` // Defaults to now
	ClientID     *string                  `json:"clientID,omitempty"`
	DeathCauseID *string                  `json:"deathCauseID,omitempty"`
	Metadata     *MovementMetadataRequest `json:"metadata,omitempty"`
}

// MovementResponse is the data returned for a single ledger entry.
type MovementResponse struct {
	MovementID    string                  `json:"movementID"`
	FarmID        string                  `json:"farmID"`
	CategoryID    string                  `json:"categoryID"`
	Direction     string                  `json:"direction"`
	Operation     string                  `json:"operation"`
	Quantity      int64                   `json:"quantity"`
	OccurredAt    time.Time               `json:"occurredAt"`
	CorrelationID *string                 `json:"correlationID,omitempty"`
	ClientID      *string                 `json:"clientID,omitempty"`
	DeathCauseID  *string                 `json:"deathCauseID,omitempty"`
	Metadata      domain.MovementMetadata `json:"metadata"`
	CreatedAt     time.Time               `json:"createdAt"`
	CreatedBy     string                  `json:"createdBy"`
}

// RecordMovementResponse pairs the created movement with the post-operation
// balance.
type RecordMovementResponse struct {
	Movement          MovementResponse `json:"movement"`
	ResultingQuantity int64            `json:"resultingQuantity"`
}

// ListMovementsParams holds filters and pagination for movement history.
type ListMovementsParams struct {
	FarmID     *string    `form:"farmID"`
	CategoryID *string    `form:"categoryID"`
	Operation  *string    `form:"operation"`
	Start      *time.Time `form:"start" time_format:"2006-01-02T15:04:05Z07:00"`
	End        *time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit      int        `form:"limit"`
	NextToken  *string    `form:"nextToken"`
}

// ListMovementsResponse is a page of movement history.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToMovementResponse converts a domain Movement to its response DTO.
func ToMovementResponse(m *domain.Movement) MovementResponse {
	return MovementResponse{
		MovementID:    m.MovementID,
		FarmID:        m.FarmID,
		CategoryID:    m.CategoryID,
		Direction:     string(m.Direction),
		Operation:     string(m.Operation),
		Quantity:      m.Quantity,
		OccurredAt:    m.OccurredAt,
		CorrelationID: m.CorrelationID,
		ClientID:      m.ClientID,
		DeathCauseID:  m.DeathCauseID,
		Metadata:      m.Metadata,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// ToMovementResponses converts a slice of domain Movements.
func ToMovementResponses(ms []domain.Movement) []MovementResponse {
	responses := make([]MovementResponse, len(ms))
	for i := range ms {
		responses[i] = ToMovementResponse(&ms[i])
	}
	return responses
}
