package mapping

import (
	"encoding/json"

	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	"github.com/AgroBov/cattle_ledger_app/internal/models"
)

// ToModelMovement converts a domain Movement to a model Movement.
// Metadata is serialized to JSON for the JSONB column.
func ToModelMovement(d domain.Movement) (models.Movement, error) {
	meta, err := json.Marshal(d.Metadata)
	if err != nil {
		return models.Movement{}, err
	}
	return models.Movement{
		MovementID:    d.MovementID,
		FarmID:        d.FarmID,
		CategoryID:    d.CategoryID,
		Direction:     string(d.Direction),
		Operation:     string(d.Operation),
		Quantity:      d.Quantity,
		OccurredAt:    d.OccurredAt,
		CorrelationID: d.CorrelationID,
		ClientID:      d.ClientID,
		DeathCauseID:  d.DeathCauseID,
		Metadata:      meta,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}, nil
}

// ToDomainMovement converts a model Movement to a domain Movement.
func ToDomainMovement(m models.Movement) (domain.Movement, error) {
	var meta domain.MovementMetadata
	if len(m.Metadata) > 0 {
		if err := json.Unmarshal(m.Metadata, &meta); err != nil {
			return domain.Movement{}, err
		}
	}
	return domain.Movement{
		MovementID:    m.MovementID,
		FarmID:        m.FarmID,
		CategoryID:    m.CategoryID,
		Direction:     domain.MovementDirection(m.Direction),
		Operation:     domain.OperationType(m.Operation),
		Quantity:      m.Quantity,
		OccurredAt:    m.OccurredAt,
		CorrelationID: m.CorrelationID,
		ClientID:      m.ClientID,
		DeathCauseID:  m.DeathCauseID,
		Metadata:      meta,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}, nil
}

// ToDomainMovementSlice converts a slice of model Movements to domain Movements.
func ToDomainMovementSlice(ms []models.Movement) ([]domain.Movement, error) {
	ds := make([]domain.Movement, len(ms))
	for i, m := range ms {
		d, err := ToDomainMovement(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
