package models

import "time"

// Movement mirrors the animal_movements ledger table. Rows are append-only;
// there are no update or delete paths for this model.
type Movement struct {
	MovementID    string    `json:"movementID"`
	FarmID        string    `json:"farmID"`
	CategoryID    string    `json:"categoryID"`
	Direction     string    `json:"direction"` // ENTRY or EXIT
	Operation     string    `json:"operation"`
	Quantity      int64     `json:"quantity"`
	OccurredAt    time.Time `json:"occurredAt"`
	CorrelationID *string   `json:"correlationID,omitempty"`
	ClientID      *string   `json:"clientID,omitempty"`
	DeathCauseID  *string   `json:"deathCauseID,omitempty"`
	Metadata      []byte    `json:"metadata"` // JSONB payload
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
}
