package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MovementDirection is the fundamental direction of a ledger entry.
type MovementDirection string

const (
	// Entry increases a stock balance.
	Entry MovementDirection = "ENTRY"
	// Exit decreases a stock balance.
	Exit MovementDirection = "EXIT"
)

// OperationType is the specific business operation behind a ledger entry.
// The direction is derived from the operation, never stored independently
// of it, so the quantity value domain stays unambiguous (always positive).
type OperationType string

const (
	// Entries
	OpBirth        OperationType = "BIRTH"
	OpWeaningIn    OperationType = "WEANING_IN"
	OpPurchase     OperationType = "PURCHASE"
	OpAdjustmentIn OperationType = "ADJUSTMENT_IN"
	OpTransferIn   OperationType = "TRANSFER_IN"
	OpReclassifyIn OperationType = "RECLASSIFY_IN"

	// Exits
	OpDeath         OperationType = "DEATH"
	OpSlaughter     OperationType = "SLAUGHTER"
	OpSale          OperationType = "SALE"
	OpDonation      OperationType = "DONATION"
	OpAdjustmentOut OperationType = "ADJUSTMENT_OUT"
	OpTransferOut   OperationType = "TRANSFER_OUT"
	OpReclassifyOut OperationType = "RECLASSIFY_OUT"
	OpWeaningOut    OperationType = "WEANING_OUT"
)

// EntryOperations lists every operation that increases a balance.
func EntryOperations() []OperationType {
	return []OperationType{OpBirth, OpWeaningIn, OpPurchase, OpAdjustmentIn, OpTransferIn, OpReclassifyIn}
}

// ExitOperations lists every operation that decreases a balance.
func ExitOperations() []OperationType {
	return []OperationType{OpDeath, OpSlaughter, OpSale, OpDonation, OpAdjustmentOut, OpTransferOut, OpReclassifyOut, OpWeaningOut}
}

// Direction resolves the movement direction implied by the operation.
func (o OperationType) Direction() (MovementDirection, error) {
	switch o {
	case OpBirth, OpWeaningIn, OpPurchase, OpAdjustmentIn, OpTransferIn, OpReclassifyIn:
		return Entry, nil
	case OpDeath, OpSlaughter, OpSale, OpDonation, OpAdjustmentOut, OpTransferOut, OpReclassifyOut, OpWeaningOut:
		return Exit, nil
	default:
		return "", fmt.Errorf("unknown operation type %q", string(o))
	}
}

// RequiresClient reports whether the operation must reference a client
// (the buyer or receiving party).
func (o OperationType) RequiresClient() bool {
	return o == OpSale || o == OpDonation
}

// RequiresDeathCause reports whether the operation must reference a death cause.
func (o OperationType) RequiresDeathCause() bool {
	return o == OpDeath
}

// IsComposite reports whether the operation is one leg of a paired
// two-movement operation and therefore carries a correlation ID.
func (o OperationType) IsComposite() bool {
	switch o {
	case OpTransferIn, OpTransferOut, OpReclassifyIn, OpReclassifyOut, OpWeaningIn, OpWeaningOut:
		return true
	}
	return false
}

// MovementMetadata carries the operation-specific facts recorded alongside a
// movement. Weights and prices use precise decimals; anything else goes in
// Extra as free-form key/value pairs.
type MovementMetadata struct {
	WeightKg   *decimal.Decimal  `json:"weightKg,omitempty"`
	TotalPrice *decimal.Decimal  `json:"totalPrice,omitempty"`
	Notes      string            `json:"notes,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// Movement is a single immutable ledger entry. Once committed it is never
// updated or deleted; corrections are new compensating movements.
type Movement struct {
	MovementID    string            `json:"movementID"` // Primary key (UUID)
	FarmID        string            `json:"farmID"`
	CategoryID    string            `json:"categoryID"`
	Direction     MovementDirection `json:"direction"`
	Operation     OperationType     `json:"operation"`
	Quantity      int64             `json:"quantity"`   // Always > 0; direction encodes the sign
	OccurredAt    time.Time         `json:"occurredAt"` // Instant the operation happened, UTC
	CorrelationID *string           `json:"correlationID,omitempty"`
	ClientID      *string           `json:"clientID,omitempty"`
	DeathCauseID  *string           `json:"deathCauseID,omitempty"`
	Metadata      MovementMetadata  `json:"metadata"`
	CreatedAt     time.Time         `json:"createdAt"`
	CreatedBy     string            `json:"createdBy"`
}

// SignedQuantity returns the quantity with the direction applied.
func (m Movement) SignedQuantity() int64 {
	if m.Direction == Exit {
		return -m.Quantity
	}
	return m.Quantity
}

// MovementFilter narrows a movement history query. Nil fields match
// everything.
type MovementFilter struct {
	FarmID     *string
	CategoryID *string
	Operation  *OperationType
	Start      *time.Time
	End        *time.Time
}

// MovementPair is the two correlated legs of a composite operation
// (transfer, reclassification, weaning). Both legs share a correlation ID
// and were committed in the same transaction.
type MovementPair struct {
	Exit  Movement `json:"exit"`
	Entry Movement `json:"entry"`
}
