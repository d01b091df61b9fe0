package domain

import "time"

// StockBalance is the cached current balance for one (farm, category) pair.
// It is a derived, disposable snapshot of the ledger: reconciliation can
// rebuild it from movement history at any time. The invariant
// CurrentQuantity >= 0 holds at all times and is enforced both in the
// services and by a check constraint in the database.
type StockBalance struct {
	BalanceID       string    `json:"balanceID"` // Primary key (UUID)
	FarmID          string    `json:"farmID"`
	CategoryID      string    `json:"categoryID"`
	CurrentQuantity int64     `json:"currentQuantity"`
	Version         int64     `json:"version"` // Optimistic concurrency revision
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TransferResult carries the committed legs of a composite operation and the
// post-commit state of both affected balance rows.
type TransferResult struct {
	Pair        MovementPair `json:"pair"`
	Source      StockBalance `json:"source"`
	Destination StockBalance `json:"destination"`
}

// BalanceUpdate describes a version-guarded write to one balance row.
// The update only applies while the row still carries ExpectedVersion;
// a losing writer gets zero rows affected and must retry from fresh state.
type BalanceUpdate struct {
	BalanceID       string
	NewQuantity     int64
	ExpectedVersion int64
}
