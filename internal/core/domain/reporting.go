package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStock is the ledger-derived stock movement summary for one
// (farm, category) pair over [Start, End]. Opening is the signed sum of all
// movements strictly before Start; Closing = Opening + signed period sum.
type PeriodStock struct {
	FarmID     string                  `json:"farmID"`
	CategoryID string                  `json:"categoryID"`
	Start      time.Time               `json:"start"`
	End        time.Time               `json:"end"`
	Opening    int64                   `json:"opening"`
	Entries    map[OperationType]int64 `json:"entries"`
	Exits      map[OperationType]int64 `json:"exits"`
	Closing    int64                   `json:"closing"`
}

// ConsistencyReport compares a snapshot row against the ledger-derived sum.
type ConsistencyReport struct {
	FarmID         string `json:"farmID"`
	CategoryID     string `json:"categoryID"`
	Consistent     bool   `json:"consistent"`
	SnapshotValue  int64  `json:"snapshotValue"`
	LedgerValue    int64  `json:"ledgerValue"`
	Drift          int64  `json:"drift"`
	BalanceVersion int64  `json:"balanceVersion"`
}

// CategoryPeriodRow is one category line of a farm report.
type CategoryPeriodRow struct {
	CategoryID   string                  `json:"categoryID"`
	CategoryName string                  `json:"categoryName"`
	Opening      int64                   `json:"opening"`
	Entries      map[OperationType]int64 `json:"entries"`
	Exits        map[OperationType]int64 `json:"exits"`
	Closing      int64                   `json:"closing"`
}

// MovementDetail is one detail line (death, sale, slaughter, donation) of a
// farm report.
type MovementDetail struct {
	OccurredAt   time.Time        `json:"occurredAt"`
	CategoryName string           `json:"categoryName"`
	Operation    OperationType    `json:"operation"`
	Quantity     int64            `json:"quantity"`
	ClientName   string           `json:"clientName,omitempty"`
	DeathCause   string           `json:"deathCause,omitempty"`
	WeightKg     *decimal.Decimal `json:"weightKg,omitempty"`
	TotalPrice   *decimal.Decimal `json:"totalPrice,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}

// FarmReport is the period stock report for a single farm.
type FarmReport struct {
	FarmID     string              `json:"farmID"`
	FarmName   string              `json:"farmName"`
	Start      time.Time           `json:"start"`
	End        time.Time           `json:"end"`
	Categories []CategoryPeriodRow `json:"categories"`
	Details    []MovementDetail    `json:"details"`
	TotalStock int64               `json:"totalStock"` // Sum of closing across categories
}

// ConsolidatedReport aggregates farm reports across every active farm.
type ConsolidatedReport struct {
	Start      time.Time    `json:"start"`
	End        time.Time    `json:"end"`
	Farms      []FarmReport `json:"farms"`
	TotalStock int64        `json:"totalStock"`
}
