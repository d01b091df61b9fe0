package dto

import (
	"time"

	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
)

// EnsureBalanceRequest is the payload for provisioning one snapshot row.
type EnsureBalanceRequest struct {
	FarmID     string `json:"farmID" binding:"required,uuid"`
	CategoryID string `json:"categoryID" binding:"required,uuid"`
}

// BalanceResponse is the data returned for one snapshot row.
type BalanceResponse struct {
	BalanceID       string    `json:"balanceID"`
	FarmID          string    `json:"farmID"`
	CategoryID      string    `json:"categoryID"`
	CurrentQuantity int64     `json:"currentQuantity"`
	Version         int64     `json:"version"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PeriodStockResponse is the ledger-derived period summary for one
// (farm, category) pair.
type PeriodStockResponse struct {
	FarmID     string           `json:"farmID"`
	CategoryID string           `json:"categoryID"`
	Start      time.Time        `json:"start"`
	End        time.Time        `json:"end"`
	Opening    int64            `json:"opening"`
	Entries    map[string]int64 `json:"entries"`
	Exits      map[string]int64 `json:"exits"`
	Closing    int64            `json:"closing"`
}

// ConsistencyResponse reports snapshot versus ledger drift.
type ConsistencyResponse struct {
	FarmID        string `json:"farmID"`
	CategoryID    string `json:"categoryID"`
	Consistent    bool   `json:"consistent"`
	SnapshotValue int64  `json:"snapshotValue"`
	LedgerValue   int64  `json:"ledgerValue"`
	Drift         int64  `json:"drift"`
}

// ToBalanceResponse converts a domain StockBalance.
func ToBalanceResponse(b *domain.StockBalance) BalanceResponse {
	return BalanceResponse{
		BalanceID:       b.BalanceID,
		FarmID:          b.FarmID,
		CategoryID:      b.CategoryID,
		CurrentQuantity: b.CurrentQuantity,
		Version:         b.Version,
		UpdatedAt:       b.UpdatedAt,
	}
}

// ToBalanceResponses converts a slice of domain StockBalances.
func ToBalanceResponses(bs []domain.StockBalance) []BalanceResponse {
	responses := make([]BalanceResponse, len(bs))
	for i := range bs {
		responses[i] = ToBalanceResponse(&bs[i])
	}
	return responses
}

// ToPeriodStockResponse converts a domain PeriodStock.
func ToPeriodStockResponse(p *domain.PeriodStock) PeriodStockResponse {
	entries := make(map[string]int64, len(p.Entries))
	for op, qty := range p.Entries {
		entries[string(op)] = qty
	}
	exits := make(map[string]int64, len(p.Exits))
	for op, qty := range p.Exits {
		exits[string(op)] = qty
	}
	return PeriodStockResponse{
		FarmID:     p.FarmID,
		CategoryID: p.CategoryID,
		Start:      p.Start,
		End:        p.End,
		Opening:    p.Opening,
		Entries:    entries,
		Exits:      exits,
		Closing:    p.Closing,
	}
}

// ToConsistencyResponse converts a domain ConsistencyReport.
func ToConsistencyResponse(r *domain.ConsistencyReport) ConsistencyResponse {
	return ConsistencyResponse{
		FarmID:        r.FarmID,
		CategoryID:    r.CategoryID,
		Consistent:    r.Consistent,
		SnapshotValue: r.SnapshotValue,
		LedgerValue:   r.LedgerValue,
		Drift:         r.Drift,
	}
}
