package models

import "time"

// StockBalance mirrors the stock_balances snapshot table.
// UNIQUE(farm_id, category_id) and CHECK(current_quantity >= 0) guard the
// table as the last line of defense behind the service-layer validation.
type StockBalance struct {
	BalanceID       string    `json:"balanceID"`
	FarmID          string    `json:"farmID"`
	CategoryID      string    `json:"categoryID"`
	CurrentQuantity int64     `json:"currentQuantity"`
	Version         int64     `json:"version"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
