package mapping

import (
	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	"github.com/AgroBov/cattle_ledger_app/internal/models"
)

// ToModelStockBalance converts a domain StockBalance to a model StockBalance.
func ToModelStockBalance(d domain.StockBalance) models.StockBalance {
	return models.StockBalance{
		BalanceID:       d.BalanceID,
		FarmID:          d.FarmID,
		CategoryID:      d.CategoryID,
		CurrentQuantity: d.CurrentQuantity,
		Version:         d.Version,
		UpdatedAt:       d.UpdatedAt,
	}
}

// ToDomainStockBalance converts a model StockBalance to a domain StockBalance.
func ToDomainStockBalance(m models.StockBalance) domain.StockBalance {
	return domain.StockBalance{
		BalanceID:       m.BalanceID,
		FarmID:          m.FarmID,
		CategoryID:      m.CategoryID,
		CurrentQuantity: m.CurrentQuantity,
		Version:         m.Version,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToDomainStockBalanceSlice converts a slice of model StockBalances.
func ToDomainStockBalanceSlice(ms []models.StockBalance) []domain.StockBalance {
	ds := make([]domain.StockBalance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockBalance(m)
	}
	return ds
}
