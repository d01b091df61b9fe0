package dto

import "time"

// ReportPeriodParams selects the reporting period. Dates are inclusive and
// expanded to full-day UTC bounds by the service.
type ReportPeriodParams struct {
	StartDate time.Time `form:"startDate" binding:"required" time_format:"2006-01-02"`
	EndDate   time.Time `form:"endDate" binding:"required" time_format:"2006-01-02"`
}

// PeriodStockParams selects a point-in-time or period stock query.
type PeriodStockParams struct {
	FarmID     string    `form:"farmID" binding:"required,uuid"`
	CategoryID string    `form:"categoryID" binding:"required,uuid"`
	StartDate  time.Time `form:"startDate" binding:"required" time_format:"2006-01-02"`
	EndDate    time.Time `form:"endDate" binding:"required" time_format:"2006-01-02"`
}

// BalanceAsOfParams selects a reconstructed balance at an instant. When AsOf
// is zero the current ledger total is returned.
type BalanceAsOfParams struct {
	AsOf time.Time `form:"asOf" time_format:"2006-01-02T15:04:05Z07:00"`
}
