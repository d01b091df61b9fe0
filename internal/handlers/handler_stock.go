package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
	"github.com/AgroBov/cattle_ledger_app/internal/middleware"
)

// stockHandler handles HTTP requests for balance and period queries.
type stockHandler struct {
	stockQueryService portssvc.StockQuerySvcFacade
}

// newStockHandler creates a new stockHandler.
func newStockHandler(sq portssvc.StockQuerySvcFacade) *stockHandler {
	return &stockHandler{stockQueryService: sq}
}

// registerStockRoutes registers the stock query routes.
func registerStockRoutes(rg *gin.RouterGroup, stockQueryService portssvc.StockQuerySvcFacade) {
	h := newStockHandler(stockQueryService)

	stock := rg.Group("/stock")
	{
		stock.GET("/balances", h.listAllBalances)
		stock.GET("/farms/:farmID/balances", h.listFarmBalances)
		stock.GET("/farms/:farmID/categories/:categoryID", h.getBalance)
		stock.GET("/farms/:farmID/categories/:categoryID/as-of", h.balanceAsOf)
		stock.GET("/farms/:farmID/categories/:categoryID/period", h.periodStock)
		stock.GET("/farms/:farmID/categories/:categoryID/consistency", h.verifyConsistency)
	}
}

func (h *stockHandler) listAllBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.stockQueryService.ListAllBalances(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list balances")
		return
	}
	c.JSON(http.StatusOK, gin.H{"balances": dto.ToBalanceResponses(balances)})
}

func (h *stockHandler) listFarmBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.stockQueryService.ListBalancesByFarm(c.Request.Context(), c.Param("farmID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list farm balances")
		return
	}
	c.JSON(http.StatusOK, gin.H{"balances": dto.ToBalanceResponses(balances)})
}

func (h *stockHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balance, err := h.stockQueryService.GetBalance(c.Request.Context(), c.Param("farmID"), c.Param("categoryID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(balance))
}

func (h *stockHandler) balanceAsOf(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.BalanceAsOfParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	quantity, err := h.stockQueryService.BalanceAsOf(c.Request.Context(), c.Param("farmID"), c.Param("categoryID"), params.AsOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute balance")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"farmID":     c.Param("farmID"),
		"categoryID": c.Param("categoryID"),
		"asOf":       params.AsOf,
		"quantity":   quantity,
	})
}

func (h *stockHandler) periodStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate and endDate are required (YYYY-MM-DD)"})
		return
	}
	start, end := expandDayBounds(params.StartDate, params.EndDate)

	period, err := h.stockQueryService.PeriodStock(c.Request.Context(), c.Param("farmID"), c.Param("categoryID"), start, end)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute period stock")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodStockResponse(period))
}

func (h *stockHandler) verifyConsistency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.stockQueryService.VerifyConsistency(c.Request.Context(), c.Param("farmID"), c.Param("categoryID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to verify consistency")
		return
	}
	c.JSON(http.StatusOK, dto.ToConsistencyResponse(report))
}

// expandDayBounds widens two inclusive dates to full-day UTC instants.
func expandDayBounds(from, to time.Time) (time.Time, time.Time) {
	from = from.UTC()
	to = to.UTC()
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999999999, time.UTC)
	return start, end
}
