package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
	"github.com/AgroBov/cattle_ledger_app/internal/middleware"
)

// reportingHandler handles HTTP requests for period stock reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/farms/:farmID", h.farmReport)
		reports.GET("/consolidated", h.consolidatedReport)
	}
}

func (h *reportingHandler) farmReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate and endDate are required (YYYY-MM-DD)"})
		return
	}

	report, err := h.reportingService.FarmReport(c.Request.Context(), c.Param("farmID"), params.StartDate, params.EndDate)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build farm report")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) consolidatedReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate and endDate are required (YYYY-MM-DD)"})
		return
	}

	report, err := h.reportingService.ConsolidatedReport(c.Request.Context(), params.StartDate, params.EndDate)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build consolidated report")
		return
	}
	c.JSON(http.StatusOK, report)
}
