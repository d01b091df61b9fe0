package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
	"github.com/AgroBov/cattle_ledger_app/internal/middleware"
)

// reconciliationHandler handles HTTP requests for snapshot repair and
// provisioning.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

// newReconciliationHandler creates a new reconciliationHandler.
func newReconciliationHandler(rs portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{reconciliationService: rs}
}

// registerReconciliationRoutes registers the reconciliation routes.
func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(reconciliationService)

	recon := rg.Group("/reconciliation")
	{
		recon.POST("", h.reconcileAll)
		recon.POST("/farms/:farmID/categories/:categoryID", h.reconcileOne)
		recon.POST("/balances", h.ensureBalance)
		recon.POST("/farms/:farmID/balances", h.ensureFarmBalances)
		recon.POST("/categories/:categoryID/balances", h.ensureCategoryBalances)
	}
}

func (h *reconciliationHandler) reconcileAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	reports, err := h.reconciliationService.ReconcileAll(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reconcile balances")
		return
	}

	repaired := 0
	responses := make([]dto.ConsistencyResponse, len(reports))
	for i := range reports {
		responses[i] = dto.ToConsistencyResponse(&reports[i])
		if !reports[i].Consistent {
			repaired++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"checked":  len(reports),
		"repaired": repaired,
		"reports":  responses,
	})
}

func (h *reconciliationHandler) reconcileOne(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	report, err := h.reconciliationService.Reconcile(c.Request.Context(), c.Param("farmID"), c.Param("categoryID"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reconcile balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToConsistencyResponse(report))
}

func (h *reconciliationHandler) ensureBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EnsureBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for ensureBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	balance, err := h.reconciliationService.EnsureBalanceRow(c.Request.Context(), req.FarmID, req.CategoryID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to provision balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(balance))
}

func (h *reconciliationHandler) ensureFarmBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.reconciliationService.EnsureBalancesForFarm(c.Request.Context(), c.Param("farmID"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to provision farm balances")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *reconciliationHandler) ensureCategoryBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.reconciliationService.EnsureBalancesForCategory(c.Request.Context(), c.Param("categoryID"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to provision category balances")
		return
	}
	c.Status(http.StatusNoContent)
}
