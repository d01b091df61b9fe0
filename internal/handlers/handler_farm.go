package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
	"github.com/AgroBov/cattle_ledger_app/internal/middleware"
)

// farmHandler handles HTTP requests for farm master data.
type farmHandler struct {
	farmService portssvc.FarmSvcFacade
}

// newFarmHandler creates a new farmHandler.
func newFarmHandler(fs portssvc.FarmSvcFacade) *farmHandler {
	return &farmHandler{farmService: fs}
}

// registerFarmRoutes registers all farm routes.
func registerFarmRoutes(rg *gin.RouterGroup, farmService portssvc.FarmSvcFacade) {
	h := newFarmHandler(farmService)

	farms := rg.Group("/farms")
	{
		farms.POST("", h.createFarm)
		farms.GET("", h.listFarms)
		farms.GET("/:farmID", h.getFarm)
		farms.PUT("/:farmID", h.updateFarm)
		farms.DELETE("/:farmID", h.deactivateFarm)
	}
}

func (h *farmHandler) createFarm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createFarm", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	farm, err := h.farmService.CreateFarm(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create farm")
		return
	}

	logger.Info("Farm created", slog.String("farm_id", farm.FarmID))
	c.JSON(http.StatusCreated, dto.ToFarmResponse(farm))
}

func (h *farmHandler) listFarms(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	includeInactive := c.Query("includeInactive") == "true"
	farms, err := h.farmService.ListFarms(c.Request.Context(), includeInactive)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list farms")
		return
	}
	c.JSON(http.StatusOK, gin.H{"farms": dto.ToFarmResponses(farms)})
}

func (h *farmHandler) getFarm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	farm, err := h.farmService.GetFarmByID(c.Request.Context(), c.Param("farmID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve farm")
		return
	}
	c.JSON(http.StatusOK, dto.ToFarmResponse(farm))
}

func (h *farmHandler) updateFarm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for updateFarm", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	farm, err := h.farmService.UpdateFarm(c.Request.Context(), c.Param("farmID"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update farm")
		return
	}
	c.JSON(http.StatusOK, dto.ToFarmResponse(farm))
}

func (h *farmHandler) deactivateFarm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.farmService.DeactivateFarm(c.Request.Context(), c.Param("farmID"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to deactivate farm")
		return
	}
	c.Status(http.StatusNoContent)
}
