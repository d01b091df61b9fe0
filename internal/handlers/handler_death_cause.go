package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
	"github.com/AgroBov/cattle_ledger_app/internal/middleware"
)

// deathCauseHandler handles HTTP requests for death cause master data.
type deathCauseHandler struct {
	deathCauseService portssvc.DeathCauseSvcFacade
}

// newDeathCauseHandler creates a new deathCauseHandler.
func newDeathCauseHandler(ds portssvc.DeathCauseSvcFacade) *deathCauseHandler {
	return &deathCauseHandler{deathCauseService: ds}
}

// registerDeathCauseRoutes registers all death cause routes.
func registerDeathCauseRoutes(rg *gin.RouterGroup, deathCauseService portssvc.DeathCauseSvcFacade) {
	h := newDeathCauseHandler(deathCauseService)

	causes := rg.Group("/death-causes")
	{
		causes.POST("", h.createDeathCause)
		causes.GET("", h.listDeathCauses)
		causes.GET("/:deathCauseID", h.getDeathCause)
	}
}

func (h *deathCauseHandler) createDeathCause(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDeathCauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createDeathCause", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	cause, err := h.deathCauseService.CreateDeathCause(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create death cause")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDeathCauseResponse(cause))
}

func (h *deathCauseHandler) listDeathCauses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	includeInactive := c.Query("includeInactive") == "true"
	causes, err := h.deathCauseService.ListDeathCauses(c.Request.Context(), includeInactive)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list death causes")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deathCauses": dto.ToDeathCauseResponses(causes)})
}

func (h *deathCauseHandler) getDeathCause(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cause, err := h.deathCauseService.GetDeathCauseByID(c.Request.Context(), c.Param("deathCauseID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve death cause")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeathCauseResponse(cause))
}
