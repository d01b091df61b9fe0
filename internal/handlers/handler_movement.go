package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
	"github.com/AgroBov/cattle_ledger_app/internal/middleware"
)

// movementHandler handles HTTP requests for the movement ledger.
type movementHandler struct {
	movementService portssvc.MovementSvcFacade
}

// newMovementHandler creates a new movementHandler.
func newMovementHandler(ms portssvc.MovementSvcFacade) *movementHandler {
	return &movementHandler{movementService: ms}
}

// registerMovementRoutes registers all ledger routes.
func registerMovementRoutes(rg *gin.RouterGroup, movementService portssvc.MovementSvcFacade) {
	h := newMovementHandler(movementService)

	movements := rg.Group("/movements")
	{
		movements.POST("/entries", h.recordEntry)
		movements.POST("/exits", h.recordExit)
		movements.GET("", h.listMovements)
		movements.GET("/:movementID", h.getMovement)
		movements.GET("/correlation/:correlationID", h.getMovementsByCorrelation)
	}
}

func (h *movementHandler) recordEntry(c *gin.Context) {
	h.record(c, h.movementService.RecordEntry)
}

func (h *movementHandler) recordExit(c *gin.Context) {
	h.record(c, h.movementService.RecordExit)
}

func (h *movementHandler) record(c *gin.Context, commit func(context.Context, dto.RecordMovementRequest, string) (*domain.Movement, *domain.StockBalance, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for movement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	movement, balance, err := commit(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record movement")
		return
	}

	logger.Info("Movement recorded",
		slog.String("movement_id", movement.MovementID),
		slog.String("operation", string(movement.Operation)),
		slog.Int64("quantity", movement.Quantity),
	)
	c.JSON(http.StatusCreated, dto.RecordMovementResponse{
		Movement:          dto.ToMovementResponse(movement),
		ResultingQuantity: balance.CurrentQuantity,
	})
}

func (h *movementHandler) getMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("movementID")

	movement, err := h.movementService.GetMovementByID(c.Request.Context(), movementID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve movement")
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

func (h *movementHandler) getMovementsByCorrelation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	correlationID := c.Param("correlationID")

	movements, err := h.movementService.GetMovementsByCorrelationID(c.Request.Context(), correlationID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve movements")
		return
	}
	c.JSON(http.StatusOK, gin.H{"movements": dto.ToMovementResponses(movements)})
}

func (h *movementHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for listMovements", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.movementService.ListMovements(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list movements")
		return
	}
	c.JSON(http.StatusOK, resp)
}
