package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
	"github.com/AgroBov/cattle_ledger_app/internal/middleware"
)

// transferHandler handles HTTP requests for composite operations.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

// newTransferHandler creates a new transferHandler.
func newTransferHandler(ts portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{transferService: ts}
}

// registerTransferRoutes registers the composite operation routes.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := newTransferHandler(transferService)

	rg.POST("/transfers", h.transfer)
	rg.POST("/reclassifications", h.reclassify)
	rg.POST("/weanings", h.wean)
}

func (h *transferHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	result, err := h.transferService.Transfer(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to transfer stock")
		return
	}

	logger.Info("Transfer committed",
		slog.String("correlation_id", *result.Pair.Exit.CorrelationID),
		slog.Int64("quantity", req.Quantity),
	)
	c.JSON(http.StatusCreated, dto.TransferResponse{
		Pair:                dto.ToMovementPairResponse(result.Pair),
		SourceQuantity:      result.Source.CurrentQuantity,
		DestinationQuantity: result.Destination.CurrentQuantity,
	})
}

func (h *transferHandler) reclassify(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReclassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for reclassify", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	result, err := h.transferService.Reclassify(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reclassify stock")
		return
	}

	logger.Info("Reclassification committed",
		slog.String("correlation_id", *result.Pair.Exit.CorrelationID),
		slog.Int64("quantity", req.Quantity),
	)
	c.JSON(http.StatusCreated, dto.TransferResponse{
		Pair:                dto.ToMovementPairResponse(result.Pair),
		SourceQuantity:      result.Source.CurrentQuantity,
		DestinationQuantity: result.Destination.CurrentQuantity,
	})
}

func (h *transferHandler) wean(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.WeaningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for weaning", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	pairs, err := h.transferService.Wean(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to wean stock")
		return
	}

	resp := dto.WeaningResponse{Pairs: make([]dto.MovementPairResponse, len(pairs))}
	for i, pair := range pairs {
		resp.Pairs[i] = dto.ToMovementPairResponse(pair)
	}
	logger.Info("Weaning committed", slog.Int("pairs", len(pairs)))
	c.JSON(http.StatusCreated, resp)
}
