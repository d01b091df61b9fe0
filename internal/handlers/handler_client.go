package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
	"github.com/AgroBov/cattle_ledger_app/internal/middleware"
)

// clientHandler handles HTTP requests for client master data.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

// newClientHandler creates a new clientHandler.
func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{clientService: cs}
}

// registerClientRoutes registers all client routes.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:clientID", h.getClient)
		clients.DELETE("/:clientID", h.deactivateClient)
	}
}

func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createClient", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create client")
		return
	}
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	includeInactive := c.Query("includeInactive") == "true"
	clients, err := h.clientService.ListClients(c.Request.Context(), includeInactive)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": dto.ToClientResponses(clients)})
}

func (h *clientHandler) getClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	client, err := h.clientService.GetClientByID(c.Request.Context(), c.Param("clientID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *clientHandler) deactivateClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.clientService.DeactivateClient(c.Request.Context(), c.Param("clientID"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to deactivate client")
		return
	}
	c.Status(http.StatusNoContent)
}
