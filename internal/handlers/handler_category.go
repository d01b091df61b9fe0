package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
	"github.com/AgroBov/cattle_ledger_app/internal/middleware"
)

// categoryHandler handles HTTP requests for animal category master data.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

// newCategoryHandler creates a new categoryHandler.
func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

// registerCategoryRoutes registers all category routes.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:categoryID", h.getCategory)
		categories.DELETE("/:categoryID", h.deactivateCategory)
	}
}

func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create category")
		return
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	includeInactive := c.Query("includeInactive") == "true"
	categories, err := h.categoryService.ListCategories(c.Request.Context(), includeInactive)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": dto.ToCategoryResponses(categories)})
}

func (h *categoryHandler) getCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), c.Param("categoryID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *categoryHandler) deactivateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.categoryService.DeactivateCategory(c.Request.Context(), c.Param("categoryID"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to deactivate category")
		return
	}
	c.Status(http.StatusNoContent)
}
