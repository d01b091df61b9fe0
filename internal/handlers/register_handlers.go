package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/middleware"
	"github.com/AgroBov/cattle_ledger_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerFarmRoutes(v1, services.Farm)
	registerCategoryRoutes(v1, services.Category)
	registerClientRoutes(v1, services.Client)
	registerDeathCauseRoutes(v1, services.DeathCause)
	registerMovementRoutes(v1, services.Movement)
	registerTransferRoutes(v1, services.Transfer)
	registerStockRoutes(v1, services.StockQuery)
	registerReconciliationRoutes(v1, services.Reconciliation)
	registerReportingRoutes(v1, services.Reporting)
}
