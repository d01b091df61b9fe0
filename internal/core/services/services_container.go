package services

import (
	portsrepo "github.com/AgroBov/cattle_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Reconciliation comes first since farm and category creation provision
	// snapshot rows through it.
	container.Reconciliation = NewReconciliationService(
		repos.MovementRepo,
		repos.BalanceRepo,
		repos.FarmRepo,
		repos.CategoryRepo,
	)

	container.Movement = NewMovementService(
		repos.MovementRepo,
		repos.BalanceRepo,
		repos.FarmRepo,
		repos.CategoryRepo,
		repos.ClientRepo,
		repos.DeathCauseRepo,
	)
	container.Transfer = NewTransferService(
		repos.MovementRepo,
		repos.BalanceRepo,
		repos.FarmRepo,
		repos.CategoryRepo,
	)
	container.StockQuery = NewStockQueryService(repos.MovementRepo, repos.BalanceRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.FarmRepo)

	container.Farm = NewFarmService(repos.FarmRepo, container.Reconciliation)
	container.Category = NewCategoryService(repos.CategoryRepo, container.Reconciliation)
	container.Client = NewClientService(repos.ClientRepo)
	container.DeathCause = NewDeathCauseService(repos.DeathCauseRepo)

	return container
}
