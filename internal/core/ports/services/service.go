package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Movement       MovementSvcFacade
	Transfer       TransferSvcFacade
	StockQuery     StockQuerySvcFacade
	Reconciliation ReconciliationSvcFacade
	Reporting      ReportingService
	Farm           FarmSvcFacade
	Category       CategorySvcFacade
	Client         ClientSvcFacade
	DeathCause     DeathCauseSvcFacade
}
