package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	MovementRepo   MovementRepositoryFacade
	BalanceRepo    BalanceRepositoryFacade
	FarmRepo       FarmRepositoryFacade
	CategoryRepo   CategoryRepositoryFacade
	ClientRepo     ClientRepositoryFacade
	DeathCauseRepo DeathCauseRepositoryFacade
	ReportingRepo  ReportingRepository
}
