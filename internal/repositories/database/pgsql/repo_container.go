package pgsql

import (
	portsrepo "github.com/AgroBov/cattle_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		MovementRepo:   newPgxMovementRepository(dbPool),
		BalanceRepo:    newPgxBalanceRepository(dbPool),
		FarmRepo:       newPgxFarmRepository(dbPool),
		CategoryRepo:   newPgxCategoryRepository(dbPool),
		ClientRepo:     newPgxClientRepository(dbPool),
		DeathCauseRepo: newPgxDeathCauseRepository(dbPool),
		ReportingRepo:  newReportingRepository(dbPool),
	}
}
