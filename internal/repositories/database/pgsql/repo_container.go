package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/kicky1/dashboard/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	incomeRepo := newPgxIncomeRepository(dbPool)
	return portsrepo.RepositoryProvider{
		ExpenseRepo:     newPgxExpenseRepository(dbPool, incomeRepo),
		IncomeRepo:      incomeRepo,
		UserRepo:        newPgxUserRepository(dbPool),
		PreferencesRepo: newPgxPreferencesRepository(dbPool),
	}
}
