package pgsql

import (
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		CategoryRepo:     newPgxCategoryRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		BudgetRepo:       newPgxBudgetRepository(dbPool),
	}
}
