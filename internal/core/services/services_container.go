package services

import (
	"time"

	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	resolver := NewRateResolver(repos.ExchangeRateRepo)
	converter := NewCurrencyConverter(resolver)
	txnConverter := NewTransactionConverter(time.Now)

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, container.Currency, resolver)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.CategoryRepo,
		repos.UserRepo,
		container.Currency,
		resolver,
		txnConverter,
	)
	container.Budget = NewBudgetService(
		repos.BudgetRepo,
		repos.TransactionRepo,
		repos.CategoryRepo,
		container.Currency,
		NewBudgetAggregator(converter),
		WithSummaryConcurrency(cfg.SummaryConcurrency),
	)
	container.Reporting = NewReportingService(
		repos.TransactionRepo,
		repos.UserRepo,
		container.Currency,
		NewTransactionSummaryAggregator(),
	)

	return container
}
