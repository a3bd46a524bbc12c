package services

import (
	"context"
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateResolverSvc answers which rate is current for an ordered currency pair.
type RateResolverSvc interface {
	// Resolve returns the current rate; 1 when from == to.
	Resolve(ctx context.Context, fromCurrencyID, toCurrencyID int64) (decimal.Decimal, error)

	// CurrentRate returns the current rate record for the pair.
	CurrentRate(ctx context.Context, fromCurrencyID, toCurrencyID int64) (*domain.ExchangeRate, error)

	// Exists reports whether Resolve would succeed, without side effects.
	Exists(ctx context.Context, fromCurrencyID, toCurrencyID int64) (bool, error)

	// ListReachableCurrencies returns the currencies with an active rate from fromCurrencyID.
	ListReachableCurrencies(ctx context.Context, fromCurrencyID int64) ([]int64, error)
}

// CurrencyConverterSvc converts amounts between currencies at full precision.
type CurrencyConverterSvc interface {
	Convert(ctx context.Context, amount decimal.Decimal, fromCurrencyID, toCurrencyID int64) (decimal.Decimal, error)
}

// TransactionConverterSvc fills in the home-currency fields of a transaction.
type TransactionConverterSvc interface {
	ApplyConversion(txn *domain.Transaction, homeCurrencyID int64, rate *domain.ExchangeRate) error
}

// BudgetAggregatorSvc computes the spend position of a budget.
type BudgetAggregatorSvc interface {
	Summarize(ctx context.Context, budget domain.Budget, candidates []domain.Transaction) (*domain.BudgetSummary, error)
}

// TransactionSummaryAggregatorSvc rolls transactions up by type and category.
type TransactionSummaryAggregatorSvc interface {
	Summarize(txns []domain.Transaction, home domain.Currency, from, to *time.Time) domain.TransactionSummaryReport
}
