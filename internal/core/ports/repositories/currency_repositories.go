package repositories

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a currency by its numeric identity.
	FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency and returns it with its assigned ID.
	SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)

	// SetCurrencyActive toggles the only mutable field of a referenced currency.
	SetCurrencyActive(ctx context.Context, currencyID int64, active bool, userID string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
