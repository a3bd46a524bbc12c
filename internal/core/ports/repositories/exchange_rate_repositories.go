package repositories

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindActiveRates returns every active rate stored for the exact ordered pair.
	// No inversion or chaining is applied.
	FindActiveRates(ctx context.Context, fromCurrencyID, toCurrencyID int64) ([]domain.ExchangeRate, error)

	// FindActiveRatesFrom returns every active rate whose source is fromCurrencyID.
	FindActiveRatesFrom(ctx context.Context, fromCurrencyID int64) ([]domain.ExchangeRate, error)

	// FindExchangeRateByID retrieves a rate record by its ID.
	FindExchangeRateByID(ctx context.Context, rateID int64) (*domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate inserts a rate, or updates the existing rate for the same
	// pair and effective date, and returns the stored record.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error)

	// DeactivateExchangeRate clears the active flag of a rate.
	DeactivateExchangeRate(ctx context.Context, rateID int64, userID string) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
// This is a facade for clients that need access to all operations
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
