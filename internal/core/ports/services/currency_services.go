package services

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a currency by its numeric identity.
	GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID int64) (*domain.Currency, error)

	// SetCurrencyActive toggles a currency's active flag.
	SetCurrencyActive(ctx context.Context, currencyCode string, active bool, userID int64) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetCurrentRate retrieves the current rate between two currencies.
	GetCurrentRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)

	// ListReachableCurrencies lists the currencies fromCode has an active rate into.
	ListReachableCurrencies(ctx context.Context, fromCode string) ([]domain.Currency, error)

	// ConvertAmount converts an amount for display.
	ConvertAmount(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (*domain.ConversionQuote, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists a new exchange rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID int64) (*domain.ExchangeRate, error)

	// DeactivateExchangeRate retires a rate so it is no longer resolved.
	DeactivateExchangeRate(ctx context.Context, rateID int64, userID int64) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
