package services

import (
	"context"

	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// CurrencyConverter multiplies amounts by the current rate. Results are not rounded.
type CurrencyConverter struct {
	resolver portssvc.RateResolverSvc
}

// NewCurrencyConverter creates a CurrencyConverter on top of a rate resolver.
func NewCurrencyConverter(resolver portssvc.RateResolverSvc) *CurrencyConverter {
	return &CurrencyConverter{resolver: resolver}
}

var _ portssvc.CurrencyConverterSvc = (*CurrencyConverter)(nil)

// Convert returns amount expressed in toCurrencyID. A missing rate surfaces as
// apperrors.ErrRateNotFound.
func (c *CurrencyConverter) Convert(ctx context.Context, amount decimal.Decimal, fromCurrencyID, toCurrencyID int64) (decimal.Decimal, error) {
	if fromCurrencyID == toCurrencyID {
		return amount, nil
	}
	rate, err := c.resolver.Resolve(ctx, fromCurrencyID, toCurrencyID)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}
