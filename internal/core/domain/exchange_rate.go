package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a directional conversion rate from one currency to another,
// effective from EffectiveDate. A rate for A->B says nothing about B->A.
type ExchangeRate struct {
	ExchangeRateID int64           `json:"exchangeRateID"`
	FromCurrencyID int64           `json:"fromCurrencyID"`
	ToCurrencyID   int64           `json:"toCurrencyID"`
	Rate           decimal.Decimal `json:"rate"`          // Strictly positive
	EffectiveDate  time.Time       `json:"effectiveDate"` // UTC
	IsActive       bool            `json:"isActive"`
	AuditFields
}

// IdentityRate returns the implicit 1:1 rate of a currency to itself.
// It is never persisted.
func IdentityRate(currencyID int64, at time.Time) ExchangeRate {
	return ExchangeRate{
		FromCurrencyID: currencyID,
		ToCurrencyID:   currencyID,
		Rate:           decimal.NewFromInt(1),
		EffectiveDate:  DateOnly(at),
		IsActive:       true,
	}
}

// IsUsableFor reports whether the rate may convert an amount dated on txnDate
// from one currency into another: the pair must match exactly, the record must
// be active with a positive rate, and it must already be effective on txnDate.
func (r ExchangeRate) IsUsableFor(fromCurrencyID, toCurrencyID int64, txnDate time.Time) bool {
	if r.FromCurrencyID != fromCurrencyID || r.ToCurrencyID != toCurrencyID {
		return false
	}
	if !r.IsActive || !r.Rate.IsPositive() {
		return false
	}
	return !DateOnly(r.EffectiveDate).After(DateOnly(txnDate))
}
