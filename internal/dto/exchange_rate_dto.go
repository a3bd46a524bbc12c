package dto

import (
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for creating a new exchange rate.
type CreateExchangeRateRequest struct {
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,len=3,uppercase"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,len=3,uppercase,nefield=FromCurrencyCode"`
	Rate             decimal.Decimal `json:"rate" binding:"required"` // Positivity checked by the service
	EffectiveDate    time.Time       `json:"effectiveDate" binding:"required"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID int64           `json:"exchangeRateID"`
	FromCurrencyID int64           `json:"fromCurrencyID"`
	ToCurrencyID   int64           `json:"toCurrencyID"`
	Rate           decimal.Decimal `json:"rate"`
	EffectiveDate  time.Time       `json:"effectiveDate"`
	IsActive       bool            `json:"isActive"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID: rate.ExchangeRateID,
		FromCurrencyID: rate.FromCurrencyID,
		ToCurrencyID:   rate.ToCurrencyID,
		Rate:           rate.Rate,
		EffectiveDate:  rate.EffectiveDate,
		IsActive:       rate.IsActive,
		LastUpdatedAt:  rate.LastUpdatedAt,
		LastUpdatedBy:  rate.LastUpdatedBy,
	}
}

// ConversionResponse is the display form of an ad hoc conversion.
// ConvertedAmount is rounded to two decimals; Rate is returned as stored.
type ConversionResponse struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Amount           decimal.Decimal `json:"amount"`
	Rate             decimal.Decimal `json:"rate"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
}

// ToConversionResponse rounds a conversion quote for display.
func ToConversionResponse(q *domain.ConversionQuote) ConversionResponse {
	return ConversionResponse{
		FromCurrencyCode: q.From.Code,
		ToCurrencyCode:   q.To.Code,
		Amount:           q.Amount,
		Rate:             q.Rate,
		ConvertedAmount:  q.ConvertedAmount.Round(2),
	}
}
