package mapping

import (
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate.
// The effective date is stored as a calendar day.
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID: d.ExchangeRateID,
		FromCurrencyID: d.FromCurrencyID,
		ToCurrencyID:   d.ToCurrencyID,
		Rate:           d.Rate,
		EffectiveDate:  domain.DateOnly(d.EffectiveDate),
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID: m.ExchangeRateID,
		FromCurrencyID: m.FromCurrencyID,
		ToCurrencyID:   m.ToCurrencyID,
		Rate:           m.Rate,
		EffectiveDate:  domain.DateOnly(m.EffectiveDate),
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExchangeRateSlice converts model ExchangeRates to domain ExchangeRates
func ToDomainExchangeRateSlice(ms []models.ExchangeRate) []domain.ExchangeRate {
	return toDomainSlice(ms, ToDomainExchangeRate)
}
