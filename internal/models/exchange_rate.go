package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the conversion rate of an ordered currency pair from a date on.
type ExchangeRate struct {
	ExchangeRateID int64           `db:"exchange_rate_id"`
	FromCurrencyID int64           `db:"from_currency_id"`
	ToCurrencyID   int64           `db:"to_currency_id"`
	Rate           decimal.Decimal `db:"rate"`
	EffectiveDate  time.Time       `db:"effective_date"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
