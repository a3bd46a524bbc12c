package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a row of the transactions table joined with its category label.
type Transaction struct {
	TransactionID       int64           `db:"transaction_id"`
	UserID              int64           `db:"user_id"`
	CategoryID          int64           `db:"category_id"`
	CategoryName        string          `db:"category_name"`
	CategoryColor       string          `db:"category_color"`
	CategoryIcon        string          `db:"category_icon"`
	Type                string          `db:"type"`
	Amount              decimal.Decimal `db:"amount"`
	CurrencyID          int64           `db:"currency_id"`
	ConvertedAmount     decimal.Decimal `db:"converted_amount"`
	ConvertedCurrencyID int64           `db:"converted_currency_id"`
	ExchangeRateUsed    decimal.Decimal `db:"exchange_rate_used"`
	RateAppliedAt       time.Time       `db:"rate_applied_at"`
	TransactionDate     time.Time       `db:"transaction_date"`
	Description         string          `db:"description"`
	AuditFields
}
