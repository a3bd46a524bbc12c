package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense owned by a user.
// Amount and CurrencyID are as entered; the Converted* fields, ExchangeRateUsed and
// RateAppliedAt are captured at write time in the user's home currency and are
// never recomputed retroactively.
type Transaction struct {
	TransactionID       int64           `json:"transactionID"`
	UserID              int64           `json:"userID"`
	CategoryID          int64           `json:"categoryID"`
	Category            CategoryLabel   `json:"category"` // Read-only, joined from categories
	Type                TransactionType `json:"type"`     // Derived from the category at creation
	Amount              decimal.Decimal `json:"amount"`
	CurrencyID          int64           `json:"currencyID"`
	ConvertedAmount     decimal.Decimal `json:"convertedAmount"` // Unrounded
	ConvertedCurrencyID int64           `json:"convertedCurrencyID"`
	ExchangeRateUsed    decimal.Decimal `json:"exchangeRateUsed"`
	RateAppliedAt       time.Time       `json:"rateAppliedAt"`
	Date                time.Time       `json:"date"`
	Description         string          `json:"description"`
	AuditFields
}

// Validate checks the fields a caller must supply before conversion.
func (t Transaction) Validate() error {
	if t.UserID == 0 {
		return fmt.Errorf("user ID is required")
	}
	if t.CategoryID == 0 {
		return fmt.Errorf("category ID is required")
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("invalid transaction type '%s'", t.Type)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive")
	}
	if t.CurrencyID == 0 {
		return fmt.Errorf("currency ID is required")
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	return nil
}

// TransactionFilter narrows a user's transaction listing.
type TransactionFilter struct {
	From       *time.Time
	To         *time.Time
	Type       *TransactionType
	CategoryID *int64
	// After is the keyset position (date, id) of the last row of the previous page.
	AfterDate *time.Time
	AfterID   int64
	Limit     int
}
