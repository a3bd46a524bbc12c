package models

// Currency represents a row of the currencies table.
type Currency struct {
	CurrencyID int64  `db:"currency_id"`
	Code       string `db:"code"`
	Symbol     string `db:"symbol"`
	Name       string `db:"name"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}
